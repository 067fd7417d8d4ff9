package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/inunix3/rxpipes/config"
	"github.com/inunix3/rxpipes/screensaver"
	"github.com/inunix3/rxpipes/terminal"
)

const longHelp = `2D version of the ancient pipes screensaver for terminals.

Available piece sets:
  0 - ASCII pipes:                     |- ++ ++
  1 - thin dots:                       ·· ·· ··
  2 - bold dots:                       •• •• ••
  3 - thin pipes:                      │─ ┐└ ┘┌
  4 - thin pipes with rounded corners: │─ ╮╰ ╯╭
  5 - double pipes:                    ║═ ╗╚ ╝╔
  6 - bold pipes (default):            ┃━ ┓┗ ┛┏

Key bindings:
  Esc, q, Q, Ctrl+C   quit
  Space               pause/resume
  c                   clear the screen
  l                   force redraw
  s                   toggle statistics`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "rxpipes:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:           "rxpipes",
		Short:         "2D version of the ancient pipes screensaver for terminals",
		Long:          longHelp,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := cfg.Resolve()
			if err != nil {
				return err
			}
			return run(resolved)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&cfg.FPS, "fps", "f", cfg.FPS,
		"frames per second")
	f.Uint64VarP(&cfg.MaxDrawnPieces, "max-drawn-pieces", "m", cfg.MaxDrawnPieces,
		"maximum drawn pieces before the screen is cleared (0 = no limit)")
	f.Uint64Var(&cfg.MaxPipeLength, "max-pipe-length", cfg.MaxPipeLength,
		"maximum pipe length in pieces")
	f.Uint64Var(&cfg.MinPipeLength, "min-pipe-length", cfg.MinPipeLength,
		"minimal pipe length in pieces")
	f.Float64VarP(&cfg.TurningProb, "turning-prob", "t", cfg.TurningProb,
		"probability of turning a pipe, as a decimal in [0, 1]")
	f.StringVarP(&cfg.Palette, "palette", "p", cfg.Palette,
		"color palette: none, base-colors or rgb")
	f.BoolVarP(&cfg.Gradient, "gradient", "g", cfg.Gradient,
		"enable gradient (rgb palette only)")
	f.Float64Var(&cfg.GradientStep, "gradient-step", cfg.GradientStep,
		"gradient: per-frame step to lighten/darken the color")
	f.BoolVarP(&cfg.DepthMode, "depth-mode", "d", cfg.DepthMode,
		"draw layers of pipes, darkening previous ones (rgb palette only)")
	f.Uint64Var(&cfg.LayerMaxDrawnPieces, "layer-max-drawn-pieces", cfg.LayerMaxDrawnPieces,
		"depth mode: maximum drawn pieces in the current layer")
	f.Float64VarP(&cfg.DarkenFactor, "darken-factor", "F", cfg.DarkenFactor,
		"depth mode: how much to darken pieces in previous layers")
	f.StringVarP(&cfg.DarkenFloor, "darken-min", "M", cfg.DarkenFloor,
		"depth mode: the color to gradually darken to")
	f.StringVarP(&cfg.BGColor, "bg-color", "b", cfg.BGColor,
		"background color as a hex string")
	f.IntVarP(&cfg.PieceSet, "piece-set", "P", cfg.PieceSet,
		"predefined piece set id (0-6)")
	f.StringVarP(&cfg.CustomPieceSet, "custom-piece-set", "c", cfg.CustomPieceSet,
		"custom 6-glyph piece set, written like │─┌┐└┘ (takes precedence over -P)")
	f.BoolVarP(&cfg.ShowStats, "show-stats", "s", cfg.ShowStats,
		"show statistics at the bottom of the screen")

	return cmd
}

func run(cfg *config.Resolved) error {
	scr, err := terminal.New()
	if err != nil {
		return err
	}

	// Restore the terminal on both exit edges: a panic anywhere in the
	// loop must never leave the shell in raw mode.
	defer func() {
		if r := recover(); r != nil {
			scr.HandleCrash(r)
		}
		scr.Fini()
	}()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	app := screensaver.New(scr, cfg, rng)
	app.Run(scr.Events())

	return nil
}
