package config

import (
	"fmt"

	"github.com/inunix3/rxpipes/pipe"
	"github.com/inunix3/rxpipes/style"
)

// Config is the full flag surface. It is parsed once before the loop
// starts and immutable afterwards, except for the stats toggle flipped by
// the 's' key.
type Config struct {
	// Frames per second.
	FPS int
	// Maximum drawn pieces on the screen before it is cleared.
	// 0 removes the limit.
	MaxDrawnPieces uint64
	// Maximum pipe length in pieces.
	MaxPipeLength uint64
	// Minimal pipe length in pieces.
	MinPipeLength uint64
	// Probability of turning a pipe, as a decimal in [0, 1].
	TurningProb float64
	// Color palette: "none", "base-colors" or "rgb".
	Palette string
	// Enable gradient drift. Only affects the rgb palette.
	Gradient bool
	// Gradient: per-frame step to lighten/darken the color.
	GradientStep float64
	// Depth mode: draw layers of pipes, darkening previous ones.
	DepthMode bool
	// Depth mode: maximum drawn pieces in the current layer.
	LayerMaxDrawnPieces uint64
	// Depth mode: how much to darken pieces in previous layers.
	DarkenFactor float64
	// Depth mode: hex color to gradually darken to.
	DarkenFloor string
	// Background hex color; empty means the terminal default.
	BGColor string
	// Predefined piece set id (0-6).
	PieceSet int
	// Custom piece set string; takes precedence over PieceSet.
	// Must define all 6 glyphs; grapheme clusters count as one glyph.
	CustomPieceSet string
	// Show the statistics strip at the bottom of the screen.
	ShowStats bool
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		FPS:                 24,
		MaxDrawnPieces:      10000,
		MaxPipeLength:       300,
		MinPipeLength:       7,
		TurningProb:         0.2,
		Palette:             "base-colors",
		GradientStep:        0.005,
		LayerMaxDrawnPieces: 1000,
		DarkenFactor:        0.8,
		DarkenFloor:         "#000000",
		PieceSet:            pipe.NumPieceSets - 1,
	}
}

// Resolved carries a validated Config together with the artifacts derived
// from its string-typed fields. Everything here is produced once at
// startup; no parsing happens mid-tick.
type Resolved struct {
	Config

	PaletteChoice  style.PaletteChoice
	Glyphs         pipe.Set
	DarkenFloorRGB style.RGB
	// Background is the fill color; ColorDefault when BGColor is unset.
	Background style.Color
}

// Resolve validates cfg and parses its string-typed fields. Every error
// here is a fatal configuration error, reported before the terminal is
// touched.
func (cfg Config) Resolve() (*Resolved, error) {
	if cfg.FPS < 1 {
		return nil, fmt.Errorf("fps must be at least 1, got %d", cfg.FPS)
	}
	if cfg.MinPipeLength > cfg.MaxPipeLength {
		return nil, fmt.Errorf("min pipe length (%d) must not exceed max pipe length (%d)",
			cfg.MinPipeLength, cfg.MaxPipeLength)
	}
	if cfg.MinPipeLength == 0 {
		return nil, fmt.Errorf("min pipe length must be at least 1")
	}
	if cfg.TurningProb < 0 || cfg.TurningProb > 1 {
		return nil, fmt.Errorf("turning probability must be in [0, 1], got %g", cfg.TurningProb)
	}

	palette, err := style.ParsePaletteChoice(cfg.Palette)
	if err != nil {
		return nil, err
	}

	var custom []string
	if cfg.CustomPieceSet != "" {
		custom = pipe.SplitGlyphs(cfg.CustomPieceSet)
	}
	glyphs, err := pipe.ResolveSet(cfg.PieceSet, custom)
	if err != nil {
		return nil, err
	}

	floor, err := style.ParseHex(cfg.DarkenFloor)
	if err != nil {
		return nil, fmt.Errorf("darken floor: %w", err)
	}

	bg := style.Default
	if cfg.BGColor != "" {
		rgb, err := style.ParseHex(cfg.BGColor)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		bg = style.RGBColor(rgb)
	}

	return &Resolved{
		Config:         cfg,
		PaletteChoice:  palette,
		Glyphs:         glyphs,
		DarkenFloorRGB: floor,
		Background:     bg,
	}, nil
}
