package screensaver

import (
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/inunix3/rxpipes/canvas"
	"github.com/inunix3/rxpipes/config"
	"github.com/inunix3/rxpipes/geom"
	"github.com/inunix3/rxpipes/pipe"
	"github.com/inunix3/rxpipes/style"
	"github.com/inunix3/rxpipes/terminal"
)

// Screensaver owns the run state, the main canvas and the stats strip, and
// drives the growth/draw/composite cycle.
type Screensaver struct {
	state     State
	disp      terminal.Display
	canv      *canvas.Canvas
	statsCanv *canvas.Canvas
	cfg       *config.Resolved
	rng       *rand.Rand
}

// New sizes the canvases from the display and paints the background.
func New(disp terminal.Display, cfg *config.Resolved, rng *rand.Rand) *Screensaver {
	w, h := disp.Size()

	s := &Screensaver{
		disp:      disp,
		canv:      canvas.New(geom.Point{}, w, h),
		statsCanv: canvas.New(geom.Point{X: 0, Y: h - 1}, w, 1),
		cfg:       cfg,
		rng:       rng,
	}
	s.drawBackground()

	return s
}

// Run drives the animation until quit. Input polling doubles as the frame
// rate limiter: the loop waits up to one frame period for an event, so a
// key press or resize shortens the wait but never skips the subsequent
// update.
func (s *Screensaver) Run(events <-chan tcell.Event) {
	period := time.Second / time.Duration(s.cfg.FPS)

	for !s.state.Quit {
		select {
		case ev := <-events:
			s.handleEvent(ev)
		case <-time.After(period):
		}

		if s.state.Quit || s.state.Pause {
			continue
		}

		s.tick()
	}
}

// tick advances the pipe by one piece and pushes the frame out.
func (s *Screensaver) tick() {
	s.genNextPiece()
	s.drawPiece()

	if s.cfg.ShowStats {
		s.drawStats()
	}

	s.render()
}

// genNextPiece advances the active piece, starting a fresh pipe first if
// the current one is exhausted.
func (s *Screensaver) genNextPiece() {
	st := &s.state
	w, h := s.canv.Size()

	if st.PiecesRemaining == 0 {
		st.PiecesRemaining = s.randomPipeLength()

		st.Piece = pipe.Generate(s.rng, s.cfg.PaletteChoice)
		st.Piece.Pos = geom.Point{X: s.rng.Intn(w), Y: s.rng.Intn(h)}

		// The very first pipe is counted once it has pieces on screen.
		if st.PiecesTotal > 0 {
			st.PipesTotal++
		}

		st.CurrentlyDrawn = 0
	}

	st.Piece.Pos.Advance(st.Piece.Dir)
	st.Piece.Pos.Wrap(w, h)
	st.Piece.PrevDir = st.Piece.Dir

	if s.rng.Float64() < s.cfg.TurningProb {
		st.Piece.Dir = st.Piece.Dir.Turned(s.rng)
	}
}

func (s *Screensaver) randomPipeLength() uint64 {
	// Unsigned arithmetic so the full uint64 length domain works. The
	// span never wraps to zero: min is validated to be at least 1.
	span := s.cfg.MaxPipeLength - s.cfg.MinPipeLength + 1
	return s.cfg.MinPipeLength + s.rng.Uint64()%span
}

// drawPiece bakes the active piece into the canvas and updates the
// counters, clearing or darkening when a threshold is crossed.
func (s *Screensaver) drawPiece() {
	st := &s.state

	s.canv.MoveTo(st.Piece.Pos)

	if st.Piece.Color.Kind != style.ColorDefault {
		if s.cfg.Gradient {
			st.Piece.Color = gradientStep(st.Piece.Color, st.Piece.Gradient, s.cfg.GradientStep)
		}
		s.canv.SetFg(st.Piece.Color)
	}

	s.canv.PutText(s.cfg.Glyphs.Glyph(st.Piece.PrevDir, st.Piece.Dir))

	st.PiecesTotal++
	st.LayerPiecesTotal++
	st.CurrentlyDrawn++
	st.PiecesRemaining--

	if s.cfg.MaxDrawnPieces > 0 && st.PiecesTotal >= s.cfg.MaxDrawnPieces {
		s.clear()
	} else if s.cfg.DepthMode && st.LayerPiecesTotal >= s.cfg.LayerMaxDrawnPieces {
		s.darkenPreviousLayers()
	}
}

// gradientStep drifts a true color one step along its phase. Palette and
// default colors pass through unchanged.
func gradientStep(c style.Color, phase style.GradientPhase, step float64) style.Color {
	if c.Kind != style.ColorRGB {
		return c
	}

	if phase == style.Darkening {
		step = -step
	}

	return style.RGBColor(c.RGB.Shifted(step))
}

// clear wipes the canvas and zeroes every counter. Zeroing PiecesRemaining
// ends the current pipe, so the next tick starts a fresh one.
func (s *Screensaver) clear() {
	st := &s.state
	st.CurrentlyDrawn = 0
	st.PiecesRemaining = 0
	st.LayerPiecesTotal = 0
	st.PiecesTotal = 0
	st.LayersDrawn = 0
	st.PipesTotal = 0

	s.drawBackground()
}

// darkenPreviousLayers fades everything drawn so far one step toward the
// floor color and opens a new layer.
func (s *Screensaver) darkenPreviousLayers() {
	st := &s.state
	st.CurrentlyDrawn = 0
	st.PiecesRemaining = 0
	st.LayerPiecesTotal = 0
	st.LayersDrawn++

	s.canv.Darken(s.cfg.DarkenFactor, s.cfg.DarkenFloorRGB)
}

func (s *Screensaver) drawBackground() {
	s.canv.Fill(s.cfg.Background)
}

// render composites the canvases into the pending frame and flushes the
// changed cells.
func (s *Screensaver) render() {
	s.disp.CopyCanvas(s.canv)

	if s.cfg.ShowStats {
		s.disp.CopyCanvas(s.statsCanv)
	}

	s.disp.Flush()
}

// redraw drops the composited frame and repaints everything.
func (s *Screensaver) redraw() {
	s.disp.Clear()
	s.render()
}
