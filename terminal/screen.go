package terminal

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/inunix3/rxpipes/canvas"
	"github.com/inunix3/rxpipes/style"
)

// Display is the surface the screensaver composites onto. Satisfied by
// Screen; tests substitute a fake.
type Display interface {
	// Size returns the current frame dimensions.
	Size() (width, height int)
	// CopyCanvas composites a canvas into the pending frame at the
	// canvas offset.
	CopyCanvas(c *canvas.Canvas)
	// Clear drops the pending frame so the next Flush repaints every
	// cell.
	Clear()
	// Flush pushes only the cells changed since the previous flush.
	Flush()
}

// Screen owns the terminal for the lifetime of the program: raw mode, the
// alternate screen buffer and the hidden cursor.
type Screen struct {
	tscr tcell.Screen
}

// New opens the terminal and prepares it for drawing.
func New() (*Screen, error) {
	tscr, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("cannot associate terminal with a screen: %w", err)
	}
	if err := tscr.Init(); err != nil {
		return nil, fmt.Errorf("failed to prepare terminal for drawing: %w", err)
	}

	tscr.HideCursor()

	return &Screen{tscr: tscr}, nil
}

// Fini restores the previous terminal state: leaves the alternate screen,
// shows the cursor and disables raw mode.
func (s *Screen) Fini() {
	s.tscr.Fini()
}

// Size returns the terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.tscr.Size()
}

// Clear drops the pending frame; the next Flush repaints in full.
func (s *Screen) Clear() {
	s.tscr.Clear()
}

// CopyCanvas composites the canvas into the pending frame at the canvas
// offset.
func (s *Screen) CopyCanvas(c *canvas.Canvas) {
	pos := c.Pos()
	w, h := c.Size()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell, _ := c.CellAt(x, y)
			st := tcell.StyleDefault.
				Foreground(toTcellColor(cell.Fg)).
				Background(toTcellColor(cell.Bg))

			mainc, combc := SplitCluster(cell.Text)
			s.tscr.SetContent(pos.X+x, pos.Y+y, mainc, combc, st)
		}
	}
}

// Flush pushes only the cells changed since the previous flush.
func (s *Screen) Flush() {
	s.tscr.Show()
}

// Events feeds terminal events into a channel. PollEvent blocks, so a
// dedicated goroutine is needed to multiplex input with the frame timer.
func (s *Screen) Events() <-chan tcell.Event {
	ch := make(chan tcell.Event, 16)

	go func() {
		for {
			ev := s.tscr.PollEvent()
			if ev == nil {
				// The screen was finalized.
				return
			}
			ch <- ev
		}
	}()

	return ch
}

// HandleCrash restores the terminal and reports the panic before exiting.
// Deferred around the run path so an internal fault never leaves the shell
// in raw mode on the alternate screen.
func (s *Screen) HandleCrash(r any) {
	if r == nil {
		return
	}

	s.tscr.Fini()

	fmt.Fprintf(os.Stderr, "crash detected: %v\n", r)
	fmt.Fprintf(os.Stderr, "stack trace:\n%s\n", debug.Stack())

	os.Exit(1)
}

// SplitCluster splits a grapheme cluster into the primary rune and its
// combining runes, the form SetContent expects. An empty cluster maps to a
// blank cell.
func SplitCluster(s string) (mainc rune, combc []rune) {
	if s == "" {
		return ' ', nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return runes[0], runes[1:]
}

func toTcellColor(c style.Color) tcell.Color {
	switch c.Kind {
	case style.ColorPalette:
		return tcell.PaletteColor(int(c.Palette))
	case style.ColorRGB:
		return tcell.NewRGBColor(
			int32(c.RGB.R*255+0.5),
			int32(c.RGB.G*255+0.5),
			int32(c.RGB.B*255+0.5),
		)
	default:
		return tcell.ColorDefault
	}
}
