package screensaver

import (
	"github.com/gdamore/tcell/v2"

	"github.com/inunix3/rxpipes/geom"
)

// handleEvent dispatches one terminal event. Event kinds other than keys
// and resizes are ignored.
func (s *Screensaver) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		s.handleKey(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		s.handleResize(w, h)
	}
}

func (s *Screensaver) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		s.state.Quit = true
		return
	}

	// Every other binding requires an unmodified key press.
	if ev.Modifiers() != tcell.ModNone {
		return
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		s.state.Quit = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			s.state.Quit = true
		case ' ':
			s.state.Pause = !s.state.Pause
		case 'c':
			s.clear()
		case 'l':
			s.redraw()
		case 's':
			s.cfg.ShowStats = !s.cfg.ShowStats
		}
	}
}

// handleResize adjusts both canvases to the new terminal size and forces a
// full repaint, since canvas content does not survive a resize.
func (s *Screensaver) handleResize(w, h int) {
	s.canv.Resize(w, h)
	s.drawBackground()

	s.statsCanv.SetPos(geom.Point{X: 0, Y: h - 1})
	_, statsH := s.statsCanv.Size()
	s.statsCanv.Resize(w, statsH)

	s.redraw()
}
