package screensaver

import (
	"fmt"

	"github.com/inunix3/rxpipes/geom"
	"github.com/inunix3/rxpipes/style"
)

// drawStats renders the counters into the bottom strip: gray text on a
// black background.
func (s *Screensaver) drawStats() {
	st := &s.state

	s.statsCanv.Fill(style.PaletteColor(0))
	s.statsCanv.SetFg(style.PaletteColor(7))
	s.statsCanv.MoveTo(geom.Point{})

	pipeLen := st.CurrentlyDrawn + st.PiecesRemaining

	line := fmt.Sprintf(
		"pcs. drawn: %d, lpcs. drawn: %d, c. pcs. drawn: %d, pps. drawn: %d, pcs. rem: %d, l. drawn: %d, pps. len: %d, pipe color: %s",
		st.PiecesTotal,
		st.LayerPiecesTotal,
		st.CurrentlyDrawn,
		st.PipesTotal,
		st.PiecesRemaining,
		st.LayersDrawn,
		pipeLen,
		style.ColorName(st.Piece.Color),
	)

	s.statsCanv.PutText(line)
}
