package screensaver

import "github.com/inunix3/rxpipes/pipe"

// State tracks the active growth point and the piece/pipe/layer counters.
// A single instance lives for the whole run; clears reset it, they never
// replace it.
type State struct {
	// Current pipe piece to be drawn.
	Piece pipe.Piece
	// Total of all drawn pieces since the last clear.
	PiecesTotal uint64
	// Total of all drawn pieces in the current layer.
	LayerPiecesTotal uint64
	// Number of pieces drawn for the current pipe.
	CurrentlyDrawn uint64
	// Number of pieces of the current pipe not drawn yet.
	PiecesRemaining uint64
	// Total of all drawn pipes since the last clear.
	PipesTotal uint64
	// Total of all darkened layers since the last clear.
	LayersDrawn uint64
	// Ends the main loop.
	Quit bool
	// Suspends growth and drawing; input handling continues.
	Pause bool
}
