package pipe

import (
	"math/rand"

	"github.com/inunix3/rxpipes/geom"
	"github.com/inunix3/rxpipes/style"
)

// Piece is the single active growth point of the pipe currently being
// drawn. Past pieces are baked into the canvas once drawn; no pipe history
// is kept.
type Piece struct {
	// Position of the piece.
	Pos geom.Point
	// Direction of the preceding piece.
	PrevDir geom.Direction
	// Direction of the piece.
	Dir geom.Direction
	// Color of the piece.
	Color style.Color
	// Gradient drift phase.
	Gradient style.GradientPhase
}

// Generate creates a piece with a random heading and a color sampled from
// the palette. The initial heading doubles as the previous direction so
// the first glyph renders as a straight segment.
func Generate(rng *rand.Rand, palette style.PaletteChoice) Piece {
	dir := geom.RandomDirection(rng)

	return Piece{
		PrevDir:  dir,
		Dir:      dir,
		Color:    generateColor(rng, palette),
		Gradient: style.RandomGradientPhase(rng),
	}
}

func generateColor(rng *rand.Rand, palette style.PaletteChoice) style.Color {
	switch palette {
	case style.PaletteBase:
		return style.PaletteColor(uint8(rng.Intn(16)))
	case style.PaletteRGB:
		return style.RGBColor(style.RGB{
			R: rng.Float64(),
			G: rng.Float64(),
			B: rng.Float64(),
		})
	default:
		return style.Default
	}
}
