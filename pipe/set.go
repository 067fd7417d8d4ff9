package pipe

import (
	"fmt"

	"github.com/rivo/uniseg"

	"github.com/inunix3/rxpipes/geom"
)

// SetSize is the number of glyph slots in a piece set: straight vertical,
// straight horizontal and the four corner turns.
const SetSize = 6

// Set is a resolved 6-glyph piece set. Entries are grapheme clusters, not
// necessarily single runes.
type Set [SetSize]string

// pieceSets holds the predefined sets, indexed by the -P/--piece-set
// selector. All sets share the same slot layout.
var pieceSets = [...]Set{
	{"|", "-", "+", "+", "+", "+"}, // 0: ASCII
	{"·", "·", "·", "·", "·", "·"}, // 1: thin dots
	{"•", "•", "•", "•", "•", "•"}, // 2: bold dots
	{"│", "─", "┌", "┐", "└", "┘"}, // 3: thin
	{"│", "─", "╭", "╮", "╰", "╯"}, // 4: thin, rounded corners
	{"║", "═", "╔", "╗", "╚", "╝"}, // 5: double
	{"┃", "━", "┏", "┓", "┗", "┛"}, // 6: bold (default)
}

// NumPieceSets is the number of predefined piece sets.
const NumPieceSets = len(pieceSets)

// indexMap maps [direction of the previous piece][current direction] to a
// slot in a Set.
var indexMap = [4][4]int{
	geom.Up:    {0, 0, 2, 3},
	geom.Down:  {0, 0, 4, 5},
	geom.Right: {5, 3, 1, 1},
	geom.Left:  {4, 2, 1, 1},
}

// SlotIndex maps a direction pair to its glyph slot. Pure function of the
// pair.
func SlotIndex(prev, dir geom.Direction) int {
	return indexMap[prev][dir]
}

// Glyph returns the glyph for a piece that entered from prev and now heads
// in dir.
func (s Set) Glyph(prev, dir geom.Direction) string {
	return s[SlotIndex(prev, dir)]
}

// ResolveSet picks the glyph set to draw with. A custom set takes
// precedence over the numeric selector and must contain exactly SetSize
// glyphs; anything else is a fatal configuration error, never an
// out-of-bounds read at draw time.
func ResolveSet(selector int, custom []string) (Set, error) {
	if custom != nil {
		if len(custom) != SetSize {
			return Set{}, fmt.Errorf("custom piece set must contain exactly %d glyphs, got %d", SetSize, len(custom))
		}

		var s Set
		copy(s[:], custom)
		return s, nil
	}

	if selector < 0 || selector >= NumPieceSets {
		return Set{}, fmt.Errorf("piece set id %d out of range [0, %d]", selector, NumPieceSets-1)
	}

	return pieceSets[selector], nil
}

// SplitGlyphs splits a custom piece-set string into grapheme clusters
// (UAX #29), so multi-rune glyphs count as single pieces.
func SplitGlyphs(s string) []string {
	var glyphs []string

	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		glyphs = append(glyphs, gr.Str())
	}

	return glyphs
}
