package canvas

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/inunix3/rxpipes/geom"
	"github.com/inunix3/rxpipes/style"
)

// Cell is one grid position: its glyph and colors. The zero value is a
// blank cell with default colors.
type Cell struct {
	Text string
	Fg   style.Color
	Bg   style.Color
}

// Blank reports whether the cell contains no visible glyph.
func (c Cell) Blank() bool {
	return strings.TrimSpace(c.Text) == ""
}

// Canvas is an addressable grid of styled cells representing one drawable
// region. The position offset places the canvas when compositing onto the
// terminal frame (the stats strip is a canvas anchored to the bottom row).
type Canvas struct {
	pos    geom.Point
	width  int
	height int
	cells  []Cell

	// Drawing state for PutText.
	cursor geom.Point
	fg     style.Color
	bg     style.Color
}

// New creates a canvas of the given size at the given offset.
func New(pos geom.Point, width, height int) *Canvas {
	return &Canvas{
		pos:    pos,
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Pos returns the compositing offset.
func (c *Canvas) Pos() geom.Point {
	return c.pos
}

// SetPos moves the compositing offset.
func (c *Canvas) SetPos(p geom.Point) {
	c.pos = p
}

// Resize adjusts the grid dimensions, reallocating only if the capacity is
// insufficient. Content is not preserved; callers must redraw.
func (c *Canvas) Resize(width, height int) {
	size := width * height
	if cap(c.cells) < size {
		c.cells = make([]Cell, size)
	} else {
		c.cells = c.cells[:size]
		for i := range c.cells {
			c.cells[i] = Cell{}
		}
	}

	c.width = width
	c.height = height
	c.cursor = geom.Point{}
}

// Clear resets every cell to blank with default colors.
func (c *Canvas) Clear() {
	c.Fill(style.Default)
}

// Fill resets every cell to blank with the given background, which also
// becomes the background for subsequently written text.
func (c *Canvas) Fill(bg style.Color) {
	for i := range c.cells {
		c.cells[i] = Cell{Bg: bg}
	}
	c.bg = bg
	c.cursor = geom.Point{}
}

// MoveTo positions the cursor for the next PutText.
func (c *Canvas) MoveTo(p geom.Point) {
	c.cursor = p
}

// SetFg sets the foreground color applied to subsequently written cells.
func (c *Canvas) SetFg(col style.Color) {
	c.fg = col
}

// SetBg sets the background color applied to subsequently written cells.
func (c *Canvas) SetBg(col style.Color) {
	c.bg = col
}

// PutText writes s at the cursor, one grapheme cluster per cell, advancing
// the cursor by each cluster's display width. Text past the right edge is
// clipped.
func (c *Canvas) PutText(s string) {
	if c.cursor.Y < 0 || c.cursor.Y >= c.height {
		return
	}

	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		if c.cursor.X >= c.width {
			return
		}

		cluster := gr.Str()
		if c.cursor.X >= 0 {
			c.cells[c.cursor.Y*c.width+c.cursor.X] = Cell{
				Text: cluster,
				Fg:   c.fg,
				Bg:   c.bg,
			}
		}

		w := runewidth.StringWidth(cluster)
		if w < 1 {
			w = 1
		}
		c.cursor.X += w
	}
}

// CellAt returns the cell at (x, y) and whether the position is in bounds.
func (c *Canvas) CellAt(x, y int) (Cell, bool) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Cell{}, false
	}
	return c.cells[y*c.width+x], true
}
