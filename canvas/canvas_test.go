package canvas

import (
	"testing"

	"github.com/inunix3/rxpipes/geom"
	"github.com/inunix3/rxpipes/style"
)

func TestNewCanvasBlank(t *testing.T) {
	c := New(geom.Point{}, 10, 5)

	w, h := c.Size()
	if w != 10 || h != 5 {
		t.Errorf("Expected size 10x5, got %dx%d", w, h)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell, ok := c.CellAt(x, y)
			if !ok {
				t.Fatalf("Expected cell at (%d, %d) to exist", x, y)
			}
			if !cell.Blank() {
				t.Errorf("Expected cell at (%d, %d) to be blank", x, y)
			}
		}
	}
}

func TestCellAtBounds(t *testing.T) {
	c := New(geom.Point{}, 4, 4)

	for _, p := range []geom.Point{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 4, Y: 0}, {X: 0, Y: 4}} {
		if _, ok := c.CellAt(p.X, p.Y); ok {
			t.Errorf("Expected CellAt(%d, %d) to be out of bounds", p.X, p.Y)
		}
	}
}

func TestPutText(t *testing.T) {
	c := New(geom.Point{}, 10, 3)

	c.MoveTo(geom.Point{X: 2, Y: 1})
	c.SetFg(style.PaletteColor(7))
	c.PutText("ab")

	cell, _ := c.CellAt(2, 1)
	if cell.Text != "a" {
		t.Errorf("Expected %q, got %q", "a", cell.Text)
	}
	if cell.Fg != style.PaletteColor(7) {
		t.Errorf("Expected white foreground, got %v", cell.Fg)
	}

	cell, _ = c.CellAt(3, 1)
	if cell.Text != "b" {
		t.Errorf("Expected %q, got %q", "b", cell.Text)
	}
}

func TestPutTextClipsAtRightEdge(t *testing.T) {
	c := New(geom.Point{}, 5, 1)

	c.MoveTo(geom.Point{X: 3, Y: 0})
	c.PutText("abcdef")

	cell, _ := c.CellAt(3, 0)
	if cell.Text != "a" {
		t.Errorf("Expected %q at x=3, got %q", "a", cell.Text)
	}
	cell, _ = c.CellAt(4, 0)
	if cell.Text != "b" {
		t.Errorf("Expected %q at x=4, got %q", "b", cell.Text)
	}
	// Nothing wrapped to the next row or panicked past the edge.
}

func TestPutTextGraphemeClusters(t *testing.T) {
	c := New(geom.Point{}, 10, 1)

	c.MoveTo(geom.Point{})
	c.PutText("éx")

	cell, _ := c.CellAt(0, 0)
	if cell.Text != "é" {
		t.Errorf("Expected combining cluster in one cell, got %q", cell.Text)
	}
	cell, _ = c.CellAt(1, 0)
	if cell.Text != "x" {
		t.Errorf("Expected %q, got %q", "x", cell.Text)
	}
}

func TestFillSetsBackground(t *testing.T) {
	c := New(geom.Point{}, 3, 3)
	bg := style.RGBColor(style.RGB{R: 0.1, G: 0.2, B: 0.3})

	c.MoveTo(geom.Point{X: 1, Y: 1})
	c.PutText("x")
	c.Fill(bg)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			cell, _ := c.CellAt(x, y)
			if !cell.Blank() {
				t.Errorf("Expected blank cell at (%d, %d) after fill", x, y)
			}
			if cell.Bg != bg {
				t.Errorf("Expected fill background at (%d, %d), got %v", x, y, cell.Bg)
			}
		}
	}

	// Text written after a fill inherits the fill background.
	c.MoveTo(geom.Point{})
	c.PutText("y")
	cell, _ := c.CellAt(0, 0)
	if cell.Bg != bg {
		t.Errorf("Expected text to inherit fill background, got %v", cell.Bg)
	}
}

func TestResizeDropsContent(t *testing.T) {
	c := New(geom.Point{}, 8, 8)

	c.MoveTo(geom.Point{X: 2, Y: 2})
	c.PutText("x")

	c.Resize(12, 6)

	w, h := c.Size()
	if w != 12 || h != 6 {
		t.Errorf("Expected size 12x6, got %dx%d", w, h)
	}
	cell, _ := c.CellAt(2, 2)
	if !cell.Blank() {
		t.Errorf("Expected content to be dropped on resize, got %q", cell.Text)
	}
}

func TestResizeSmallerReusesCapacity(t *testing.T) {
	c := New(geom.Point{}, 20, 10)
	c.Resize(5, 4)

	w, h := c.Size()
	if w != 5 || h != 4 {
		t.Errorf("Expected size 5x4, got %dx%d", w, h)
	}
	if _, ok := c.CellAt(4, 3); !ok {
		t.Error("Expected last cell to be addressable after shrink")
	}
	if _, ok := c.CellAt(5, 0); ok {
		t.Error("Expected old width to be out of bounds after shrink")
	}
}

func TestSetPos(t *testing.T) {
	c := New(geom.Point{X: 0, Y: 23}, 80, 1)

	c.SetPos(geom.Point{X: 0, Y: 39})
	if got := c.Pos(); got != (geom.Point{X: 0, Y: 39}) {
		t.Errorf("Expected pos (0, 39), got %v", got)
	}
}
