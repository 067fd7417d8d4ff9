package geom

// Point is a 2D coordinate on the drawing plane.
type Point struct {
	X, Y int
}

// Advance moves the point one unit in the given direction.
func (p *Point) Advance(dir Direction) {
	switch dir {
	case Up:
		p.Y--
	case Down:
		p.Y++
	case Right:
		p.X++
	case Left:
		p.X--
	}
}

// Wrap maps the point into [0, width) x [0, height) with true modular
// arithmetic per axis. The plane behaves as a torus: a point walking off
// one edge reappears on the opposite edge at the correct phase. E.g. on a
// plane 24 units wide, x = -28 wraps to 20.
//
// Both dimensions must be positive.
func (p *Point) Wrap(width, height int) {
	p.X = wrapCoord(p.X, width)
	p.Y = wrapCoord(p.Y, height)
}

func wrapCoord(x, m int) int {
	x %= m
	if x < 0 {
		x += m
	}
	return x
}
