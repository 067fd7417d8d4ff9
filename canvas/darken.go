package canvas

import "github.com/inunix3/rxpipes/style"

// Darken pulls the foreground of every non-blank cell toward the floor
// color. A channel above the floor is scaled by factor and stops at the
// floor; a channel below it is raised by the same proportion and stops at
// the floor from below, so repeated passes converge monotonically without
// ever crossing it. The raise is multiplicative, so a channel at exactly 0
// is a fixed point and never climbs toward a positive floor; convergence
// from below holds for positive channels only. Only true-color foregrounds
// are affected. Glyph content is never altered, and blank cells are
// skipped so empty canvas stays untouched.
func (c *Canvas) Darken(factor float64, floor style.RGB) {
	for i := range c.cells {
		cell := &c.cells[i]
		if cell.Blank() || cell.Fg.Kind != style.ColorRGB {
			continue
		}

		rgb := cell.Fg.RGB
		rgb.R = approach(rgb.R, floor.R, factor)
		rgb.G = approach(rgb.G, floor.G, factor)
		rgb.B = approach(rgb.B, floor.B, factor)

		cell.Fg = style.RGBColor(rgb)
	}
}

// approach moves x toward a by scaling, never crossing it.
func approach(x, a, factor float64) float64 {
	switch {
	case x > a:
		x *= factor
		if x < a {
			x = a
		}
		if x > 1 {
			x = 1
		}
	case x < a:
		x *= 1 + factor
		if x > a {
			x = a
		}
		if x < 0 {
			x = 0
		}
	}

	return x
}
