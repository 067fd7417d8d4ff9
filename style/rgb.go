package style

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB stores color channels as floats in [0, 1].
type RGB struct {
	R, G, B float64
}

// Shifted adds step to every channel, clamping each to [0, 1].
func (c RGB) Shifted(step float64) RGB {
	return RGB{
		R: clamp01(c.R + step),
		G: clamp01(c.G + step),
		B: clamp01(c.B + step),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ParseHex parses a "#rrggbb" (or "#rgb") color string.
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	return RGB{R: c.R, G: c.G, B: c.B}, nil
}
