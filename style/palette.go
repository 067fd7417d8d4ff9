package style

import (
	"fmt"
	"math/rand"
)

// PaletteChoice selects the set of colors pipes draw from.
type PaletteChoice uint8

const (
	// PaletteNone disables pipe coloring.
	PaletteNone PaletteChoice = iota
	// PaletteBase uses the 16 colors predefined by the terminal.
	PaletteBase
	// PaletteRGB uses true colors (requires terminal support).
	PaletteRGB
)

// ParsePaletteChoice parses the --palette flag value.
func ParsePaletteChoice(s string) (PaletteChoice, error) {
	switch s {
	case "none":
		return PaletteNone, nil
	case "base-colors":
		return PaletteBase, nil
	case "rgb":
		return PaletteRGB, nil
	}
	return PaletteNone, fmt.Errorf("unknown palette %q (expected none, base-colors or rgb)", s)
}

func (p PaletteChoice) String() string {
	switch p {
	case PaletteBase:
		return "base-colors"
	case PaletteRGB:
		return "rgb"
	default:
		return "none"
	}
}

// GradientPhase says whether a true color drifts lighter or darker over
// successive ticks.
type GradientPhase uint8

const (
	Lightening GradientPhase = iota
	Darkening
)

// RandomGradientPhase samples a phase: 1-in-4 Lightening, otherwise
// Darkening.
func RandomGradientPhase(rng *rand.Rand) GradientPhase {
	if rng.Intn(4) == 0 {
		return Lightening
	}
	return Darkening
}
