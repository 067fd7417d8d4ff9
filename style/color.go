package style

import "fmt"

// ColorKind discriminates the Color variants.
type ColorKind uint8

const (
	// ColorDefault is the terminal's default color.
	ColorDefault ColorKind = iota
	// ColorPalette is one of the 16 base palette entries.
	ColorPalette
	// ColorRGB is a true color with a default fallback.
	ColorRGB
)

// Color is a tagged union over the three terminal color models. Operations
// that mutate color values (darkening, gradient drift) are defined only for
// the ColorRGB variant; the other variants pass through unchanged.
type Color struct {
	Kind    ColorKind
	Palette uint8 // valid when Kind == ColorPalette
	RGB     RGB   // valid when Kind == ColorRGB
}

// Default is the terminal's default color.
var Default = Color{Kind: ColorDefault}

// PaletteColor returns a base palette color (0-15).
func PaletteColor(idx uint8) Color {
	return Color{Kind: ColorPalette, Palette: idx}
}

// RGBColor returns a true color.
func RGBColor(c RGB) Color {
	return Color{Kind: ColorRGB, RGB: c}
}

var baseColorNames = [16]string{
	"BLACK", "RED", "GREEN", "YELLOW",
	"BLUE", "MAGENTA", "CYAN", "WHITE",
	"BRIGHT BLACK", "BRIGHT RED", "BRIGHT GREEN", "BRIGHT YELLOW",
	"BRIGHT BLUE", "BRIGHT MAGENTA", "BRIGHT CYAN", "BRIGHT GRAY",
}

// ColorName renders a color for the stats line.
func ColorName(c Color) string {
	switch c.Kind {
	case ColorPalette:
		if int(c.Palette) < len(baseColorNames) {
			return baseColorNames[c.Palette]
		}
		return fmt.Sprintf("PALETTE %d", c.Palette)
	case ColorRGB:
		return fmt.Sprintf("#%02x%02x%02x",
			uint8(c.RGB.R*255+0.5),
			uint8(c.RGB.G*255+0.5),
			uint8(c.RGB.B*255+0.5))
	default:
		return "DEFAULT"
	}
}
