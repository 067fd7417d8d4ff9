package style

import (
	"math/rand"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{"Black", "#000000", RGB{0, 0, 0}, false},
		{"White", "#ffffff", RGB{1, 1, 1}, false},
		{"Red", "#ff0000", RGB{1, 0, 0}, false},
		{"Missing hash", "ff0000", RGB{}, true},
		{"Too short", "#ff00", RGB{}, true},
		{"Not hex", "#zzzzzz", RGB{}, true},
		{"Empty", "", RGB{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for %q: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestShiftedClamps(t *testing.T) {
	tests := []struct {
		name string
		c    RGB
		step float64
		want RGB
	}{
		{"Lighten", RGB{0.5, 0.5, 0.5}, 0.1, RGB{0.6, 0.6, 0.6}},
		{"Darken", RGB{0.5, 0.5, 0.5}, -0.1, RGB{0.4, 0.4, 0.4}},
		{"Clamp at one", RGB{0.95, 1, 0.5}, 0.1, RGB{1, 1, 0.6}},
		{"Clamp at zero", RGB{0.05, 0, 0.5}, -0.1, RGB{0, 0, 0.4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.Shifted(tt.step)
			if !rgbNear(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func rgbNear(a, b RGB) bool {
	const eps = 1e-9
	near := func(x, y float64) bool {
		d := x - y
		return d < eps && d > -eps
	}
	return near(a.R, b.R) && near(a.G, b.G) && near(a.B, b.B)
}

func TestColorName(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want string
	}{
		{"Default", Default, "DEFAULT"},
		{"Black", PaletteColor(0), "BLACK"},
		{"White", PaletteColor(7), "WHITE"},
		{"Bright gray", PaletteColor(15), "BRIGHT GRAY"},
		{"True color", RGBColor(RGB{1, 0, 0.5}), "#ff0080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorName(tt.c); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParsePaletteChoice(t *testing.T) {
	tests := []struct {
		input   string
		want    PaletteChoice
		wantErr bool
	}{
		{"none", PaletteNone, false},
		{"base-colors", PaletteBase, false},
		{"rgb", PaletteRGB, false},
		{"RGB", PaletteNone, true},
		{"", PaletteNone, true},
		{"truecolor", PaletteNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePaletteChoice(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for %q: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPaletteChoiceRoundTrip(t *testing.T) {
	for _, p := range []PaletteChoice{PaletteNone, PaletteBase, PaletteRGB} {
		got, err := ParsePaletteChoice(p.String())
		if err != nil {
			t.Fatalf("Round trip of %v failed: %v", p, err)
		}
		if got != p {
			t.Errorf("Expected %v, got %v", p, got)
		}
	}
}

func TestRandomGradientPhaseCoversBoth(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	seen := map[GradientPhase]int{}
	for i := 0; i < 400; i++ {
		seen[RandomGradientPhase(rng)]++
	}

	if seen[Lightening] == 0 || seen[Darkening] == 0 {
		t.Errorf("Expected both phases over 400 draws, got %v", seen)
	}
	// Darkening is sampled 3 times as often.
	if seen[Darkening] <= seen[Lightening] {
		t.Errorf("Expected Darkening to dominate, got %v", seen)
	}
}
