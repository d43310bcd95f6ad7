package canvas

import (
	"fmt"
	"image/color"
	"math/rand"
)

// ParseColor parses a #rrggbb hex color.
func ParseColor(s string) (color.Color, error) {
	var r, g, b uint8
	if len(s) != 7 || s[0] != '#' {
		return nil, fmt.Errorf("color must look like #rrggbb, got %q", s)
	}
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return nil, fmt.Errorf("color must look like #rrggbb, got %q", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// RayColors builds the per-ray color set: parsed where a value is given,
// otherwise drawn from rng. The source is passed in rather than using the
// package-global one so runs are reproducible under a fixed seed.
func RayColors(specs []string, rng *rand.Rand) ([]color.Color, error) {
	colors := make([]color.Color, len(specs))
	for i, s := range specs {
		if s == "" {
			colors[i] = randomColor(rng)
			continue
		}
		c, err := ParseColor(s)
		if err != nil {
			return nil, fmt.Errorf("ray %d: %w", i, err)
		}
		colors[i] = c
	}
	return colors, nil
}

// randomColor stays away from white so rays remain visible on the
// background.
func randomColor(rng *rand.Rand) color.Color {
	return color.RGBA{
		R: uint8(rng.Intn(200)),
		G: uint8(rng.Intn(200)),
		B: uint8(rng.Intn(200)),
		A: 255,
	}
}
