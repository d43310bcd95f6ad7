package config

import (
	"fmt"

	"github.com/opticsim/raybench/pkg/optics"
)

// BuildElements constructs the optical elements described by the bench,
// in bench order.
func (b BenchConfig) BuildElements() ([]optics.Element, error) {
	elements := make([]optics.Element, 0, len(b.Elements))
	for i, ec := range b.Elements {
		e, err := ec.build()
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		elements = append(elements, e)
	}
	return elements, nil
}

func (ec ElementConfig) build() (optics.Element, error) {
	if len(ec.Position) != 2 {
		return nil, fmt.Errorf("position must be [x, y], got %v", ec.Position)
	}
	px, py := ec.Position[0], ec.Position[1]

	switch ec.Kind {
	case "mirror":
		return optics.NewMirror(ec.Aperture, px, py, ec.Theta, ec.Name), nil
	case "lens":
		if ec.Focal == 0 {
			return nil, fmt.Errorf("lens %q needs a non-zero focal length", ec.Name)
		}
		return optics.NewLens(ec.Focal, ec.Aperture, px, py, ec.Theta, ec.Name), nil
	case "grating":
		if ec.GroovesPerMM <= 0 {
			return nil, fmt.Errorf("grating %q needs a positive groove density", ec.Name)
		}
		return optics.NewGrating(ec.GroovesPerMM, ec.Order, ec.Aperture, px, py, ec.Theta, ec.Name), nil
	case "dmd":
		return optics.NewDMD(ec.Deflection, ec.Aperture, px, py, ec.Theta, ec.Name), nil
	default:
		return nil, fmt.Errorf("unknown element kind %q", ec.Kind)
	}
}

// BuildRays constructs the input rays. Each configured ray must be the
// full [x, y, theta] triple; anything else is a caller error.
func (b BenchConfig) BuildRays() ([]optics.Ray, error) {
	rays := make([]optics.Ray, 0, len(b.Rays))
	for i, rc := range b.Rays {
		if len(rc.Ray) != 3 {
			return nil, fmt.Errorf("ray %d: want [x, y, theta], got %v", i, rc.Ray)
		}
		rays = append(rays, optics.Ray{X: rc.Ray[0], Y: rc.Ray[1], Theta: rc.Ray[2]})
	}
	return rays, nil
}

// ScanVariants expands the bench into one variant per scan angle, or just
// the bench itself when no scan is configured.
func (b BenchConfig) ScanVariants() ([]BenchConfig, error) {
	if b.Scan == nil {
		return []BenchConfig{b}, nil
	}
	angles, err := b.Scan.ScanAngles()
	if err != nil {
		return nil, err
	}
	variants := make([]BenchConfig, 0, len(angles))
	for _, a := range angles {
		v, err := b.WithScanAngle(a)
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, nil
}

// WithScanAngle returns a copy of the bench with the scanned element's
// steering angle replaced: the facet deflection for a DMD, the tilt for
// every other kind. The bench itself is left untouched.
func (b BenchConfig) WithScanAngle(angle float64) (BenchConfig, error) {
	if b.Scan == nil {
		return b, nil
	}

	out := b
	out.Elements = append([]ElementConfig(nil), b.Elements...)
	for i := range out.Elements {
		if out.Elements[i].Name != b.Scan.Element {
			continue
		}
		if out.Elements[i].Kind == "dmd" {
			out.Elements[i].Deflection = angle
		} else {
			out.Elements[i].Theta = angle
		}
		return out, nil
	}
	return b, fmt.Errorf("scan element %q not found on the bench", b.Scan.Element)
}
