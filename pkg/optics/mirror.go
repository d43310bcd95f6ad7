package optics

import "math"

// Mirror is a flat front-surface mirror.
type Mirror struct {
	surface
}

// NewMirror places a mirror of the given full aperture width at (px, py),
// tilted by theta against the global Y axis. The name is a label for
// drawing only.
func NewMirror(aperture, px, py, theta float64, name string) *Mirror {
	return &Mirror{surface: newSurface(aperture, px, py, theta, name)}
}

// Propagate reflects the ray off the mirror plane.
func (m *Mirror) Propagate(r Ray, wavelength float64) Ray {
	return m.propagate(r, wavelength, m)
}

// outgoingAngle is the planar reflection law.
//
// Convention note: the intersection test works with the ray angle shifted
// into the element's frame (theta + element theta), while the law below
// consumes the raw global angle and reintroduces the tilt through the
// -2*theta term. The two sides must stay on this convention together;
// changing either one alone changes the geometry of every tilted mirror.
func (m *Mirror) outgoingAngle(incoming, yLocal, wavelength float64) float64 {
	return WrapAngle(math.Pi - incoming - 2*m.theta)
}
