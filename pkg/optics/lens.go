package optics

import "math"

// Lens is an ideal thin lens with focal length f (positive converging,
// negative diverging), in the same units as the bench coordinates.
type Lens struct {
	surface
	f float64
}

// NewLens places a thin lens of focal length f at (px, py).
func NewLens(f, aperture, px, py, theta float64, name string) *Lens {
	return &Lens{surface: newSurface(aperture, px, py, theta, name), f: f}
}

// Propagate refracts the ray through the lens plane.
func (l *Lens) Propagate(r Ray, wavelength float64) Ray {
	return l.propagate(r, wavelength, l)
}

// outgoingAngle applies the thin-lens deviation in the lens's local frame:
// a ray arriving at height y with slope tan(theta) leaves with the slope
// reduced by y/f.
func (l *Lens) outgoingAngle(incoming, yLocal, wavelength float64) float64 {
	local := incoming + l.theta
	out := math.Atan(math.Tan(local) - yLocal/l.f)
	return WrapAngle(out - l.theta)
}
