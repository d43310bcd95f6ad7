package optics

import "math"

// DMD models a digital micromirror device whose facets sit at a fixed
// deflection from the device plane: geometrically a mirror whose effective
// tilt is theta + deflection, while the aperture stays on the device plane.
type DMD struct {
	surface
	deflection float64
}

// NewDMD places a DMD at (px, py) with its facets deflected by the given
// angle in radians.
func NewDMD(deflection, aperture, px, py, theta float64, name string) *DMD {
	return &DMD{surface: newSurface(aperture, px, py, theta, name), deflection: deflection}
}

// Propagate reflects the ray off the deflected facets.
func (d *DMD) Propagate(r Ray, wavelength float64) Ray {
	return d.propagate(r, wavelength, d)
}

func (d *DMD) outgoingAngle(incoming, yLocal, wavelength float64) float64 {
	return WrapAngle(math.Pi - incoming - 2*(d.theta+d.deflection))
}
