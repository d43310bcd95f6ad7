package optics

import "math"

// Grating is a transmissive diffraction grating, described by its groove
// density in grooves per millimeter and evaluated at a single diffraction
// order. This is the one element kind that reads the wavelength.
type Grating struct {
	surface
	grooves float64
	order   int
}

// NewGrating places a grating with the given groove density (grooves/mm)
// at (px, py), traced at diffraction order m.
func NewGrating(grooves float64, order int, aperture, px, py, theta float64, name string) *Grating {
	return &Grating{
		surface: newSurface(aperture, px, py, theta, name),
		grooves: grooves,
		order:   order,
	}
}

// Propagate diffracts the ray through the grating plane.
func (g *Grating) Propagate(r Ray, wavelength float64) Ray {
	return g.propagate(r, wavelength, g)
}

// outgoingAngle applies the grating equation sin(out) = sin(in) - m*lambda/d
// in the grating's local frame. An order diffracted beyond +/-90 degrees is
// evanescent and terminates the ray.
func (g *Grating) outgoingAngle(incoming, yLocal, wavelength float64) float64 {
	d := 1e-3 / g.grooves // groove pitch in meters
	sin := math.Sin(incoming+g.theta) - float64(g.order)*wavelength/d
	if sin < -1 || sin > 1 {
		return math.NaN()
	}
	return WrapAngle(math.Asin(sin) - g.theta)
}
