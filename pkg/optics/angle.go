package optics

import "math"

// DefaultWavelength is the wavelength assumed when the caller does not
// care: visible green light, in meters. Only wavelength-dependent elements
// such as gratings consult it.
const DefaultWavelength = 525e-9

// WrapAngle wraps an angle in radians into (-pi, pi]. Input angles need not
// be pre-wrapped; the result is a fixed point of WrapAngle itself.
func WrapAngle(theta float64) float64 {
	for theta > math.Pi {
		theta -= 2 * math.Pi
	}
	for theta <= -math.Pi {
		theta += 2 * math.Pi
	}
	return theta
}
