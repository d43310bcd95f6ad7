package optics

import "math"

// Ray is the state of a light ray at one point along its path: a position
// in the global plane and a propagation angle in radians measured against
// the global X axis.
//
// A terminated ray (one that missed an element's aperture) carries NaN in
// its angle, and NaN positions once it has been carried past the element
// it died at. Termination is absorbing: every element downstream of a
// terminated ray reproduces the sentinel.
type Ray struct {
	X, Y, Theta float64
}

// TerminatedRay returns the absorbing sentinel state.
func TerminatedRay() Ray {
	nan := math.NaN()
	return Ray{X: nan, Y: nan, Theta: nan}
}

// Terminated reports whether the ray has been terminated. NaN never
// compares equal to anything, itself included, so the check has to go
// through math.IsNaN rather than ==.
func (r Ray) Terminated() bool { return math.IsNaN(r.Theta) }
