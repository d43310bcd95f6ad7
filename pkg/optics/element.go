package optics

import "math"

// Element is one optical component on the bench. Propagate returns the ray
// state just after the element's plane, or the terminated sentinel if the
// incoming ray was already terminated or misses the aperture. wavelength
// is in meters and only consulted by wavelength-dependent kinds.
//
// Elements are immutable after construction and safe to share across rays;
// changing placement means building a new element.
type Element interface {
	Propagate(r Ray, wavelength float64) Ray

	Aperture() float64
	Position() (x, y float64)
	Orientation() float64
	Name() string

	// Endpoints returns the global coordinates of the two aperture ends,
	// for drawing the element.
	Endpoints() (x1, y1, x2, y2 float64)
}

// Compile time checks that every element kind implements Element.
var (
	_ Element = (*Mirror)(nil)
	_ Element = (*Lens)(nil)
	_ Element = (*Grating)(nil)
	_ Element = (*DMD)(nil)
)

// angleLaw is the kind-specific half of an element: the outgoing angle for
// a ray that arrived with the given global angle at local height yLocal.
// The law may return NaN to terminate the ray (evanescent grating orders).
type angleLaw interface {
	outgoingAngle(incoming, yLocal, wavelength float64) float64
}

// surface carries the placement state shared by every element kind and the
// intersection logic that goes with it.
type surface struct {
	aperture float64
	px, py   float64
	theta    float64
	name     string
	frame    *Frame
}

func newSurface(aperture, px, py, theta float64, name string) surface {
	return surface{
		aperture: aperture,
		px:       px,
		py:       py,
		theta:    theta,
		name:     name,
		frame:    NewFrame(theta, px, py),
	}
}

func (s *surface) Aperture() float64            { return s.aperture }
func (s *surface) Position() (float64, float64) { return s.px, s.py }
func (s *surface) Orientation() float64         { return s.theta }
func (s *surface) Name() string                 { return s.name }

// Endpoints maps the aperture ends, local (0, +/-aperture/2), back to the
// global plane.
func (s *surface) Endpoints() (x1, y1, x2, y2 float64) {
	x1, y1 = s.frame.ToGlobal(0, -s.aperture/2)
	x2, y2 = s.frame.ToGlobal(0, s.aperture/2)
	return x1, y1, x2, y2
}

// propagate intersects the ray with the element plane, applies the
// aperture test and delegates the outgoing angle to the kind's law.
//
// A ray must land strictly inside the aperture to survive; exactly on the
// rim counts as a miss. A missed ray still reports where it crossed the
// plane so the partial path stays visible, but its angle is NaN and every
// element after this one sees only the sentinel. An aperture <= 0 is not
// an error, it is an element no ray can hit.
func (s *surface) propagate(r Ray, wavelength float64, law angleLaw) Ray {
	if r.Terminated() {
		return TerminatedRay()
	}

	x0, y0 := s.frame.ToLocal(r.X, r.Y)

	// Intersection with the plane x=0, with the ray's angle expressed
	// against this element's own orientation.
	yLocal := y0 - x0*math.Tan(r.Theta+s.theta)
	x, y := s.frame.ToGlobal(0, yLocal)

	if !(math.Abs(yLocal) < s.aperture/2) {
		return Ray{X: x, Y: y, Theta: math.NaN()}
	}
	return Ray{X: x, Y: y, Theta: law.outgoingAngle(r.Theta, yLocal, wavelength)}
}
