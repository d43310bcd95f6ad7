package optics

import (
	"math"
	"testing"
)

func TestMirrorReflectsCenteredRay(t *testing.T) {
	// One quarter-turn mirror behind the ray, hit well inside the aperture.
	m := NewMirror(300, 100, -100, math.Pi/2, "fold")
	in := Ray{X: 125, Y: 100, Theta: -math.Pi / 3}

	out := m.Propagate(in, DefaultWavelength)
	if out.Terminated() {
		t.Fatalf("expected a hit, got terminated state %+v", out)
	}

	// Local crossing height is y0 - x0*tan(theta+thetaE) = 25 + 200*tan(pi/6).
	wantX := 25 + 200*math.Tan(math.Pi/6) + 100
	if !approx(out.X, wantX) || !approx(out.Y, -100) {
		t.Errorf("crossing at (%g,%g), want (%g,-100)", out.X, out.Y, wantX)
	}

	// Reflection law uses the raw incoming angle: pi - (-pi/3) - 2*(pi/2).
	if want := math.Pi / 3; !approx(out.Theta, want) {
		t.Errorf("reflected angle %g, want %g", out.Theta, want)
	}
}

func TestMirrorOffsetRayStaysInsideAperture(t *testing.T) {
	// Same geometry as the narrow-mirror scene from the reference bench:
	// the crossing height lands at about -4.53, inside +/-100.
	m := NewMirror(200, 100, -100, math.Pi/2, "")
	out := m.Propagate(Ray{X: -20, Y: 100, Theta: -math.Pi / 3}, DefaultWavelength)

	if out.Terminated() {
		t.Fatalf("ray inside aperture was terminated: %+v", out)
	}
	wantX := -120 + 200*math.Tan(math.Pi/6) + 100
	if !approx(out.X, wantX) || !approx(out.Y, -100) {
		t.Errorf("crossing at (%g,%g), want (%g,-100)", out.X, out.Y, wantX)
	}
}

func TestMirrorMissKeepsCrossingPoint(t *testing.T) {
	// Crossing height 140.47 against a half-aperture of 100: a miss, but
	// the crossing point is still reported for drawing the partial path.
	m := NewMirror(200, 100, -100, math.Pi/2, "")
	out := m.Propagate(Ray{X: 125, Y: 100, Theta: -math.Pi / 3}, DefaultWavelength)

	if !out.Terminated() {
		t.Fatalf("expected a miss, got %+v", out)
	}
	wantX := 25 + 200*math.Tan(math.Pi/6) + 100
	if !approx(out.X, wantX) || !approx(out.Y, -100) {
		t.Errorf("miss bookkeeping point (%g,%g), want (%g,-100)", out.X, out.Y, wantX)
	}
}

func TestMirrorApertureRimIsAMiss(t *testing.T) {
	// Head-on ray crossing exactly at half the aperture width.
	m := NewMirror(2, 0, 0, 0, "")
	out := m.Propagate(Ray{X: -1, Y: 1, Theta: 0}, DefaultWavelength)
	if !out.Terminated() {
		t.Errorf("crossing exactly on the rim should miss, got %+v", out)
	}

	// Just inside the rim is a hit.
	out = m.Propagate(Ray{X: -1, Y: 1 - 1e-12, Theta: 0}, DefaultWavelength)
	if out.Terminated() {
		t.Error("crossing just inside the rim should hit")
	}
}

func TestDegenerateApertureRejectsEverything(t *testing.T) {
	for _, aperture := range []float64{0, -5} {
		m := NewMirror(aperture, 0, 0, 0, "")
		out := m.Propagate(Ray{X: -10, Y: 0, Theta: 0}, DefaultWavelength)
		if !out.Terminated() {
			t.Errorf("aperture %g should reject every ray, got %+v", aperture, out)
		}
	}
}

func TestTerminatedRayShortCircuits(t *testing.T) {
	m := NewMirror(300, 100, -100, math.Pi/2, "")
	out := m.Propagate(TerminatedRay(), DefaultWavelength)
	if !math.IsNaN(out.X) || !math.IsNaN(out.Y) || !math.IsNaN(out.Theta) {
		t.Errorf("terminated input must yield the full sentinel, got %+v", out)
	}
}

func TestDMDMatchesTiltedMirror(t *testing.T) {
	// With zero facet deflection a DMD is just a mirror; with deflection
	// delta it reflects like a mirror tilted by theta+delta.
	const theta, delta = 0.3, -12 * math.Pi / 180
	in := Ray{X: -50, Y: 3, Theta: 0.1}

	d0 := NewDMD(0, 100, 0, 0, theta, "")
	m := NewMirror(100, 0, 0, theta, "")
	if got, want := d0.Propagate(in, DefaultWavelength), m.Propagate(in, DefaultWavelength); !approx(got.Theta, want.Theta) {
		t.Errorf("zero-deflection DMD angle %g, mirror %g", got.Theta, want.Theta)
	}

	d := NewDMD(delta, 100, 0, 0, theta, "")
	out := d.Propagate(in, DefaultWavelength)
	if want := WrapAngle(math.Pi - in.Theta - 2*(theta+delta)); !approx(out.Theta, want) {
		t.Errorf("deflected angle %g, want %g", out.Theta, want)
	}
}
