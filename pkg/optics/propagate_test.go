package optics

import (
	"math"
	"testing"
)

func foldScene() []Element {
	return []Element{
		NewMirror(300, 100, -100, math.Pi/2, "fold"),
		NewMirror(300, 300, 0, 0, "exit"),
	}
}

func TestPropagateRaysHistoryShape(t *testing.T) {
	rays := []Ray{
		{X: 125, Y: 100, Theta: -math.Pi / 3},
		{X: 75, Y: 100, Theta: -2 * math.Pi / 3},
	}
	bundles := PropagateRays(foldScene(), rays, DefaultWavelength)

	if len(bundles) != 2 {
		t.Fatalf("got %d bundles, want 2", len(bundles))
	}
	for i, b := range bundles {
		if len(b) != 3 {
			t.Fatalf("bundle %d has %d states, want 3 (input + 2 crossings)", i, len(b))
		}
		if b[0] != rays[i] {
			t.Errorf("bundle %d state 0 = %+v, want the input %+v", i, b[0], rays[i])
		}
	}

	// First ray reflects off both mirrors.
	if b := bundles[0]; b[2].Terminated() {
		t.Errorf("first ray should survive both mirrors, got %+v", b[2])
	} else if want := WrapAngle(math.Pi - math.Pi/3); !approx(b[2].Theta, want) {
		t.Errorf("first ray exit angle %g, want %g", b[2].Theta, want)
	}
}

func TestPropagateRaysAreIndependent(t *testing.T) {
	rays := []Ray{
		{X: 125, Y: 100, Theta: -math.Pi / 3},
		{X: 75, Y: 100, Theta: -2 * math.Pi / 3},
	}
	elements := foldScene()

	forward := PropagateRays(elements, rays, DefaultWavelength)
	reversed := PropagateRays(elements, []Ray{rays[1], rays[0]}, DefaultWavelength)

	for i := range forward {
		a, b := forward[i], reversed[len(reversed)-1-i]
		for j := range a {
			if !sameState(a[j], b[j]) {
				t.Errorf("ray %d state %d differs across input orderings: %+v vs %+v", i, j, a[j], b[j])
			}
		}
	}
}

func TestPropagateRaysTerminationIsAbsorbing(t *testing.T) {
	elements := []Element{
		NewMirror(300, 100, -100, math.Pi/2, ""),
		NewMirror(300, 300, 0, 0, ""),
		NewMirror(300, 300, 200, 0, ""),
	}
	bundles := PropagateRays(elements, []Ray{TerminatedRay()}, DefaultWavelength)

	for j, s := range bundles[0] {
		if !math.IsNaN(s.X) || !math.IsNaN(s.Y) || !math.IsNaN(s.Theta) {
			t.Errorf("state %d should be the full sentinel, got %+v", j, s)
		}
	}
}

func TestPropagateRaysMissThenSentinel(t *testing.T) {
	// The second input ray folds onto a path that misses the exit mirror:
	// the crossing with the first mirror is recorded, the last state is
	// the sentinel.
	rays := []Ray{{X: 75, Y: 100, Theta: -2 * math.Pi / 3}}
	b := PropagateRays(foldScene(), rays, DefaultWavelength)[0]

	if b[1].Terminated() {
		t.Fatalf("first crossing should hit, got %+v", b[1])
	}
	if !b[2].Terminated() {
		t.Fatalf("second crossing should miss, got %+v", b[2])
	}
}

func TestPropagateRaysDegenerateInputs(t *testing.T) {
	ray := Ray{X: 1, Y: 2, Theta: 0.5}

	bundles := PropagateRays(nil, []Ray{ray}, DefaultWavelength)
	if len(bundles) != 1 || len(bundles[0]) != 1 || bundles[0][0] != ray {
		t.Errorf("no elements: want a single-state history echoing the input, got %+v", bundles)
	}

	if bundles = PropagateRays(foldScene(), nil, DefaultWavelength); len(bundles) != 0 {
		t.Errorf("no rays: want empty result, got %+v", bundles)
	}
}

// sameState compares ray states treating the NaN sentinel as equal to itself.
func sameState(a, b Ray) bool {
	eq := func(x, y float64) bool {
		return x == y || (math.IsNaN(x) && math.IsNaN(y))
	}
	return eq(a.X, b.X) && eq(a.Y, b.Y) && eq(a.Theta, b.Theta)
}
