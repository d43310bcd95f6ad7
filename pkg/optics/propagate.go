package optics

// PropagateRays traces each ray through the elements in order and returns
// one history per input ray. history[0] is the input state unchanged and
// history[i] is the state just after element i-1, so every history has
// len(elements)+1 entries. With no elements the history degenerates to the
// input state alone; with no rays the result is empty.
//
// Once a ray terminates at some element the sentinel is carried through
// every remaining one, so downstream indices stay addressable. Neither the
// elements nor the input rays are mutated; histories are independent and
// owned by the caller.
func PropagateRays(elements []Element, rays []Ray, wavelength float64) [][]Ray {
	bundles := make([][]Ray, len(rays))
	for i, r := range rays {
		history := make([]Ray, len(elements)+1)
		history[0] = r
		for j, e := range elements {
			history[j+1] = e.Propagate(history[j], wavelength)
		}
		bundles[i] = history
	}
	return bundles
}
