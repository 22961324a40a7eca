package bezier

import "math"

// Ring returns n points spread evenly on the circle around origin that passes
// through first. The first returned point is first itself; the others follow
// in the direction of positive rotation (see [Rotate]).
//
// Ring panics if n < 1.
func Ring(origin, first Point, n int) []Point {
	if n < 1 {
		panic("bezier: Ring needs at least one point")
	}
	step := 2 * math.Pi / float64(n)
	out := make([]Point, n)
	for i := range out {
		out[i] = first.Transform(RotateAbout(step*float64(i), origin))
	}
	return out
}
