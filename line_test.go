package bezier

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLineLength(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}
	want := math.Sqrt(2.0)
	epsilon := 1e-9
	if d := math.Abs(l.Length() - want); d > epsilon {
		t.Errorf("%g > %g", d, epsilon)
	}
	assertNear(t, l.Eval(0.5), Pt(0.5, 0.5), epsilon)
}

func TestLineNearest(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(10.0, 0.0)}

	type result struct{ DistSq, T float64 }
	nearest := func(pt Point) result {
		d, t := l.Nearest(pt)
		return result{d, t}
	}

	opt := cmpopts.EquateApprox(0, 1e-12)
	diff(t, result{9, 0.4}, nearest(Pt(4, 3)), opt)
	diff(t, result{4, 0}, nearest(Pt(-2, 0)), opt)
	diff(t, result{25, 1}, nearest(Pt(13, 4)), opt)
}
