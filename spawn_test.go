package bezier

import (
	"math"
	"testing"
)

func TestRing(t *testing.T) {
	const epsilon = 1e-9
	origin := Pt(540, 360)
	first := Pt(640, 360)

	pts := Ring(origin, first, 4)
	want := []Point{Pt(640, 360), Pt(540, 460), Pt(440, 360), Pt(540, 260)}
	if len(pts) != len(want) {
		t.Fatalf("got %d points, want %d", len(pts), len(want))
	}
	for i := range pts {
		assertNear(t, pts[i], want[i], epsilon)
	}

	for _, p := range Ring(origin, first, 10) {
		if d := math.Abs(p.Distance(origin) - 100); d > epsilon {
			t.Errorf("%v is %g away from the circle", p, d)
		}
	}
}

func TestRingPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	Ring(Pt(0, 0), Pt(1, 0), 0)
}
