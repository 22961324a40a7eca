package bezier

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(1, -2).Scale(3), Pt(3, -6))
	diff(t, Pt(0, 0).Lerp(Pt(10, 20), 0.25), Pt(2.5, 5))
	diff(t, Pt(0, 0).Lerp(Pt(10, 20), 1.5), Pt(15, 30))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointIsNaN(t *testing.T) {
	if Pt(1, 2).IsNaN() {
		t.Error("point is NaN but shouldn't be")
	}
	if !Pt(math.NaN(), 2).IsNaN() {
		t.Error("point isn't NaN but should be")
	}
	if !Pt(1, math.Inf(-1)).IsInf() {
		t.Error("point is finite but shouldn't be")
	}
}
