package bezier

import (
	"math"
	"testing"
)

func TestAnimationOnceCoasts(t *testing.T) {
	const epsilon = 1e-9
	a := NewAnimation(2.0, Pt(0, 0), Pt(10, 0), false, Normal)

	assertNear(t, a.Tick(1.0), Pt(5, 0), epsilon)
	if a.Complete() {
		t.Error("animation complete after half its duration")
	}
	assertNear(t, a.Tick(1.0), Pt(10, 0), epsilon)
	if !a.Complete() {
		t.Error("animation not complete after its duration")
	}
	// Keeps going past the end anchor.
	assertNear(t, a.Tick(1.0), Pt(15, 0), epsilon)
	if p := a.Param(); math.Abs(p-1.5) > epsilon {
		t.Errorf("got t=%g, want 1.5", p)
	}
	assertNear(t, a.Current(), Pt(15, 0), epsilon)
}

func TestAnimationLoopOscillates(t *testing.T) {
	const epsilon = 1e-9
	start, end := Pt(50, 50), Pt(1030, 670)
	a := NewAnimation(2.0, start, end, true, Normal)
	a.InsertLerp(0.3)
	a.Curve().Move(1, Pt(400, 600))

	// With dt = 0.5, every half cycle takes four ticks to reach the far
	// anchor plus one tick that overshoots and flips the clock.
	var atStart, atEnd []int
	for i := 1; i <= 20; i++ {
		p := a.Tick(0.5)
		if p.Distance(start) < epsilon {
			atStart = append(atStart, i)
		}
		if p.Distance(end) < epsilon {
			atEnd = append(atEnd, i)
		}
	}
	diff(t, []int{4, 14}, atEnd)
	diff(t, []int{9, 19}, atStart)
}

func TestAnimationEasing(t *testing.T) {
	const epsilon = 1e-9
	a := NewAnimation(1.0, Pt(0, 0), Pt(100, 0), true, Parabola)

	// Parabola goes out and back within one clock cycle.
	assertNear(t, a.Tick(0.25), Pt(56.25, 0), epsilon)
	assertNear(t, a.Tick(0.25), Pt(100, 0), epsilon)
	assertNear(t, a.Tick(0.5), Pt(0, 0), epsilon)
	if p := a.Param(); p != 1 {
		t.Errorf("got t=%g, want 1", p)
	}

	a.SetEasing(Quadratic)
	if a.Easing() != Quadratic {
		t.Fatalf("got easing %s", a.Easing())
	}
	a.Reset()
	assertNear(t, a.Tick(0.5), Pt(25, 0), epsilon)
}

func TestAnimationSquareRootNaN(t *testing.T) {
	a := NewAnimation(1.0, Pt(0, 0), Pt(100, 0), false, SquareRoot)
	a.Clock().Reverse = true
	if p := a.Tick(1.5); !p.IsNaN() {
		t.Errorf("got %v, want NaN point", p)
	}
}

func TestAnimationChase(t *testing.T) {
	const epsilon = 1e-9
	a := NewAnimation(4.0, Pt(0, 0), Pt(100, 0), false, Normal)
	a.Append(Pt(0, 0))

	target := Pt(40, 40)
	for range 4 {
		a.Chase(target, 1.0)
		target = target.Translate(Vec(10, 0))
	}
	// After the last chase the curve ends at the target of that tick, and
	// the animation reached it.
	assertNear(t, a.Current(), Pt(70, 40), epsilon)
	diff(t, []Point{Pt(0, 0), Pt(100, 0), Pt(70, 40)}, a.ControlPoints())
}

func TestAnimationReset(t *testing.T) {
	a := NewAnimation(1.0, Pt(0, 0), Pt(10, 0), true, Normal)
	for range 7 {
		a.Tick(0.4)
	}
	a.Reset()
	c := a.Clock()
	if c.Elapsed != 0 || c.Reverse {
		t.Errorf("clock after reset: %+v", *c)
	}
	assertNear(t, a.Tick(0.1), Pt(1, 0), 1e-9)
}

func TestAnimationMutations(t *testing.T) {
	a := NewAnimation(1.0, Pt(0, 0), Pt(10, 0), false, Normal)
	a.InsertLerp(0.5)
	if err := a.Insert(Pt(7, 7), 1); err != nil {
		t.Fatal(err)
	}
	if err := a.Move(2, Pt(8, 8)); err != nil {
		t.Fatal(err)
	}
	if err := a.Remove(1); err != nil {
		t.Fatal(err)
	}
	a.SetEnd(Pt(20, 0))
	diff(t, []Point{Pt(0, 0), Pt(8, 8), Pt(20, 0)}, a.ControlPoints())

	// Control points returned earlier aren't affected by later edits.
	pts := a.ControlPoints()
	a.Append(Pt(30, 0))
	diff(t, 3, len(pts))
}
