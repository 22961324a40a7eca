package bezier

// Animation moves a point along a [Curve] over time. It combines the curve,
// a [Clock] driving the parameter, an [Easing] remapping it, and the most
// recently evaluated point.
//
// An Animation is owned by a single caller, typically a game or UI loop,
// which calls [Animation.Tick] once per frame. It holds no references to
// anything outside itself, so it can be dropped between any two ticks.
type Animation struct {
	curve   *Curve
	clock   Clock
	easing  Easing
	param   float64
	current Point
}

// NewAnimation returns an animation that moves from start to end in duration
// seconds. Until the first tick, the current point is the zero point.
func NewAnimation(duration float64, start, end Point, loop bool, easing Easing) *Animation {
	return &Animation{
		curve:  NewCurve(start, end),
		clock:  NewClock(duration, loop),
		easing: easing,
	}
}

// Tick advances the animation by dt seconds and returns the new position.
func (a *Animation) Tick(dt float64) Point {
	a.param = a.clock.Advance(dt)
	a.current = a.curve.Eval(a.easing.Apply(a.param))
	return a.current
}

// Chase moves the end anchor to target and then advances the animation by
// dt seconds. Calling Chase every frame makes the animation home in on a
// moving target.
func (a *Animation) Chase(target Point, dt float64) Point {
	a.curve.SetEnd(target)
	return a.Tick(dt)
}

// Current returns the position computed by the last tick.
func (a *Animation) Current() Point { return a.current }

// Param returns the parameter produced by the last tick, before easing.
func (a *Animation) Param() float64 { return a.param }

// ControlPoints returns a copy of the curve's control points.
func (a *Animation) ControlPoints() []Point { return a.curve.Points() }

// Complete reports whether the animation has run for at least its duration.
// Non-looping animations keep moving past this point.
func (a *Animation) Complete() bool { return a.clock.Complete() }

// Reset restarts the animation from the start of the curve. The current
// point is updated on the next tick.
func (a *Animation) Reset() { a.clock.Reset() }

// Curve returns the animation's curve. Mutating it changes the path of the
// animation from the next tick onwards.
func (a *Animation) Curve() *Curve { return a.curve }

// Clock returns the animation's clock.
func (a *Animation) Clock() *Clock { return &a.clock }

func (a *Animation) Easing() Easing { return a.easing }

func (a *Animation) SetEasing(e Easing) { a.easing = e }

func (a *Animation) Append(pt Point)              { a.curve.Append(pt) }
func (a *Animation) Insert(pt Point, i int) error { return a.curve.Insert(pt, i) }
func (a *Animation) Remove(i int) error           { return a.curve.Remove(i) }
func (a *Animation) Move(i int, pt Point) error   { return a.curve.Move(i, pt) }
func (a *Animation) SetEnd(pt Point)              { a.curve.SetEnd(pt) }
func (a *Animation) InsertLerp(f float64) int     { return a.curve.InsertLerp(f) }
