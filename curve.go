package bezier

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrIndexOutOfRange is returned by operations that address a control point
// that doesn't exist.
var ErrIndexOutOfRange = errors.New("bezier: control point index out of range")

// ParametricCurve describes a curve parametrized by a scalar.
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t. Generally, t is in the range
	// [0, 1], but implementations in this package extrapolate outside of it.
	Eval(t float64) Point
	Start() Point
	End() Point
}

var _ ParametricCurve = (*Curve)(nil)

// Curve is a Bézier curve of arbitrary degree, defined by an ordered list of
// control points. The first and last control points are the curve's anchors:
// the curve starts at the first and ends at the last. The points in between
// shape the curve without (generally) lying on it.
//
// A Curve always has at least two control points. The zero value is not a
// valid curve; use [NewCurve].
type Curve struct {
	points []Point
}

// NewCurve returns a straight curve from start to end.
func NewCurve(start, end Point) *Curve {
	return &Curve{points: []Point{start, end}}
}

// Len returns the number of control points. It is at least 2.
func (c *Curve) Len() int { return len(c.points) }

// Degree returns the degree of the curve, which is Len() - 1.
func (c *Curve) Degree() int { return len(c.points) - 1 }

func (c *Curve) Start() Point { return c.points[0] }
func (c *Curve) End() Point   { return c.points[len(c.points)-1] }

// Point returns the i-th control point.
func (c *Curve) Point(i int) (Point, error) {
	if err := c.checkIndex(i); err != nil {
		return Point{}, err
	}
	return c.points[i], nil
}

// Points returns a copy of the control points, in order.
func (c *Curve) Points() []Point {
	return slices.Clone(c.points)
}

// All returns an iterator over the control points and their indices.
func (c *Curve) All() iter.Seq2[int, Point] {
	return slices.All(c.points)
}

func (c *Curve) checkIndex(i int) error {
	if i < 0 || i >= len(c.points) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(c.points))
	}
	return nil
}

// Append adds pt as the new end anchor. The previous end anchor becomes an
// interior control point.
func (c *Curve) Append(pt Point) {
	c.points = append(c.points, pt)
}

// Insert inserts pt directly after the control point at index i.
//
// Inserting after the end anchor is the same as [Curve.Append].
func (c *Curve) Insert(pt Point, i int) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	c.points = slices.Insert(c.points, i+1, pt)
	return nil
}

// Remove removes the control point at index i.
//
// The anchors can't be removed: for i == 0 and i == Len()-1, Remove does
// nothing and returns nil. A curve thus never has fewer than two points.
func (c *Curve) Remove(i int) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	if i == 0 || i == len(c.points)-1 {
		return nil
	}
	c.points = slices.Delete(c.points, i, i+1)
	return nil
}

// Move replaces the control point at index i with pt. Unlike Remove, Move
// accepts the anchors.
func (c *Curve) Move(i int, pt Point) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	c.points[i] = pt
	return nil
}

// SetEnd replaces the end anchor. Calling it before every evaluation makes the
// curve chase a moving target.
func (c *Curve) SetEnd(pt Point) {
	c.points[len(c.points)-1] = pt
}

// InsertLerp inserts the point at fraction f of the straight line from the
// start anchor to the end anchor, and returns its index.
//
// The point is placed among the interior control points ordered by distance
// from the start anchor: before the first interior point that is strictly
// farther away, or right before the end anchor if there is none. Inserting
// several fractions thus yields the same order regardless of the order of
// insertion.
func (c *Curve) InsertLerp(f float64) int {
	first := c.points[0]
	pt := first.Lerp(c.End(), f)
	d := first.DistanceSquared(pt)
	last := len(c.points) - 1
	i := 1
	for ; i < last; i++ {
		if first.DistanceSquared(c.points[i]) > d {
			break
		}
	}
	c.points = slices.Insert(c.points, i, pt)
	return i
}

// InsertEven inserts n interior control points, evenly spaced along the
// straight line from the start anchor to the end anchor.
func (c *Curve) InsertEven(n int) {
	step := 1.0 / float64(n+1)
	for i := 1; i <= n; i++ {
		c.InsertLerp(step * float64(i))
	}
}

// Eval evaluates the curve at parameter t, using the Bernstein form
//
//	B(t) = Σ C(n, k) · t^k · (1-t)^(n-k) · P_k, k = 0..n
//
// where n is the curve's degree. t may lie outside [0, 1], in which case the
// polynomial extrapolates the curve beyond its anchors. A NaN t results in a
// NaN point.
func (c *Curve) Eval(t float64) Point {
	n := c.Degree()
	var out Vec2
	for k, p := range c.points {
		out = out.Add(Vec2(p.Scale(Bernstein(n, k, t))))
	}
	return Point(out)
}

// Segments returns an iterator over the edges of the control polygon.
func (c *Curve) Segments() iter.Seq2[int, Line] {
	return func(yield func(int, Line) bool) {
		for i := range len(c.points) - 1 {
			if !yield(i, Line{c.points[i], c.points[i+1]}) {
				return
			}
		}
	}
}

// HitPoint returns the index of the first control point whose circle of the
// given radius contains pt.
func (c *Curve) HitPoint(pt Point, radius float64) (int, bool) {
	for i, p := range c.points {
		if (Circle{Center: p, Radius: radius}).Contains(pt) {
			return i, true
		}
	}
	return 0, false
}

// HitSegment returns the index of the first control polygon edge within
// tolerance of pt. Edge i runs from control point i to control point i+1, so
// the result can be passed to [Curve.Insert] directly.
func (c *Curve) HitSegment(pt Point, tolerance float64) (int, bool) {
	for i, l := range c.Segments() {
		if d, _ := l.Nearest(pt); d <= tolerance*tolerance {
			return i, true
		}
	}
	return 0, false
}

// ControlBox returns the smallest rectangle enclosing all control points.
// The curve lies within it for t in [0, 1].
func (c *Curve) ControlBox() Rect {
	r := NewRectFromPoints(c.points[0], c.points[0])
	for _, p := range c.points[1:] {
		r = r.UnionPoint(p)
	}
	return r
}
