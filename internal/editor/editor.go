// Package editor implements the interactive curve editor behind cmd/bezedit,
// independent of any windowing library.
package editor

import (
	"github.com/sgostarter/i/l"

	"honnef.co/go/bezier"
	"honnef.co/go/bezier/internal/config"
)

// Editor holds an animation whose control points are edited with a pointer.
// Coordinates are in screen space.
type Editor struct {
	logger    l.Wrapper
	anim      *bezier.Animation
	radius    float64
	tolerance float64

	// index of the point being dragged, or -1
	drag int
}

// New returns an editor for a window of the given size. The curve runs from
// the lower left to the upper right and gets cfg.Interior evenly spaced
// interior points.
func New(width, height float64, anim config.AnimationConfig, ed config.EditorConfig, logger l.Wrapper) *Editor {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	start := bezier.Pt(width*0.1, height*0.8)
	end := bezier.Pt(width*0.9, height*0.2)
	a := bezier.NewAnimation(anim.Duration, start, end, anim.Loop, anim.Easing)
	a.Curve().InsertEven(anim.Interior)

	return &Editor{
		logger:    logger.WithFields(l.StringField(l.ClsKey, "Editor")),
		anim:      a,
		radius:    ed.PointRadius,
		tolerance: ed.SegmentTolerance,
		drag:      -1,
	}
}

func (e *Editor) Animation() *bezier.Animation { return e.anim }

// Radius returns the radius within which the pointer grabs a control point.
func (e *Editor) Radius() float64 { return e.radius }

// Dragging returns the index of the control point being dragged.
func (e *Editor) Dragging() (int, bool) { return e.drag, e.drag >= 0 }

// Hovered returns the index of the control point under pt.
func (e *Editor) Hovered(pt bezier.Point) (int, bool) {
	return e.anim.Curve().HitPoint(pt, e.radius)
}

// Press starts dragging the control point under pt and reports whether
// there was one.
func (e *Editor) Press(pt bezier.Point) bool {
	i, ok := e.Hovered(pt)
	if !ok {
		return false
	}
	e.drag = i
	return true
}

// Drag moves the dragged control point, if any, to pt.
func (e *Editor) Drag(pt bezier.Point) {
	if e.drag < 0 {
		return
	}
	if err := e.anim.Move(e.drag, pt); err != nil {
		e.logger.WithFields(l.ErrorField(err)).Error("drag failed")
		e.drag = -1
	}
}

func (e *Editor) Release() { e.drag = -1 }

// RemoveAt removes the interior control point under pt. Anchors stay.
func (e *Editor) RemoveAt(pt bezier.Point) {
	i, ok := e.Hovered(pt)
	if !ok || i == 0 || i == e.anim.Curve().Len()-1 {
		return
	}
	if err := e.anim.Remove(i); err != nil {
		e.logger.WithFields(l.ErrorField(err)).Error("remove failed")
		return
	}
	// Indices behind i shifted.
	e.drag = -1
	e.logger.WithFields(l.IntField("index", i), l.IntField("points", e.anim.Curve().Len())).Debug("removed point")
}

// InsertAt inserts pt into the control polygon segment it lies on and
// reports whether it was close enough to one.
func (e *Editor) InsertAt(pt bezier.Point) bool {
	i, ok := e.anim.Curve().HitSegment(pt, e.tolerance)
	if !ok {
		return false
	}
	if err := e.anim.Insert(pt, i); err != nil {
		e.logger.WithFields(l.ErrorField(err)).Error("insert failed")
		return false
	}
	e.drag = -1
	e.logger.WithFields(l.IntField("index", i+1), l.IntField("points", e.anim.Curve().Len())).Debug("inserted point")
	return true
}

// Append makes pt the new end anchor.
func (e *Editor) Append(pt bezier.Point) {
	e.anim.Append(pt)
	e.logger.WithFields(l.IntField("points", e.anim.Curve().Len())).Debug("appended point")
}

// Split inserts a point halfway between the anchors.
func (e *Editor) Split() int {
	return e.anim.InsertLerp(0.5)
}

func (e *Editor) Reset() { e.anim.Reset() }

// Tick advances the animation by dt seconds.
func (e *Editor) Tick(dt float64) bezier.Point { return e.anim.Tick(dt) }
