// Package bezier animates points along Bézier curves of arbitrary degree.
//
// It was written for games and interactive toys that move things (bullets,
// enemies, cursors) along curved paths, but it has no dependencies on any
// particular graphics or windowing library. Callers supply the time that
// passed since the last frame and read back positions to draw.
//
// # Curves
//
// A [Curve] is an ordered list of control points. The first and last points
// are anchors: the curve starts at the first and ends at the last. Interior
// points pull the curve towards them. A curve with n+1 control points is a
// Bézier curve of degree n, evaluated in Bernstein form:
//
//	B(t) = Σ C(n, k) · t^k · (1-t)^(n-k) · P_k
//
// See [Curve.Eval], [Binomial] and [Bernstein].
//
// Curves can be edited while they're being animated. [Curve.Append] adds a
// new end anchor, [Curve.Insert] and [Curve.Remove] add and remove interior
// points, [Curve.InsertLerp] adds interior points on the line between the
// anchors, and [Curve.SetEnd] moves the end anchor, which is how a homing
// projectile chases its target. The anchors are protected from removal, so a
// curve always has at least two points.
//
// # Clocks and easing
//
// A [Clock] turns elapsed time into the curve parameter t. Clocks run once
// or loop back and forth between the anchors. A clock that doesn't loop
// never stops on its own: t grows past 1 and the curve is extrapolated past
// its end anchor, so a projectile keeps flying in the direction it was
// going. Callers decide when an animation is done, usually by checking
// [Animation.Complete] or testing its position against the screen bounds.
//
// An [Easing] remaps t before evaluation, changing the pacing of the motion.
// [Parabola] in particular sends the point out to the end of the curve and
// back within one clock cycle.
//
// # Animations and arenas
//
// An [Animation] combines a curve, a clock and an easing, and is advanced
// with [Animation.Tick]. An [Arena] owns many animations, addresses them by
// [Handle], and lets the caller prune finished ones between ticks.
//
// Nothing in this package is safe for concurrent use. Animations are meant to
// be owned and ticked by a single game loop.
//
// # Geometry
//
// The package includes the small amount of 2D geometry needed to work with
// curves interactively: [Point], [Vec2], [Line], [Rect], [Circle] and
// [Affine]. These follow the conventions of honnef.co/go/curve, and the
// coordinate system is y-down, as is common for screens.
package bezier
