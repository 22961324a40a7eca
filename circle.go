package bezier

// Circle is used for hit testing: a control point drawn with a radius, or an
// evaluated point drawn as a projectile.
type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether pt lies inside or on the circle.
func (c Circle) Contains(pt Point) bool {
	return c.Center.DistanceSquared(pt) <= c.Radius*c.Radius
}

// Overlaps reports whether the circle and the rectangle share at least one
// point.
func (c Circle) Overlaps(r Rect) bool {
	return c.Contains(r.Clamp(c.Center))
}

func (c Circle) BoundingBox() Rect {
	return Rect{
		X0: c.Center.X - c.Radius,
		Y0: c.Center.Y - c.Radius,
		X1: c.Center.X + c.Radius,
		Y1: c.Center.Y + c.Radius,
	}
}
