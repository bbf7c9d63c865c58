package ecs

// Rect is an axis-aligned box in the simulation x/y plane.
type Rect struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Intersects reports a positive-area overlap. Shared edges do not count.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 < other.X2 &&
		r.X2 > other.X1 &&
		r.Y1 < other.Y2 &&
		r.Y2 > other.Y1
}

// Translate returns r shifted by dx, dy.
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X1: r.X1 + dx, Y1: r.Y1 + dy, X2: r.X2 + dx, Y2: r.Y2 + dy}
}

// GetBounds returns the collision box of e. Z takes no part in collisions.
func GetBounds(e *Entity) Rect {
	return Rect{
		X1: e.Position.X,
		Y1: e.Position.Y,
		X2: e.Position.X + e.Width,
		Y2: e.Position.Y + e.Height,
	}
}

// CollidesWith reports whether the bounds of a and b overlap.
func CollidesWith(a, b *Entity) bool {
	return GetBounds(a).Intersects(GetBounds(b))
}
