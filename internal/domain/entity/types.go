package entity

// EntityID is a unique identifier for an entity
type EntityID uint32

// Gravity directions. The player falls toward the floor or toward the ceiling.
const (
	GravityDown = 1.0
	GravityUp   = -1.0
)

// Rect is an axis-aligned box in pixel coordinates
type Rect struct {
	X, Y float64
	W, H float64
}

// Center returns the center point of the rect
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports whether two rects intersect
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// DistanceTo returns the squared distance from (px, py) to the closest point of the rect
func (r Rect) DistanceTo(px, py float64) float64 {
	cx := clamp(px, r.X, r.X+r.W)
	cy := clamp(py, r.Y, r.Y+r.H)
	dx, dy := px-cx, py-cy
	return dx*dx + dy*dy
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
