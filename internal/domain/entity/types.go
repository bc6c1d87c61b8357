package entity

import "math"

// EntityID is a unique identifier for an entity
type EntityID uint32

// Vec2 is a point or displacement in world pixels
type Vec2 struct {
	X, Y float64
}

// DistanceTo returns the Euclidean distance between two points
func (v Vec2) DistanceTo(o Vec2) float64 {
	return math.Hypot(o.X-v.X, o.Y-v.Y)
}

// Rect is an axis-aligned rectangle. X, Y is the top-left corner and
// Y grows downward (toward the ground).
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// IsDegenerate reports a rectangle with non-positive width or height
func (r Rect) IsDegenerate() bool {
	return !(r.W > 0) || !(r.H > 0)
}

// Intersects reports whether two rectangles overlap with positive area.
// Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	if r.IsDegenerate() || o.IsDegenerate() {
		return false
	}
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Contains reports whether the point lies inside the rectangle (edges inclusive)
func (r Rect) Contains(p Vec2) bool {
	if r.IsDegenerate() {
		return false
	}
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Overlap returns the intersection rectangle. The result is degenerate
// when the rectangles do not intersect.
func (r Rect) Overlap(o Rect) Rect {
	x1 := math.Max(r.X, o.X)
	y1 := math.Max(r.Y, o.Y)
	x2 := math.Min(r.Right(), o.Right())
	y2 := math.Min(r.Bottom(), o.Bottom())
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Facing is the horizontal direction a body looks at
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Sign returns +1 for right and -1 for left
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

// String returns the string representation of the facing
func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// FacingToward returns the facing that looks from x toward targetX.
// When both are equal the current facing is kept.
func FacingToward(current Facing, x, targetX float64) Facing {
	switch {
	case targetX > x:
		return FacingRight
	case targetX < x:
		return FacingLeft
	default:
		return current
	}
}
