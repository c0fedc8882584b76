package geom

import "math"

// Vec2 represents a 2D point or direction in screen space (y grows downward).
type Vec2 struct {
	X, Y float64
}

// Wall is an immutable line segment obstacle.
type Wall struct {
	P1, P2 Vec2
}

// NewWall creates a wall from raw endpoint coordinates.
func NewWall(x1, y1, x2, y2 float64) Wall {
	return Wall{P1: Vec2{X: x1, Y: y1}, P2: Vec2{X: x2, Y: y2}}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Equal reports exact component equality.
func (v Vec2) Equal(o Vec2) bool {
	return v.X == o.X && v.Y == o.Y
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// DistanceTo returns the Euclidean distance between v and o.
func (v Vec2) DistanceTo(o Vec2) float64 {
	return Distance(v, o)
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// cross returns the z component of the 3D cross product of a and b.
func cross(a, b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}
