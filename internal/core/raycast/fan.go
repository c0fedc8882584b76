// Package raycast resolves what a viewer sees across a fan of rays: it builds
// the direction fan, finds the nearest wall hit for each ray, and provides the
// range helpers the renderers use to turn distances into pixels.
package raycast

import (
	"math"

	"chosenoffset.com/raycaster/internal/core/geom"
)

// DegToRad converts degrees to radians.
const DegToRad = math.Pi / 180

// Directions returns fov unit vectors, one per integer degree starting at
// theta: ray i points at (i+theta) degrees.
func Directions(theta float64, fov int) []geom.Vec2 {
	if fov <= 0 {
		return nil
	}
	dirs := make([]geom.Vec2, fov)
	fill(dirs, theta)
	return dirs
}

func fill(dirs []geom.Vec2, theta float64) {
	for i := range dirs {
		rad := (float64(i) + theta) * DegToRad
		dirs[i] = geom.Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
	}
}

// Fan caches a direction fan until its start angle changes.
type Fan struct {
	size  int
	theta float64
	dirs  []geom.Vec2
	valid bool
}

// NewFan creates an empty fan of the given ray count.
func NewFan(size int) *Fan {
	return &Fan{size: size}
}

// Size returns the number of rays in the fan.
func (f *Fan) Size() int {
	return f.size
}

// Theta returns the start angle (degrees) of the cached fan.
func (f *Fan) Theta() float64 {
	return f.theta
}

// Directions returns the fan for start angle theta, regenerating every entry
// when theta differs from the cached angle. The returned slice is owned by
// the fan and is overwritten by the next regeneration.
func (f *Fan) Directions(theta float64) []geom.Vec2 {
	if f.valid && theta == f.theta {
		return f.dirs
	}
	if len(f.dirs) != f.size {
		f.dirs = make([]geom.Vec2, f.size)
	}
	fill(f.dirs, theta)
	f.theta = theta
	f.valid = true
	return f.dirs
}

// StartAngle returns the fan start angle that centres ray fov/2 on facing.
func StartAngle(facing float64, fov int) float64 {
	return facing - float64(fov/2)
}
