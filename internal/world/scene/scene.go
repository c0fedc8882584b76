// Package scene builds the immutable wall set the rays are cast against.
package scene

import (
	"math/rand"

	"chosenoffset.com/raycaster/internal/core/geom"
)

// Bounds returns the four walls tracing the border of a width x height viewport.
func Bounds(width, height int) []geom.Wall {
	w, h := float64(width), float64(height)
	return []geom.Wall{
		geom.NewWall(0, 0, 0, h),
		geom.NewWall(w, 0, w, h),
		geom.NewWall(0, 0, w, 0),
		geom.NewWall(0, h, w, h),
	}
}

// RandomWalls samples count walls whose endpoint coordinates are uniform
// integers in [0, width] x [0, height].
func RandomWalls(rng *rand.Rand, count, width, height int) []geom.Wall {
	walls := make([]geom.Wall, 0, count)
	for i := 0; i < count; i++ {
		walls = append(walls, geom.NewWall(
			float64(rng.Intn(width+1)),
			float64(rng.Intn(height+1)),
			float64(rng.Intn(width+1)),
			float64(rng.Intn(height+1)),
		))
	}
	return walls
}

// Scene is the read-only set of walls shared by the visibility pass and the
// renderers.
type Scene struct {
	Width, Height int
	walls         []geom.Wall
	boundary      int
}

// New generates a scene: optional boundary walls first, then count random walls.
func New(rng *rand.Rand, width, height, count int, boundary bool) *Scene {
	s := &Scene{Width: width, Height: height}
	if boundary {
		s.walls = append(s.walls, Bounds(width, height)...)
		s.boundary = len(s.walls)
	}
	s.walls = append(s.walls, RandomWalls(rng, count, width, height)...)
	return s
}

// FromWalls wraps a fixed wall list.
func FromWalls(width, height int, walls []geom.Wall) *Scene {
	return &Scene{Width: width, Height: height, walls: append([]geom.Wall(nil), walls...)}
}

// Walls returns the wall list. Callers must not modify it.
func (s *Scene) Walls() []geom.Wall {
	return s.walls
}

// Obstacles returns only the randomly generated walls.
func (s *Scene) Obstacles() []geom.Wall {
	return s.walls[s.boundary:]
}
