package raycast

import (
	"math"

	"chosenoffset.com/raycaster/internal/core/geom"
)

// NoHitDistance is recorded for rays that hit nothing. It compares larger
// than any finite distance and must be clamped before any pixel conversion.
var NoHitDistance = math.Inf(1)

// Hit is the resolved result of a single ray.
type Hit struct {
	Point    geom.Vec2 // Nearest intersection; meaningless when !OK
	Distance float64   // Euclidean distance from the player to Point
	Wall     int       // Index of the wall that was hit, -1 when !OK
	OK       bool
}

// Frame holds the per-ray buffers produced by one visibility pass.
type Frame struct {
	// Points holds the hit location, or the player position when the ray hit nothing.
	Points []geom.Vec2
	// Distances holds fish-eye-corrected distances, or NoHitDistance.
	Distances []float64
	Hits      []Hit
}

// Len returns the number of rays in the frame.
func (f *Frame) Len() int {
	return len(f.Distances)
}

func (f *Frame) reset(n int) {
	if cap(f.Points) < n {
		f.Points = make([]geom.Vec2, n)
		f.Distances = make([]float64, n)
		f.Hits = make([]Hit, n)
		return
	}
	f.Points = f.Points[:n]
	f.Distances = f.Distances[:n]
	f.Hits = f.Hits[:n]
}

// Nearest finds the closest wall hit along dir from player.
func Nearest(player, dir geom.Vec2, walls []geom.Wall) Hit {
	best := Hit{Distance: NoHitDistance, Wall: -1}
	for i, w := range walls {
		point, ok := geom.Intersect(player, dir, w)
		if !ok {
			continue
		}
		if d := player.DistanceTo(point); d < best.Distance {
			best = Hit{Point: point, Distance: d, Wall: i, OK: true}
		}
	}
	return best
}

// Cast runs the visibility pass for every direction and rebuilds f from
// scratch. facing is in degrees and is used for the fish-eye correction.
func Cast(player geom.Vec2, facing float64, dirs []geom.Vec2, walls []geom.Wall, f *Frame) {
	f.reset(len(dirs))
	for i, dir := range dirs {
		hit := Nearest(player, dir, walls)
		f.Hits[i] = hit
		if !hit.OK {
			f.Points[i] = player
			f.Distances[i] = NoHitDistance
			continue
		}
		f.Points[i] = hit.Point
		f.Distances[i] = Perpendicular(hit.Distance, dir, facing)
	}
}

// Perpendicular converts a radial distance along dir into the distance to a
// projection plane perpendicular to facing (degrees).
func Perpendicular(distance float64, dir geom.Vec2, facing float64) float64 {
	return distance * math.Cos(OffsetAngle(dir, facing))
}

// OffsetAngle returns the signed angle in radians, normalized to (-π, π],
// from facing (degrees) to dir. Angles are measured from +X toward +Y.
func OffsetAngle(dir geom.Vec2, facing float64) float64 {
	a := math.Atan2(dir.Y, dir.X) - facing*DegToRad
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
