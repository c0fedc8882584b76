package raycast

import (
	"math"
	"math/rand"
	"testing"

	"chosenoffset.com/raycaster/internal/core/geom"
)

const eps = 1e-9

func boundaryWalls() []geom.Wall {
	return []geom.Wall{
		geom.NewWall(0, 0, 0, 450),
		geom.NewWall(800, 0, 800, 450),
		geom.NewWall(0, 0, 800, 0),
		geom.NewWall(0, 450, 800, 450),
	}
}

func TestDirectionsAreUnitAndOrdered(t *testing.T) {
	dirs := Directions(10, 40)
	if len(dirs) != 40 {
		t.Fatalf("Expected 40 directions, got %d", len(dirs))
	}

	for i, d := range dirs {
		if math.Abs(d.Len()-1) > eps {
			t.Errorf("Direction %d is not unit length: %v", i, d.Len())
		}
		want := float64(i+10) * DegToRad
		if got := math.Atan2(d.Y, d.X); math.Abs(got-want) > eps {
			t.Errorf("Direction %d: expected angle %v, got %v", i, want, got)
		}
	}

	if Directions(0, 0) != nil {
		t.Error("Expected nil fan for non-positive count")
	}
}

func TestFanRegeneratesOnAngleChange(t *testing.T) {
	fan := NewFan(40)
	if fan.Size() != 40 {
		t.Fatalf("Expected fan size 40, got %d", fan.Size())
	}

	first := fan.Directions(0)
	firstCopy := append([]geom.Vec2(nil), first...)

	again := fan.Directions(0)
	for i := range again {
		if !again[i].Equal(firstCopy[i]) {
			t.Fatalf("Direction %d changed without an angle change", i)
		}
	}

	rotated := fan.Directions(5)
	want := Directions(5, 40)
	for i := range rotated {
		if !rotated[i].Equal(want[i]) {
			t.Errorf("Direction %d is stale after rotation: got %v, want %v", i, rotated[i], want[i])
		}
	}
	if fan.Theta() != 5 {
		t.Errorf("Expected cached theta 5, got %v", fan.Theta())
	}
}

func TestStartAngleCentresFacing(t *testing.T) {
	dirs := Directions(StartAngle(30, 40), 40)
	centre := dirs[20]
	if off := OffsetAngle(centre, 30); math.Abs(off) > eps {
		t.Errorf("Expected centre ray to point along facing, offset %v", off)
	}
}

func TestCastScenarioSingleWall(t *testing.T) {
	player := geom.Vec2{X: 400, Y: 225}
	walls := []geom.Wall{geom.NewWall(500, 0, 500, 450)}
	dirs := []geom.Vec2{{X: 1, Y: 0}}

	var f Frame
	Cast(player, 0, dirs, walls, &f)

	if !f.Hits[0].OK {
		t.Fatal("Expected the ray to hit")
	}
	if !f.Points[0].Equal(geom.Vec2{X: 500, Y: 225}) {
		t.Errorf("Expected point (500, 225), got %v", f.Points[0])
	}
	if f.Distances[0] != 100 {
		t.Errorf("Expected distance 100, got %v", f.Distances[0])
	}
	if f.Hits[0].Wall != 0 {
		t.Errorf("Expected wall 0, got %d", f.Hits[0].Wall)
	}
}

func TestCastNoHitUsesSentinels(t *testing.T) {
	player := geom.Vec2{X: 400, Y: 225}
	walls := []geom.Wall{geom.NewWall(300, 0, 300, 450)}

	var f Frame
	Cast(player, 0, []geom.Vec2{{X: 1, Y: 0}}, walls, &f)

	if f.Hits[0].OK {
		t.Fatal("Expected no hit for a wall behind the player")
	}
	if !f.Points[0].Equal(player) {
		t.Errorf("Expected player position as point, got %v", f.Points[0])
	}
	if !math.IsInf(f.Distances[0], 1) {
		t.Errorf("Expected +Inf distance, got %v", f.Distances[0])
	}
	if f.Distances[0] <= math.MaxFloat64 {
		t.Error("Expected sentinel to exceed every finite distance")
	}
}

func TestCastBuffersMatchDirections(t *testing.T) {
	var f Frame
	walls := boundaryWalls()
	for _, n := range []int{40, 7, 80, 1} {
		dirs := Directions(0, n)
		Cast(geom.Vec2{X: 100, Y: 100}, 0, dirs, walls, &f)
		if len(f.Points) != n || len(f.Distances) != n || len(f.Hits) != n {
			t.Errorf("Expected %d entries, got points=%d distances=%d hits=%d",
				n, len(f.Points), len(f.Distances), len(f.Hits))
		}
	}
}

func TestCastPicksNearestWall(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	walls := boundaryWalls()
	for i := 0; i < 5; i++ {
		walls = append(walls, geom.NewWall(
			float64(rng.Intn(801)), float64(rng.Intn(451)),
			float64(rng.Intn(801)), float64(rng.Intn(451))))
	}

	for trial := 0; trial < 50; trial++ {
		player := geom.Vec2{X: 1 + rng.Float64()*798, Y: 1 + rng.Float64()*448}
		facing := rng.Float64() * 360
		dirs := Directions(StartAngle(facing, 40), 40)

		var f Frame
		Cast(player, facing, dirs, walls, &f)

		for i, dir := range dirs {
			best := NoHitDistance
			for _, w := range walls {
				if p, ok := geom.Intersect(player, dir, w); ok {
					best = math.Min(best, player.DistanceTo(p))
				}
			}

			if math.IsInf(best, 1) {
				if f.Hits[i].OK {
					t.Fatalf("Ray %d: expected no hit", i)
				}
				continue
			}
			if math.Abs(f.Hits[i].Distance-best) > eps {
				t.Fatalf("Ray %d: expected nearest distance %v, got %v", i, best, f.Hits[i].Distance)
			}
			corrected := best * math.Cos(OffsetAngle(dir, facing))
			if math.Abs(f.Distances[i]-corrected) > 1e-6 {
				t.Fatalf("Ray %d: expected corrected distance %v, got %v", i, corrected, f.Distances[i])
			}
		}
	}
}

func TestCastIsDeterministic(t *testing.T) {
	walls := append(boundaryWalls(), geom.NewWall(200, 50, 600, 400))
	player := geom.Vec2{X: 321.5, Y: 123.25}
	dirs := Directions(StartAngle(77, 40), 40)

	var a, b Frame
	Cast(player, 77, dirs, walls, &a)
	Cast(player, 77, dirs, walls, &b)

	for i := range a.Distances {
		if a.Distances[i] != b.Distances[i] || !a.Points[i].Equal(b.Points[i]) {
			t.Fatalf("Ray %d differs between passes", i)
		}
	}
}

func TestPerpendicularCorrection(t *testing.T) {
	tests := []struct {
		name   string
		dir    geom.Vec2
		facing float64
		want   float64
	}{
		{"centre ray unchanged", geom.Vec2{X: 1, Y: 0}, 0, 100},
		{"vertical ray", geom.Vec2{X: 0, Y: 1}, 90, 100},
		{"vertical ray up", geom.Vec2{X: 0, Y: -1}, -90, 100},
		{"sixty degrees off", geom.Vec2{X: math.Cos(60 * DegToRad), Y: math.Sin(60 * DegToRad)}, 0, 50},
		{"wraps across zero", geom.Vec2{X: 1, Y: 0}, 360, 100},
		{"perpendicular", geom.Vec2{X: 0, Y: 1}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Perpendicular(100, tt.dir, tt.facing)
			if math.IsNaN(got) || math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestOffsetAngleRange(t *testing.T) {
	for deg := -720.0; deg <= 720; deg += 7.5 {
		dir := geom.Vec2{X: math.Cos(deg * DegToRad), Y: math.Sin(deg * DegToRad)}
		for _, facing := range []float64{-400, -90, 0, 45, 359, 1000} {
			a := OffsetAngle(dir, facing)
			if a <= -math.Pi-eps || a > math.Pi+eps {
				t.Fatalf("Offset %v out of range for dir %v facing %v", a, deg, facing)
			}
		}
	}
}

func TestRemapRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ranges := [][4]float64{
		{0, 800, 450, 0},
		{0, 640000, 255, 0},
		{-10, 10, 100, 200},
	}

	for _, r := range ranges {
		for i := 0; i < 200; i++ {
			x := r[0] + rng.Float64()*(r[1]-r[0])
			back := Remap(Remap(x, r[0], r[1], r[2], r[3]), r[2], r[3], r[0], r[1])
			if math.Abs(back-x) > 1e-6 {
				t.Fatalf("Round trip of %v through %v gave %v", x, r, back)
			}
		}
	}
}

func TestRemapAndClamp(t *testing.T) {
	if got := Remap(0, 0, 800, 450, 0); got != 450 {
		t.Errorf("Expected 450, got %v", got)
	}
	if got := Remap(800, 0, 800, 450, 0); got != 0 {
		t.Errorf("Expected 0, got %v", got)
	}
	if got := Clamp(math.Inf(1), 0, 800); got != 800 {
		t.Errorf("Expected +Inf to clamp to 800, got %v", got)
	}
	if got := Clamp(-5, 0, 255); got != 0 {
		t.Errorf("Expected 0, got %v", got)
	}
}
