package view

import (
	"image/color"
	"math"
	"testing"

	"chosenoffset.com/raycaster/internal/core/geom"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/render/rendertest"
)

func testFrame() (geom.Vec2, []geom.Wall, *raycast.Frame) {
	player := geom.Vec2{X: 400, Y: 225}
	walls := []geom.Wall{
		geom.NewWall(500, 0, 500, 450),
		geom.NewWall(300, 0, 300, 450),
	}
	diag := math.Sqrt2 / 2
	dirs := []geom.Vec2{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: diag, Y: diag}}

	var f raycast.Frame
	raycast.Cast(player, 0, dirs, walls, &f)
	return player, walls, &f
}

func TestOverlayDrawsRaysThenWalls(t *testing.T) {
	player, walls, f := testFrame()
	rec := &rendertest.Recorder{}

	Overlay(rec, &rendertest.Image{W: 800, H: 450}, player, f, walls)

	// The east and diagonal rays hit; the downward ray is parallel to both walls.
	if len(rec.Lines) != 4 {
		t.Fatalf("Expected 2 rays + 2 walls, got %d lines", len(rec.Lines))
	}
	first := rec.Lines[0]
	if first.X0 != 400 || first.Y0 != 225 || first.X1 != 500 || first.Y1 != 225 {
		t.Errorf("Unexpected first ray %+v", first)
	}
	if rec.Lines[2].Color != WallColor || rec.Lines[3].Color != WallColor {
		t.Error("Expected walls to be drawn last")
	}
	if len(rec.Rects) != 0 {
		t.Errorf("Expected no rectangles in overlay mode, got %d", len(rec.Rects))
	}
}

func TestColumnGeometry(t *testing.T) {
	tests := []struct {
		name       string
		distance   float64
		wantHeight float32
		wantAlpha  uint8
	}{
		{"touching", 0, 450, 255},
		{"halfway", 400, 225, 191},
		{"at range", 800, 0, 0},
		{"beyond range", 5000, 0, 0},
		{"no hit", raycast.NoHitDistance, 0, 0},
		{"negative", -20, 450, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := Column(3, 40, tt.distance, 800, 450)
			if bar.Height != tt.wantHeight {
				t.Errorf("Expected height %v, got %v", tt.wantHeight, bar.Height)
			}
			if bar.Alpha != tt.wantAlpha {
				t.Errorf("Expected alpha %d, got %d", tt.wantAlpha, bar.Alpha)
			}
			if bar.X != 60 || bar.Width != 20 {
				t.Errorf("Expected column at x=60 width 20, got x=%v width %v", bar.X, bar.Width)
			}
			if centre := bar.Y + bar.Height/2; centre != 225 {
				t.Errorf("Expected bar centred on 225, got %v", centre)
			}
			if math.IsNaN(float64(bar.Y)) || bar.Height < 0 {
				t.Errorf("Invalid bar %+v", bar)
			}
		})
	}
}

func TestColumnsSkipInvisibleBars(t *testing.T) {
	_, _, f := testFrame()
	rec := &rendertest.Recorder{}

	Columns(rec, &rendertest.Image{W: 800, H: 450}, f)

	if len(rec.Rects) != 2 {
		t.Fatalf("Expected 2 bars for 2 hits, got %d", len(rec.Rects))
	}
	if len(rec.Lines) != 0 {
		t.Errorf("Expected no lines in column mode, got %d", len(rec.Lines))
	}

	c := color.NRGBAModel.Convert(rec.Rects[0].Color).(color.NRGBA)
	want := Column(0, 3, 100, 800, 450).Alpha
	if c.A != want {
		t.Errorf("Expected alpha %d, got %d", want, c.A)
	}
}

func TestColumnsSpanDestination(t *testing.T) {
	_, _, f := testFrame()
	rec := &rendertest.Recorder{}

	Columns(rec, &rendertest.Image{W: 400, H: 225}, f)

	if len(rec.Rects) != 2 {
		t.Fatalf("Expected 2 bars, got %d", len(rec.Rects))
	}
	last := rec.Rects[1]
	want := Column(2, 3, f.Distances[2], 400, 225)
	if last.X != want.X || last.W != want.Width || last.H != want.Height {
		t.Errorf("Expected bar %+v, got %+v", want, last)
	}
	if last.X+last.W > 400.01 {
		t.Errorf("Expected last bar to end at the image edge, got %v", last.X+last.W)
	}
}
