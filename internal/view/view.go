// Package view draws the visibility pass results: an overhead overlay of rays
// and walls, or a first-person view with one shaded column per ray.
package view

import (
	"image/color"

	"chosenoffset.com/raycaster/internal/core/geom"
	"chosenoffset.com/raycaster/internal/core/raycast"
	"chosenoffset.com/raycaster/internal/render"
)

var (
	// Background clears the screen before either view is drawn.
	Background = color.RGBA{0, 0, 0, 255}
	// RayColor strokes player-to-hit lines in the overlay.
	RayColor = color.RGBA{255, 255, 255, 96}
	// WallColor strokes walls in the overlay.
	WallColor = color.RGBA{255, 255, 255, 255}
)

// Overlay draws a line from the player to every resolved hit, then every wall.
func Overlay(r render.Renderer, dst render.Image, player geom.Vec2, frame *raycast.Frame, walls []geom.Wall) {
	for i, p := range frame.Points {
		if !frame.Hits[i].OK {
			continue
		}
		r.StrokeLine(dst, float32(player.X), float32(player.Y), float32(p.X), float32(p.Y), 1, RayColor)
	}
	for _, w := range walls {
		r.StrokeLine(dst, float32(w.P1.X), float32(w.P1.Y), float32(w.P2.X), float32(w.P2.Y), 1, WallColor)
	}
}

// Bar is the screen rectangle and brightness for one ray in column mode.
type Bar struct {
	X, Y, Width, Height float32
	Alpha               uint8
}

// Column computes the bar for ray i of n across a width x height viewport.
// The distance is clamped to [0, width] first, so the no-hit sentinel yields
// an empty, fully transparent bar.
func Column(i, n int, distance float64, width, height int) Bar {
	w, h := float64(width), float64(height)
	colWidth := w / float64(n)

	d := raycast.Clamp(distance, 0, w)
	barHeight := raycast.Clamp(raycast.Remap(d, 0, w, h, 0), 0, h)
	alpha := raycast.Clamp(raycast.Remap(d*d, 0, w*w, 255, 0), 0, 255)

	return Bar{
		X:      float32(float64(i) * colWidth),
		Y:      float32((h - barHeight) / 2),
		Width:  float32(colWidth),
		Height: float32(barHeight),
		Alpha:  uint8(alpha),
	}
}

// Columns draws one vertically centred bar per ray across the whole of dst.
func Columns(r render.Renderer, dst render.Image, frame *raycast.Frame) {
	width, height := dst.Size()
	n := frame.Len()
	for i, d := range frame.Distances {
		bar := Column(i, n, d, width, height)
		if bar.Alpha == 0 || bar.Height <= 0 {
			continue
		}
		r.FillRect(dst, bar.X, bar.Y, bar.Width, bar.Height, color.NRGBA{255, 255, 255, bar.Alpha})
	}
}
