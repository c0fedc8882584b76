// Package rendertest provides recording fakes of the render interfaces.
package rendertest

import (
	"image/color"

	"chosenoffset.com/raycaster/internal/render"
)

// Line is a recorded StrokeLine call.
type Line struct {
	X0, Y0, X1, Y1 float32
	Color          color.Color
}

// Rect is a recorded FillRect call.
type Rect struct {
	X, Y, W, H float32
	Color      color.Color
}

// Recorder implements render.Renderer by recording calls.
type Recorder struct {
	Lines []Line
	Rects []Rect
	Texts []string
}

func (r *Recorder) StrokeLine(_ render.Image, x0, y0, x1, y1, _ float32, clr color.Color) {
	r.Lines = append(r.Lines, Line{X0: x0, Y0: y0, X1: x1, Y1: y1, Color: clr})
}

func (r *Recorder) FillRect(_ render.Image, x, y, w, h float32, clr color.Color) {
	r.Rects = append(r.Rects, Rect{X: x, Y: y, W: w, H: h, Color: clr})
}

func (r *Recorder) DrawText(_ render.Image, text string, _, _ int) {
	r.Texts = append(r.Texts, text)
}

// Reset drops every recorded call.
func (r *Recorder) Reset() {
	r.Lines, r.Rects, r.Texts = nil, nil, nil
}

// Image is a fixed-size render.Image that remembers the last fill.
type Image struct {
	W, H   int
	Filled color.Color
}

func (i *Image) Size() (int, int)     { return i.W, i.H }
func (i *Image) Fill(clr color.Color) { i.Filled = clr }

// Input is a scriptable render.InputManager.
type Input struct {
	Held    map[render.Key]bool
	Just    map[render.Key]bool
	CursorX int
	CursorY int
}

// NewInput creates an input with nothing pressed.
func NewInput() *Input {
	return &Input{Held: map[render.Key]bool{}, Just: map[render.Key]bool{}}
}

func (i *Input) IsKeyPressed(key render.Key) bool     { return i.Held[key] }
func (i *Input) IsKeyJustPressed(key render.Key) bool { return i.Just[key] }
func (i *Input) GetCursorPosition() (int, int)        { return i.CursorX, i.CursorY }

// Release clears every key.
func (i *Input) Release() {
	clear(i.Held)
	clear(i.Just)
}
