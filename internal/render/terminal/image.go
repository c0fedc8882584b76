package terminal

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/raycaster/internal/render"
)

// shades are ordered from fully opaque to nearly transparent.
var shades = []rune{'█', '▓', '▒', '░'}

type cell struct {
	ch    rune
	style tcell.Style
}

// Image is a logical-pixel surface backed by a grid of terminal cells.
// Drawing coordinates are logical pixels; they are scaled onto the grid.
type Image struct {
	width, height int
	cols, rows    int
	cells         []cell
	bg            tcell.Style
}

// NewImage creates a width x height logical surface rendered onto cols x rows cells.
func NewImage(width, height, cols, rows int) *Image {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	img := &Image{
		width:  width,
		height: height,
		cols:   cols,
		rows:   rows,
		cells:  make([]cell, cols*rows),
		bg:     tcell.StyleDefault,
	}
	img.Clear()
	return img
}

// Size returns the logical width and height.
func (i *Image) Size() (width, height int) {
	return i.width, i.height
}

// Grid returns the cell dimensions.
func (i *Image) Grid() (cols, rows int) {
	return i.cols, i.rows
}

// Fill paints every cell's background with clr.
func (i *Image) Fill(clr color.Color) {
	i.bg = tcell.StyleDefault.Background(toColor(clr))
	for k := range i.cells {
		i.cells[k] = cell{ch: ' ', style: i.bg}
	}
}

// Clear resets every cell to a blank default cell.
func (i *Image) Clear() {
	i.bg = tcell.StyleDefault
	for k := range i.cells {
		i.cells[k] = cell{ch: ' ', style: i.bg}
	}
}

// At returns the rune stored at a cell, or 0 when out of range.
func (i *Image) At(col, row int) rune {
	if col < 0 || col >= i.cols || row < 0 || row >= i.rows {
		return 0
	}
	return i.cells[row*i.cols+col].ch
}

// toCell maps a logical coordinate onto the cell grid.
func (i *Image) toCell(x, y float64) (int, int) {
	col := int(math.Floor(x * float64(i.cols) / float64(i.width)))
	row := int(math.Floor(y * float64(i.rows) / float64(i.height)))
	return col, row
}

func (i *Image) set(col, row int, ch rune, fg tcell.Color) {
	if col < 0 || col >= i.cols || row < 0 || row >= i.rows {
		return
	}
	i.cells[row*i.cols+col] = cell{ch: ch, style: i.bg.Foreground(fg)}
}

func (i *Image) flush(screen tcell.Screen) {
	for row := 0; row < i.rows; row++ {
		for col := 0; col < i.cols; col++ {
			c := i.cells[row*i.cols+col]
			screen.SetContent(col, row, c.ch, nil, c.style)
		}
	}
}

// Renderer implements render.Renderer on terminal cells.
type Renderer struct{}

// NewRenderer creates a new terminal renderer.
func NewRenderer() render.Renderer {
	return &Renderer{}
}

// StrokeLine rasterizes a line onto the cell grid.
func (r *Renderer) StrokeLine(dst render.Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color) {
	img := dst.(*Image)
	c0, r0 := img.toCell(float64(x0), float64(y0))
	c1, r1 := img.toCell(float64(x1), float64(y1))
	fg := toColor(clr)

	steps := max(abs(c1-c0), abs(r1-r0))
	if steps == 0 {
		img.set(c0, r0, '·', fg)
		return
	}
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		col := int(math.Round(float64(c0) + t*float64(c1-c0)))
		row := int(math.Round(float64(r0) + t*float64(r1-r0)))
		img.set(col, row, '·', fg)
	}
}

// FillRect fills every cell whose origin lies inside the rectangle, shading by alpha.
func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	if width <= 0 || height <= 0 {
		return
	}
	img := dst.(*Image)
	_, _, _, a := clr.RGBA()
	ch, ok := shadeFor(uint8(a >> 8))
	if !ok {
		return
	}
	fg := toColor(clr)

	c0, r0 := img.toCell(float64(x), float64(y))
	c1, r1 := img.toCell(float64(x+width), float64(y+height))
	if c1 == c0 {
		c1++
	}
	if r1 == r0 {
		r1++
	}
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			img.set(col, row, ch, fg)
		}
	}
}

// DrawText writes text starting at a logical position.
func (r *Renderer) DrawText(dst render.Image, text string, x, y int) {
	img := dst.(*Image)
	col, row := img.toCell(float64(x), float64(y))
	for _, ch := range text {
		if ch == '\n' {
			row++
			col, _ = img.toCell(float64(x), 0)
			continue
		}
		img.set(col, row, ch, tcell.ColorWhite)
		col++
	}
}

// shadeFor picks a block rune for an alpha value; ok is false when the alpha
// is too low to be visible.
func shadeFor(alpha uint8) (rune, bool) {
	if alpha == 0 {
		return 0, false
	}
	idx := (255 - int(alpha)) * len(shades) / 256
	return shades[idx], true
}

func toColor(clr color.Color) tcell.Color {
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
