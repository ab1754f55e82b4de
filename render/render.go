// Package render draws the primitives of the game screen into a 1-bit
// framebuffer: pixels, filled and outlined rectangles, dotted court lines,
// fixed-width text and actors.
//
// Every primitive clips silently. Pixels outside the framebuffer, degenerate
// rectangles and out of range text origins are ignored rather than reported,
// so a bad coordinate costs at most a visually wrong frame.
package render

import (
	"image"

	"github.com/flavioheleno/pong/image1bit"
)

// Display geometry of the 128x32 panel.
const (
	Width  = 128
	Height = 32

	// CellSize is the width and height of one text glyph cell.
	CellSize = 8

	maxTextX = Width - CellSize - 1
	maxTextY = Height - CellSize - 1

	dotWidth = 2
)

// Boxer is anything with an integer bounding box, such as a game actor.
type Boxer interface {
	Bounds() image.Rectangle
}

// Renderer owns the framebuffer and draws into it. Draw calls between two
// Clear calls are additive.
type Renderer struct {
	fb *image1bit.VerticalLSB
}

// New returns a Renderer over a fresh 128x32 framebuffer.
func New() *Renderer {
	return &Renderer{fb: image1bit.NewVerticalLSB(image.Rect(0, 0, Width, Height))}
}

// Image returns the framebuffer, ready to be flushed to the display.
func (r *Renderer) Image() *image1bit.VerticalLSB {
	return r.fb
}

// Clear zeroes the framebuffer. Call it once at the top of every tick.
func (r *Renderer) Clear() {
	r.fb.Clear()
}

// SetPixel turns on pixel (x, y); out of range coordinates are ignored.
func (r *Renderer) SetPixel(x, y int) {
	r.fb.SetPixel(x, y)
}

// DrawRectFilled sets every pixel of the rectangle with inclusive corners
// (x0, y0) and (x1, y1). It does nothing when x1 < x0 or y1 < y0.
func (r *Renderer) DrawRectFilled(x0, y0, x1, y1 int) {
	if x1 < x0 || y1 < y0 {
		return
	}
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			r.fb.SetPixel(x, y)
		}
	}
}

// DrawRectOutline sets the 1 pixel border of the rectangle with inclusive
// corners (x0, y0) and (x1, y1). It does nothing when x1 < x0 or y1 < y0.
func (r *Renderer) DrawRectOutline(x0, y0, x1, y1 int) {
	if x1 < x0 || y1 < y0 {
		return
	}
	for x := x0; x <= x1; x++ {
		r.fb.SetPixel(x, y0)
		r.fb.SetPixel(x, y1)
	}
	for y := y0; y <= y1; y++ {
		r.fb.SetPixel(x0, y)
		r.fb.SetPixel(x1, y)
	}
}

// DrawDotline draws a dashed vertical line two pixels wide starting at column
// x: one dash per 8-row band, dotHeight pixels tall and centred in the band.
func (r *Renderer) DrawDotline(x, dotHeight int) {
	if dotHeight <= 0 {
		return
	}
	dotHeight = min(dotHeight, CellSize)
	for band := 0; band < Height/CellSize; band++ {
		y := band*CellSize + (CellSize-dotHeight)/2
		r.DrawRectFilled(x, y, x+dotWidth-1, y+dotHeight-1)
	}
}

// DrawActor fills the actor's bounding box. Empty boxes draw nothing.
func (r *Renderer) DrawActor(b Boxer) {
	box := b.Bounds()
	r.DrawRectFilled(box.Min.X, box.Min.Y, box.Max.X-1, box.Max.Y-1)
}
