// Package image1bit provides a 1-bit monochrome image format optimized for the
// SSD1306 display.
package image1bit

import (
	"image"
	"image/color"
)

// Bit represents a monochrome pixel, On or Off.
type Bit bool

const (
	Off Bit = false
	On  Bit = true
)

// RGBA converts the Bit to standard RGBA: white when on, black when off.
func (c Bit) RGBA() (r, g, b, a uint32) {
	if c {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (c Bit) String() string {
	if c {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Off
	}
	// Same luma weights as a grayscale conversion, thresholded at half scale.
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// VerticalLSB is a 1-bit image where each byte holds 8 vertically stacked
// pixels, least significant bit on top.
type VerticalLSB struct {
	Pix    []byte          // Pixel data, page after page
	Stride int             // Bytes per page, equal to the width
	Rect   image.Rectangle // Image bounds
}

// NewVerticalLSB creates a new VerticalLSB image with the specified bounds.
// The height must be a multiple of 8 (one page per 8 rows).
func NewVerticalLSB(r image.Rectangle) *VerticalLSB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &VerticalLSB{Rect: r}
	}
	if h%8 != 0 {
		panic("image1bit: height must be a multiple of 8")
	}
	return &VerticalLSB{
		Pix:    make([]byte, w*h/8),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *VerticalLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *VerticalLSB) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *VerticalLSB) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit of the pixel at (x, y). Out of bounds pixels are Off.
func (p *VerticalLSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, mask := p.pixOffset(x, y)
	return p.Pix[offset]&mask != 0
}

// Set sets the color of the pixel at (x, y), turning it on or off.
func (p *VerticalLSB) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the pixel at (x, y) to b.
func (p *VerticalLSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	if b {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// SetPixel turns the pixel at (x, y) on. The write is additive: it never
// clears a pixel. Coordinates outside the image are silently ignored.
func (p *VerticalLSB) SetPixel(x, y int) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	p.Pix[offset] |= mask
}

// Clear turns every pixel off.
func (p *VerticalLSB) Clear() {
	clear(p.Pix)
}

// Pages returns the number of 8-row pages.
func (p *VerticalLSB) Pages() int {
	return p.Rect.Dy() / 8
}

// Page returns the bytes of page i, left to right. The slice aliases Pix.
// An out of range page yields nil.
func (p *VerticalLSB) Page(i int) []byte {
	if i < 0 || i >= p.Pages() {
		return nil
	}
	return p.Pix[i*p.Stride : (i+1)*p.Stride]
}

// pixOffset returns the byte offset and bit mask for the pixel at (x, y).
// Memory layout: page = y/8 selects a run of Stride bytes, x selects the
// byte within the run and y%8 the bit, LSB on top.
func (p *VerticalLSB) pixOffset(x, y int) (offset int, mask byte) {
	x -= p.Rect.Min.X
	y -= p.Rect.Min.Y
	offset = (y/8)*p.Stride + x
	mask = 1 << uint(y%8)
	return
}
