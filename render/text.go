package render

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"github.com/flavioheleno/pong/image1bit"
)

// TextCells is the fixed number of glyph cells in a line of text.
const TextCells = 16

// Glyph origin inside a cell. Org01 glyphs span columns 0..4 and rows -4..1
// around their origin, which puts every glyph in rows 1..6 and columns 1..5.
const (
	glyphX   = 1
	baseline = 5
)

// font is the glyph set drawn into the cells.
var font = &tinyfont.Org01

var white = color.RGBA{255, 255, 255, 255}

// Text is a fixed-width line of TextCells glyphs. Short strings are padded
// with spaces and long strings are truncated, so a Text always covers the
// same number of cells.
type Text [TextCells]byte

// NewText pads or truncates s to TextCells bytes.
func NewText(s string) Text {
	var t Text
	for i := range t {
		t[i] = ' '
	}
	copy(t[:], s)
	return t
}

// String returns all TextCells bytes, padding included.
func (t Text) String() string {
	return string(t[:])
}

// DrawText draws s in 8x8 cells starting at (x, y). Origins with x or y
// negative, x > 119 or y > 23 are rejected. Cells running off the right edge
// are clipped.
func (r *Renderer) DrawText(s string, x, y int) {
	if x < 0 || y < 0 || x > maxTextX || y > maxTextY {
		return
	}
	r.drawText(NewText(s), x, y)
}

func (r *Renderer) drawText(t Text, x, y int) {
	for i, c := range t {
		if c == ' ' {
			continue
		}
		cx := x + i*CellSize
		if cx >= Width {
			return
		}
		dst := &cell{fb: r.fb, clip: image.Rect(cx, y, cx+CellSize, y+CellSize)}
		tinyfont.DrawChar(dst, font, int16(cx+glyphX), int16(y+baseline), rune(c), white)
	}
}

// cell adapts one glyph cell of the framebuffer to the tinyfont display
// interface, dropping pixels that fall outside the cell.
type cell struct {
	fb   *image1bit.VerticalLSB
	clip image.Rectangle
}

var _ drivers.Displayer = (*cell)(nil)

func (c *cell) Size() (x, y int16) {
	return int16(c.fb.Rect.Dx()), int16(c.fb.Rect.Dy())
}

func (c *cell) SetPixel(x, y int16, col color.RGBA) {
	if !image1bit.BitModel.Convert(col).(image1bit.Bit) {
		return
	}
	if !(image.Point{X: int(x), Y: int(y)}.In(c.clip)) {
		return
	}
	c.fb.SetPixel(int(x), int(y))
}

func (c *cell) Display() error {
	return nil
}
