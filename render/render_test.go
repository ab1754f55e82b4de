package render

import (
	"bytes"
	"image"
	"testing"
)

type box image.Rectangle

func (b box) Bounds() image.Rectangle { return image.Rectangle(b) }

func snapshot(r *Renderer) []byte {
	return bytes.Clone(r.Image().Pix)
}

func countOn(r *Renderer, area image.Rectangle) int {
	n := 0
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			if r.Image().BitAt(x, y) {
				n++
			}
		}
	}
	return n
}

func TestNewGeometry(t *testing.T) {
	r := New()
	if got, want := r.Image().Bounds(), image.Rect(0, 0, 128, 32); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if len(r.Image().Pix) != 512 {
		t.Errorf("len(Pix) = %d, want 512", len(r.Image().Pix))
	}
}

func TestDrawRectFilled(t *testing.T) {
	r := New()
	r.DrawRectFilled(2, 3, 4, 6)

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			want := x >= 2 && x <= 4 && y >= 3 && y <= 6
			if got := bool(r.Image().BitAt(x, y)); got != want {
				t.Fatalf("BitAt(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestDrawRectDegenerate(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
	}{
		{"x1 < x0", 10, 0, 9, 5},
		{"y1 < y0", 0, 10, 5, 9},
		{"both inverted", 20, 20, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			r.SetPixel(64, 16)
			before := snapshot(r)

			r.DrawRectFilled(tt.x0, tt.y0, tt.x1, tt.y1)
			r.DrawRectOutline(tt.x0, tt.y0, tt.x1, tt.y1)

			if !bytes.Equal(before, r.Image().Pix) {
				t.Error("degenerate rectangle changed the buffer")
			}
		})
	}
}

func TestDrawRectClipped(t *testing.T) {
	r := New()
	r.DrawRectFilled(-5, -5, 1, 1)
	r.DrawRectFilled(126, 30, 200, 200)

	if got := countOn(r, r.Image().Bounds()); got != 4+4 {
		t.Errorf("pixels on = %d, want 8", got)
	}
}

func TestDrawRectOutline(t *testing.T) {
	r := New()
	r.DrawRectOutline(10, 4, 20, 12)

	if !r.Image().BitAt(10, 4) || !r.Image().BitAt(20, 12) || !r.Image().BitAt(15, 4) || !r.Image().BitAt(10, 8) {
		t.Error("border pixel missing")
	}
	if got := countOn(r, image.Rect(11, 5, 20, 12)); got != 0 {
		t.Errorf("interior pixels on = %d, want 0", got)
	}
	// 11 wide, 9 tall border.
	if got := countOn(r, r.Image().Bounds()); got != 2*11+2*9-4 {
		t.Errorf("pixels on = %d, want %d", got, 2*11+2*9-4)
	}
}

func TestDrawRectOutlineSinglePixel(t *testing.T) {
	r := New()
	r.DrawRectOutline(5, 5, 5, 5)
	if got := countOn(r, r.Image().Bounds()); got != 1 {
		t.Errorf("pixels on = %d, want 1", got)
	}
}

func TestDrawDotline(t *testing.T) {
	r := New()
	r.DrawDotline(31, 3)

	for y := 0; y < Height; y++ {
		inDash := y%8 >= 2 && y%8 <= 4
		for x := 30; x <= 33; x++ {
			want := inDash && (x == 31 || x == 32)
			if got := bool(r.Image().BitAt(x, y)); got != want {
				t.Errorf("BitAt(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
	if got := countOn(r, r.Image().Bounds()); got != 4*2*3 {
		t.Errorf("pixels on = %d, want 24", got)
	}
}

func TestDrawDotlineHeights(t *testing.T) {
	tests := []struct {
		name      string
		dotHeight int
		want      int
	}{
		{"zero", 0, 0},
		{"negative", -3, 0},
		{"full band", 8, 4 * 2 * 8},
		{"capped at band", 20, 4 * 2 * 8},
		{"single", 1, 4 * 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			r.DrawDotline(60, tt.dotHeight)
			if got := countOn(r, r.Image().Bounds()); got != tt.want {
				t.Errorf("pixels on = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDrawActor(t *testing.T) {
	r := New()
	r.DrawActor(box(image.Rect(34, 10, 37, 19)))

	if got := countOn(r, r.Image().Bounds()); got != 3*9 {
		t.Errorf("pixels on = %d, want 27", got)
	}
	if !r.Image().BitAt(34, 10) || !r.Image().BitAt(36, 18) {
		t.Error("corner pixel missing")
	}
	if r.Image().BitAt(37, 10) || r.Image().BitAt(34, 19) {
		t.Error("pixel outside the box is on")
	}
}

func TestDrawActorEmpty(t *testing.T) {
	r := New()
	r.DrawActor(box(image.Rect(10, 10, 10, 20)))
	if got := countOn(r, r.Image().Bounds()); got != 0 {
		t.Errorf("pixels on = %d, want 0", got)
	}
}

func TestClear(t *testing.T) {
	r := New()
	r.DrawRectFilled(0, 0, Width-1, Height-1)
	r.Clear()
	if got := countOn(r, r.Image().Bounds()); got != 0 {
		t.Errorf("pixels on after Clear = %d, want 0", got)
	}
}
