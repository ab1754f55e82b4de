package pong

import (
	"image"
	"math"
)

// Actor is a moving rectangle: the ball or a paddle.
//
// Position and velocity are floating point so the ball can move by fractions
// of a pixel per tick; the size is a whole number of pixels.
type Actor struct {
	X, Y   float64 // Top left corner
	DX, DY float64 // Velocity in pixels per tick
	W, H   int     // Size in pixels, never negative
}

// NewActor returns a stationary actor. Negative sizes are clamped to zero.
func NewActor(x, y float64, w, h int) Actor {
	return Actor{X: x, Y: y, W: max(w, 0), H: max(h, 0)}
}

// Bounds returns the actor's box rounded to the nearest pixel.
func (a Actor) Bounds() image.Rectangle {
	x, y := int(math.Round(a.X)), int(math.Round(a.Y))
	return image.Rect(x, y, x+max(a.W, 0), y+max(a.H, 0))
}

// Move advances the actor by one tick of its velocity.
func (a *Actor) Move() {
	a.X += a.DX
	a.Y += a.DY
}

// Collides reports whether a and b overlap once each has moved by its
// pending velocity. Testing the next position lets the caller bounce in the
// same tick as the move that would have caused the overlap.
func Collides(a, b Actor) bool {
	ax, ay := a.X+a.DX, a.Y+a.DY
	bx, by := b.X+b.DX, b.Y+b.DY
	return ax < bx+float64(b.W) && ax+float64(a.W) > bx &&
		ay < by+float64(b.H) && ay+float64(a.H) > by
}
