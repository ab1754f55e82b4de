package pong

import (
	"context"
	"log"

	"github.com/flavioheleno/pong/render"
	"github.com/flavioheleno/pong/tick"
)

// Sampler reads the player controls.
type Sampler interface {
	ReadAxis(ch int) uint16 // 0..1023
	ReadButton(i int) bool
}

// Display receives a full framebuffer, page by page in VerticalLSB layout.
type Display interface {
	Write(pixels []byte) (int, error)
}

// Indicator shows an 8-bit mask, one bit per LED.
type Indicator interface {
	Write(mask uint8) error
}

// Buttons maps logical buttons to sampler button indices.
type Buttons struct {
	Pause   int
	Confirm int
}

// Loop runs one tick at a time: read input, update, draw, flush.
type Loop struct {
	Engine  *Engine
	Menu    *Menu // Optional, shown before the first match
	Input   Sampler
	Display Display
	LEDs    Indicator // Optional
	Buttons Buttons
	Log     *log.Logger // Optional

	r *render.Renderer
}

// Run waits for each tick on f and steps the game, until ctx is done.
func (l *Loop) Run(ctx context.Context, f *tick.Flag) error {
	for {
		if err := tick.Wait(ctx, f); err != nil {
			return err
		}
		l.Step()
	}
}

// Step runs a single tick. Display and LED failures are logged and the loop
// carries on; the next tick redraws the whole frame.
func (l *Loop) Step() {
	if l.r == nil {
		l.r = render.New()
	}
	l.r.Clear()

	if l.Menu != nil && !l.Menu.Done() {
		// Same sense as the paddles: turning the knob up moves the cursor up.
		up := MaxAxis - min(l.Input.ReadAxis(0), MaxAxis)
		if l.Menu.Update(up, l.Input.ReadButton(l.Buttons.Confirm)) {
			l.Engine.SetMatchScore(l.Menu.Choice())
			l.logf("match: first to %d", l.Menu.Choice())
		}
		l.Menu.Draw(l.r)
	} else {
		prev := l.Engine.State()
		l.Engine.Update(Input{
			Axes:  [2]uint16{l.Input.ReadAxis(0), l.Input.ReadAxis(1)},
			Pause: l.Input.ReadButton(l.Buttons.Pause),
		})
		if s := l.Engine.State(); s != prev {
			l.logState(prev, s)
		}
		l.Engine.Draw(l.r)
	}

	if _, err := l.Display.Write(l.r.Image().Pix); err != nil {
		l.logf("flush: %v", err)
	}
	if l.LEDs != nil {
		if err := l.LEDs.Write(l.Engine.Indicators()); err != nil {
			l.logf("leds: %v", err)
		}
	}
}

func (l *Loop) logState(prev, s State) {
	switch s {
	case MatchEnd:
		l.logf("%v -> %v, %v wins", prev, s, l.Engine.Winner())
	case RoundBegin:
		p1, p2 := l.Engine.Score()
		l.logf("%v -> %v, score %d-%d", prev, s, p1, p2)
	default:
		l.logf("%v -> %v", prev, s)
	}
}

func (l *Loop) logf(format string, args ...any) {
	if l.Log != nil {
		l.Log.Printf(format, args...)
	}
}
