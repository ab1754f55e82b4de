// Package tick paces the game loop.
//
// A Flag is the only state shared between the periodic timer and the loop:
// the timer raises it, the loop takes it. Taking is a compare-and-swap, so a
// tick is consumed exactly once and ticks raised while the loop is busy
// collapse into one.
package tick

import (
	"context"
	"sync/atomic"
	"time"
)

// DefaultRate is the loop frequency in ticks per second.
const DefaultRate = 30

// pollInterval is how long Wait yields between looks at the flag.
const pollInterval = time.Millisecond

// Flag is a one-shot tick signal. The zero value is lowered.
type Flag struct {
	raised atomic.Bool
}

// Raise signals that a tick has elapsed.
func (f *Flag) Raise() {
	f.raised.Store(true)
}

// Take lowers the flag and reports whether it was raised.
func (f *Flag) Take() bool {
	return f.raised.CompareAndSwap(true, false)
}

// Wait spins until the flag can be taken or ctx is done. A done ctx wins
// over a raised flag.
func Wait(ctx context.Context, f *Flag) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if f.Take() {
			return nil
		}
		select {
		case <-ctx.Done():
		case <-time.After(pollInterval):
		}
	}
}

// Period returns the time between ticks at rate ticks per second.
// Non-positive rates use DefaultRate.
func Period(rate int) time.Duration {
	if rate <= 0 {
		rate = DefaultRate
	}
	return time.Second / time.Duration(rate)
}

// Start raises f every period until ctx is done. It stands in for the
// hardware timer interrupt: it touches nothing but the flag.
func Start(ctx context.Context, f *Flag, period time.Duration) {
	t := time.NewTicker(period)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				f.Raise()
			}
		}
	}()
}
