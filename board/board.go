// Package board adapts the I/O of the game board to the game loop:
// potentiometers behind ADC pins, push buttons and a row of LEDs, all through
// periph.io.
package board

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// AxisMax is the largest value ReadAxis returns (10-bit resolution).
const AxisMax = 1023

// MaxLEDs is the width of the LED mask.
const MaxLEDs = 8

// ADC is the part of analog.PinADC the sampler needs.
type ADC interface {
	Range() (analog.Sample, analog.Sample)
	Read() (analog.Sample, error)
}

// Button is the part of gpio.PinIn the sampler needs.
type Button interface {
	Read() gpio.Level
}

// Sampler reads potentiometers and buttons.
type Sampler struct {
	axes    []ADC
	buttons []Button
	ref     physic.ElectricPotential
}

// NewSampler returns a Sampler over the given channels. Channel and button
// indices follow slice order.
//
// ref is the voltage across the potentiometers. When it is positive, ReadAxis
// scales sample voltages over [0, ref]. When it is zero, ReadAxis scales raw
// readings over the non-negative part of the ADC range.
func NewSampler(ref physic.ElectricPotential, axes []ADC, buttons []Button) *Sampler {
	return &Sampler{axes: axes, buttons: buttons, ref: ref}
}

// ReadAxis returns channel ch scaled to 0..AxisMax. Unknown channels and
// failed conversions read as 0.
func (s *Sampler) ReadAxis(ch int) uint16 {
	if ch < 0 || ch >= len(s.axes) {
		return 0
	}
	sample, err := s.axes[ch].Read()
	if err != nil {
		return 0
	}
	if s.ref > 0 {
		return scale(int64(sample.V), 0, int64(s.ref))
	}
	lo, hi := s.axes[ch].Range()
	// Knobs sit between ground and a positive supply, so a single-ended
	// channel never reads below zero even when the converter is signed.
	return scale(int64(sample.Raw), max(int64(lo.Raw), 0), int64(hi.Raw))
}

// scale maps v from [lo, hi] to [0, AxisMax], clamping.
func scale(v, lo, hi int64) uint16 {
	span := hi - lo
	v -= lo
	if span > 0 {
		v = v * AxisMax / span
	}
	return uint16(min(max(v, 0), AxisMax))
}

// ReadButton reports whether button i is pressed (line High). Unknown
// buttons are never pressed.
func (s *Sampler) ReadButton(i int) bool {
	if i < 0 || i >= len(s.buttons) {
		return false
	}
	return s.buttons[i].Read() == gpio.High
}

// ErrTooManyLEDs is returned by NewLEDs when given more pins than mask bits.
var ErrTooManyLEDs = errors.New("board: at most 8 LEDs")

// LEDs drives up to eight LEDs from a bit mask, bit i for pin i.
type LEDs struct {
	pins []gpio.PinOut
}

// NewLEDs returns an LED row over pins.
func NewLEDs(pins ...gpio.PinOut) (*LEDs, error) {
	if len(pins) > MaxLEDs {
		return nil, ErrTooManyLEDs
	}
	return &LEDs{pins: pins}, nil
}

// Write sets every LED from mask. It stops at the first pin that fails.
func (l *LEDs) Write(mask uint8) error {
	for i, p := range l.pins {
		if err := p.Out(gpio.Level(mask&(1<<uint(i)) != 0)); err != nil {
			return fmt.Errorf("board: led %d: %w", i, err)
		}
	}
	return nil
}
