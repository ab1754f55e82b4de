package board

import (
	"errors"
	"math"
	"testing"

	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/physic"
)

type fakeADC struct {
	lo, hi int32
	raw    int32
	v      physic.ElectricPotential
	err    error
}

func (f *fakeADC) Range() (analog.Sample, analog.Sample) {
	return analog.Sample{Raw: f.lo}, analog.Sample{Raw: f.hi}
}

func (f *fakeADC) Read() (analog.Sample, error) {
	return analog.Sample{Raw: f.raw, V: f.v}, f.err
}

type failingPin struct {
	*gpiotest.Pin
}

func (failingPin) Out(gpio.Level) error { return errors.New("stuck") }

func TestReadAxisScaling(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi int32
		raw    int32
		want   uint16
	}{
		{"10-bit min", 0, 1023, 0, 0},
		{"10-bit max", 0, 1023, 1023, 1023},
		{"10-bit mid", 0, 1023, 512, 512},
		{"16-bit max", 0, 32767, 32767, 1023},
		{"16-bit half", 0, 32767, 16384, 511},
		{"signed range low", -2048, 2047, -2048, 0},
		{"signed range high", -2048, 2047, 2047, 1023},
		{"clamped below", 0, 1023, -50, 0},
		{"clamped above", 0, 1023, 5000, 1023},
		{"empty range clamps raw", 0, 0, 2000, 1023},
		{"ads1115 ground", -math.MaxInt16, math.MaxInt16, 0, 0},
		{"ads1115 3.3V at 4.096V full scale", -math.MaxInt16, math.MaxInt16, 26400, 824},
		{"ads1115 full scale", -math.MaxInt16, math.MaxInt16, math.MaxInt16, 1023},
		{"ads1115 noise below ground", -math.MaxInt16, math.MaxInt16, -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSampler(0, []ADC{&fakeADC{lo: tt.lo, hi: tt.hi, raw: tt.raw}}, nil)
			if got := s.ReadAxis(0); got != tt.want {
				t.Errorf("ReadAxis(0) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReadAxisReference(t *testing.T) {
	const ref = 3300 * physic.MilliVolt
	tests := []struct {
		name string
		v    physic.ElectricPotential
		want uint16
	}{
		{"ground", 0, 0},
		{"half", 1650 * physic.MilliVolt, 511},
		{"supply", ref, 1023},
		{"below ground", -5 * physic.MilliVolt, 0},
		{"above supply", 3400 * physic.MilliVolt, 1023},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Raw and range disagree with V on purpose: the reference wins.
			adc := &fakeADC{lo: -math.MaxInt16, hi: math.MaxInt16, raw: 1, v: tt.v}
			s := NewSampler(ref, []ADC{adc}, nil)
			if got := s.ReadAxis(0); got != tt.want {
				t.Errorf("ReadAxis(0) at %s = %d, want %d", tt.v, got, tt.want)
			}
		})
	}
}

func TestReadAxisFailures(t *testing.T) {
	s := NewSampler(0, []ADC{&fakeADC{hi: 1023, raw: 700, err: errors.New("not ready")}}, nil)

	if got := s.ReadAxis(0); got != 0 {
		t.Errorf("ReadAxis on failed read = %d, want 0", got)
	}
	if got := s.ReadAxis(1); got != 0 {
		t.Errorf("ReadAxis on unknown channel = %d, want 0", got)
	}
	if got := s.ReadAxis(-1); got != 0 {
		t.Errorf("ReadAxis(-1) = %d, want 0", got)
	}
}

func TestReadButton(t *testing.T) {
	pressed := &gpiotest.Pin{N: "BTN1", L: gpio.High}
	released := &gpiotest.Pin{N: "BTN2", L: gpio.Low}
	s := NewSampler(0, nil, []Button{pressed, released})

	if !s.ReadButton(0) {
		t.Error("ReadButton(0) = false, want true")
	}
	if s.ReadButton(1) {
		t.Error("ReadButton(1) = true, want false")
	}
	if s.ReadButton(2) || s.ReadButton(-1) {
		t.Error("unknown buttons should read as released")
	}
}

func TestLEDsWrite(t *testing.T) {
	pins := make([]*gpiotest.Pin, MaxLEDs)
	outs := make([]gpio.PinOut, MaxLEDs)
	for i := range pins {
		pins[i] = &gpiotest.Pin{N: "LED", Num: i}
		outs[i] = pins[i]
	}
	leds, err := NewLEDs(outs...)
	if err != nil {
		t.Fatalf("NewLEDs: %v", err)
	}

	tests := []struct {
		name string
		mask uint8
	}{
		{"boot", 0x03},
		{"running", 0x01},
		{"max speed", 0x81},
		{"all", 0xFF},
		{"none", 0x00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := leds.Write(tt.mask); err != nil {
				t.Fatalf("Write(0x%02X): %v", tt.mask, err)
			}
			for i, p := range pins {
				want := gpio.Level(tt.mask&(1<<uint(i)) != 0)
				if p.L != want {
					t.Errorf("LED %d = %v, want %v", i, p.L, want)
				}
			}
		})
	}
}

func TestLEDsTooMany(t *testing.T) {
	outs := make([]gpio.PinOut, MaxLEDs+1)
	for i := range outs {
		outs[i] = &gpiotest.Pin{N: "LED", Num: i}
	}
	if _, err := NewLEDs(outs...); !errors.Is(err, ErrTooManyLEDs) {
		t.Errorf("NewLEDs(9 pins) error = %v, want %v", err, ErrTooManyLEDs)
	}
}

func TestLEDsWriteError(t *testing.T) {
	leds, err := NewLEDs(&gpiotest.Pin{N: "LD1"}, failingPin{&gpiotest.Pin{N: "LD2"}})
	if err != nil {
		t.Fatalf("NewLEDs: %v", err)
	}
	err = leds.Write(0x03)
	if err == nil {
		t.Fatal("Write should fail when a pin fails")
	}
	if err.Error() != "board: led 1: stuck" {
		t.Errorf("Write error = %q, want %q", err.Error(), "board: led 1: stuck")
	}
}
