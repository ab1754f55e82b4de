package ssd1306

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/flavioheleno/pong/image1bit"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Controller commands.
const (
	cmdDisplayOff       = 0xAE
	cmdDisplayOn        = 0xAF
	cmdSetContrast      = 0x81
	cmdNormal           = 0xA6
	cmdInverted         = 0xA7
	cmdChargePump       = 0x8D
	cmdEnableChargePump = 0x14
	cmdPrecharge        = 0xD9
	cmdSegmentRemap     = 0xA1
	cmdCOMScanRemap     = 0xC8
	cmdCOMPins          = 0xDA
	cmdPageAddress      = 0x22
	cmdColumnLow        = 0x00
	cmdColumnHigh       = 0x10
)

var (
	errHalted        = errors.New("ssd1306: halted")
	errBufferSize    = errors.New("ssd1306: invalid buffer size")
	errInvalidWidth  = errors.New("ssd1306: width must be between 1 and 128")
	errInvalidHeight = errors.New("ssd1306: height must be a multiple of 8 between 8 and 64")
)

// sleep is replaced in tests.
var sleep = time.Sleep

// Opts is the configuration for the SSD1306 display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 128, must be ≤128)
	H int // Height (default: 32, must be a multiple of 8 and ≤64)

	// Optional control pins. On boards that switch the panel supplies (such
	// as the chipKIT Basic I/O shield) VDD and VBAT are active low.
	RST  gpio.PinOut // Reset pin, active low
	VDD  gpio.PinOut // Logic supply enable, active low
	VBAT gpio.PinOut // Panel supply enable, active low
}

// Dev is the device handle for the SSD1306 display.
type Dev struct {
	// Communication
	c    conn.Conn   // SPI connection
	dc   gpio.PinOut // Data/Command pin
	rst  gpio.PinOut
	vdd  gpio.PinOut
	vbat gpio.PinOut

	// Display geometry
	rect image.Rectangle

	// Pixel buffers
	buffer []byte                 // Last frame sent to the controller
	next   *image1bit.VerticalLSB // For lazy double buffering

	// State
	halted bool
}

// NewSPI creates a new SSD1306 device connected via SPI.
//
// The SPI port is configured for 4MHz, Mode3, 8-bit transfers. The dc
// (Data/Command) GPIO pin must be provided.
//
// opts can be nil to use defaults (128x32 display, no control pins).
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{W: 128, H: 32}
	}
	if opts.W <= 0 || opts.W > 128 {
		return nil, errInvalidWidth
	}
	if opts.H <= 0 || opts.H%8 != 0 || opts.H > 64 {
		return nil, errInvalidHeight
	}

	c, err := p.Connect(4*physic.MegaHertz, spi.Mode3, 8)
	if err != nil {
		return nil, fmt.Errorf("ssd1306: %w", err)
	}

	d := &Dev{
		c:      c,
		dc:     dc,
		rst:    opts.RST,
		vdd:    opts.VDD,
		vbat:   opts.VBAT,
		rect:   image.Rect(0, 0, opts.W, opts.H),
		buffer: make([]byte, opts.W*opts.H/8),
	}

	if err := d.init(opts); err != nil {
		return nil, err
	}
	return d, nil
}

// init powers the panel up and sends the initialization sequence.
func (d *Dev) init(opts *Opts) error {
	// Logic supply first, then let it settle.
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	if err := out(d.vdd, gpio.Low, "VDD"); err != nil {
		return err
	}
	sleep(time.Millisecond)

	if err := d.sendCommand(cmdDisplayOff); err != nil {
		return err
	}

	// Hardware reset pulse
	if d.rst != nil {
		if err := out(d.rst, gpio.Low, "RST"); err != nil {
			return err
		}
		sleep(10 * time.Microsecond)
		if err := out(d.rst, gpio.High, "RST"); err != nil {
			return err
		}
		sleep(10 * time.Microsecond)
	}

	// Charge pump on, precharge phase 1 = 1, phase 2 = 15
	if err := d.sendCommands([]byte{
		cmdChargePump, cmdEnableChargePump,
		cmdPrecharge, 0x01 | 0x0F<<4,
	}); err != nil {
		return err
	}

	// Panel supply, then wait for it to come up.
	if err := out(d.vbat, gpio.Low, "VBAT"); err != nil {
		return err
	}
	sleep(100 * time.Millisecond)

	comPins := byte(0x20) // sequential COM, left/right remap
	if opts.H > 32 {
		comPins = 0x12
	}
	if err := d.sendCommands([]byte{
		cmdSegmentRemap,
		cmdCOMScanRemap,
		cmdCOMPins, comPins,
	}); err != nil {
		return err
	}

	if err := d.clearRAM(); err != nil {
		return err
	}

	return d.sendCommand(cmdDisplayOn)
}

// out drives an optional control pin.
func out(p gpio.PinOut, l gpio.Level, name string) error {
	if p == nil {
		return nil
	}
	if err := p.Out(l); err != nil {
		return fmt.Errorf("ssd1306: failed to drive %s %s: %w", name, l, err)
	}
	return nil
}

// clearRAM clears all pixels in the display RAM.
func (d *Dev) clearRAM() error {
	return d.writeFrame(make([]byte, len(d.buffer)))
}

// sendCommand sends a single command byte.
func (d *Dev) sendCommand(cmd byte) error {
	return d.sendCommands([]byte{cmd})
}

// sendCommands sends a slice of command bytes.
func (d *Dev) sendCommands(cmds []byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	return d.c.Tx(cmds, nil)
}

// sendData sends a slice of data bytes.
func (d *Dev) sendData(data []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	return d.c.Tx(data, nil)
}

// writePage selects page p from column 0 and sends its bytes.
func (d *Dev) writePage(p int, pixels []byte) error {
	if err := d.sendCommands([]byte{cmdPageAddress, byte(p), cmdColumnLow, cmdColumnHigh}); err != nil {
		return err
	}
	return d.sendData(pixels)
}

// writeFrame writes every page of pixels, top to bottom.
func (d *Dev) writeFrame(pixels []byte) error {
	w := d.rect.Dx()
	for p := 0; p < d.pages(); p++ {
		if err := d.writePage(p, pixels[p*w:(p+1)*w]); err != nil {
			return err
		}
	}
	copy(d.buffer, pixels)
	if d.next != nil {
		copy(d.next.Pix, pixels)
	}
	return nil
}

func (d *Dev) pages() int {
	return d.rect.Dy() / 8
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Write writes raw pixel data to the display in VerticalLSB format, every
// page in order. The data must be exactly d.rect.Dx() * d.rect.Dy() / 8 bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errHalted
	}
	if len(pixels) != len(d.buffer) {
		return 0, errBufferSize
	}
	if err := d.writeFrame(pixels); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Draw draws an image onto the display, sending only the pages that changed
// since the last frame.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errHalted
	}

	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	// Fast path: a full-size VerticalLSB is already in controller layout.
	var pix []byte
	if srcImg, ok := src.(*image1bit.VerticalLSB); ok && dst == d.rect && sp == (image.Point{}) && srcImg.Rect == d.rect {
		pix = srcImg.Pix
		if d.next != nil {
			copy(d.next.Pix, pix)
		}
	} else {
		if d.next == nil {
			d.next = image1bit.NewVerticalLSB(d.rect)
			copy(d.next.Pix, d.buffer)
		}
		draw.Draw(d.next, dst, src, sp, draw.Src)
		pix = d.next.Pix
	}

	w := d.rect.Dx()
	for _, p := range d.changedPages(pix) {
		page := pix[p*w : (p+1)*w]
		if err := d.writePage(p, page); err != nil {
			return err
		}
		copy(d.buffer[p*w:], page)
	}
	return nil
}

// changedPages returns the pages of pix that differ from the last frame.
func (d *Dev) changedPages(pix []byte) []int {
	w := d.rect.Dx()
	var pages []int
	for p := 0; p < d.pages(); p++ {
		if !bytes.Equal(d.buffer[p*w:(p+1)*w], pix[p*w:(p+1)*w]) {
			pages = append(pages, p)
		}
	}
	return pages
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	if d.halted {
		return errHalted
	}
	return d.sendCommands([]byte{cmdSetContrast, contrast})
}

// Invert inverts the display colors (black becomes white and vice versa).
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errHalted
	}
	mode := byte(cmdNormal)
	if invert {
		mode = cmdInverted
	}
	return d.sendCommand(mode)
}

// Halt turns the display off and removes panel power, VBAT before VDD.
// Both rails are released even when an earlier step fails; the returned
// error joins every failure.
// After calling Halt, the display will not respond to further commands
// until the device is re-initialized.
func (d *Dev) Halt() error {
	d.halted = true
	errOff := d.sendCommand(cmdDisplayOff)
	if errOff != nil {
		errOff = fmt.Errorf("ssd1306: display off: %w", errOff)
	}
	errVBAT := out(d.vbat, gpio.High, "VBAT")
	sleep(100 * time.Millisecond)
	return errors.Join(errOff, errVBAT, out(d.vdd, gpio.High, "VDD"))
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}
