// Package hub75 transmits RGB565 frames to a HUB75 LED matrix hanging off an
// SPI shift-register bridge. The bridge clocks whole frames and handles the
// row multiplexing itself; the host only streams pixel data and strobes the
// latch, so a full 64x32 frame at 30 fps stays well under 1 MHz of bus clock.
package hub75

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Opts holds the panel configuration.
type Opts struct {
	Width  int
	Height int
	// Brightness is the initial PWM duty, 0-255.
	Brightness uint8
	// Speed is the SPI clock. The default is conservative enough for long
	// ribbon cables.
	Speed physic.Frequency
}

// DefaultOpts matches a single 64x32 panel.
var DefaultOpts = Opts{
	Width:      64,
	Height:     32,
	Brightness: 160,
	Speed:      4 * physic.MegaHertz,
}

// Dev is an open connection to the panel bridge.
type Dev struct {
	c      spi.Conn
	lat    gpio.PinOut
	oe     gpio.PinOut
	width  int
	height int
	buf    []byte
}

// New opens the panel on port. lat strobes the bridge latch after each frame;
// oe gates the panel output and may be nil when the bridge drives it.
func New(port spi.Port, lat, oe gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("hub75: invalid panel size %dx%d", opts.Width, opts.Height)
	}
	speed := opts.Speed
	if speed == 0 {
		speed = DefaultOpts.Speed
	}
	c, err := port.Connect(speed, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("hub75: %w", err)
	}
	d := &Dev{
		c:      c,
		lat:    lat,
		oe:     oe,
		width:  opts.Width,
		height: opts.Height,
		buf:    make([]byte, opts.Width*opts.Height*2),
	}
	if d.oe != nil {
		if err := d.oe.Out(gpio.Low); err != nil {
			return nil, fmt.Errorf("hub75: enabling output: %w", err)
		}
	}
	if err := d.SetBrightness(opts.Brightness); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("hub75.Dev{%dx%d}", d.width, d.height)
}

// Size returns the panel dimensions in pixels.
func (d *Dev) Size() (int, int) {
	return d.width, d.height
}

// Flush sends one RGB565 frame, row major, and latches it. The slice must
// hold exactly width*height pixels.
func (d *Dev) Flush(pix []uint16) error {
	if len(pix) != d.width*d.height {
		return fmt.Errorf("hub75: frame is %d pixels, want %d", len(pix), d.width*d.height)
	}
	for i, p := range pix {
		d.buf[2*i] = byte(p >> 8)
		d.buf[2*i+1] = byte(p)
	}
	if err := d.c.Tx(d.buf, nil); err != nil {
		return fmt.Errorf("hub75: frame tx: %w", err)
	}
	return d.latch()
}

// latch pulses LAT so the bridge swaps its shadow buffer onto the panel.
func (d *Dev) latch() error {
	if d.lat == nil {
		return errors.New("hub75: no latch pin configured")
	}
	if err := d.lat.Out(gpio.High); err != nil {
		return err
	}
	return d.lat.Out(gpio.Low)
}

// SetBrightness sets the global PWM duty, 0-255. The bridge takes it as a
// one-register command frame: 0xFF escape, register 0x01, value.
func (d *Dev) SetBrightness(b uint8) error {
	cmd := []byte{0xFF, 0x01, b}
	if err := d.c.Tx(cmd, nil); err != nil {
		return fmt.Errorf("hub75: brightness tx: %w", err)
	}
	return nil
}

// Halt blanks the panel output.
func (d *Dev) Halt() error {
	if d.oe != nil {
		return d.oe.Out(gpio.High)
	}
	for i := range d.buf {
		d.buf[i] = 0
	}
	if err := d.c.Tx(d.buf, nil); err != nil {
		return err
	}
	return d.latch()
}
