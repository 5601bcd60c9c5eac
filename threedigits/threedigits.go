// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package threedigits

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/jonboulle/clockwork"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/pin"

	"github.com/GermanBionicSystems/segmux/sevenseg"
)

var (
	ErrUnsupportedRate        = errors.New("unsupported refresh rate")
	ErrUnsupportedLayout      = errors.New("unsupported pin layout")
	ErrUnsupportedOrientation = errors.New("unsupported orientation")
	ErrOutputsTooNarrow       = errors.New("output bank too narrow")
)

// Outputs is a bank of digital output lines. Out sets the lines selected by
// mask to the matching bits of value. Every gpio.Group is an Outputs.
type Outputs interface {
	Out(value, mask gpio.GPIOValue) error
}

// Opts holds the configuration of the display.
type Opts struct {
	Rate        Rate
	Orientation Orientation
	Layout      Layout

	// Table translates characters for SetDigits. nil selects
	// sevenseg.Default.
	Table *sevenseg.Table
	// Clock paces the refresh. nil selects the wall clock.
	Clock clockwork.Clock
	// Logger receives refresh failures. nil selects log.Default().
	Logger *log.Logger
}

// DefaultOpts is a display at RateNormal, connector on top, on bank lines
// 2 to 11.
var DefaultOpts = Opts{
	Rate:        RateNormal,
	Orientation: Normal,
	Layout:      Pins2To11,
}

// Dev is a multiplexed 3 digit display.
type Dev struct {
	out    Outputs
	rate   Rate
	layout Layout
	table  sevenseg.Table
	logger *log.Logger

	orientation atomic.Uint32

	// gate stands in for masking the refresh interrupt. It guards buf.
	gate sync.Mutex
	buf  Buffer

	// Owned by the refresh goroutine.
	cursor  int
	failing bool

	ticker clockwork.Ticker
	halt   sync.Once
	stop   chan struct{}
	done   chan struct{}
}

// New configures the lines of out, turns them all off and starts the
// refresh. The display stays blank until the first SetDigits or
// SetSegments.
//
// A nil opts selects DefaultOpts.
func New(out Outputs, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	d, err := newDev(out, opts)
	if err != nil {
		return nil, err
	}
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	d.ticker = clock.NewTicker(d.rate.Period())
	go d.run()
	return d, nil
}

// newDev validates opts and resets the lines, without starting the refresh.
func newDev(out Outputs, opts *Opts) (*Dev, error) {
	if !opts.Rate.valid() {
		return nil, fmt.Errorf("threedigits: %w: %s", ErrUnsupportedRate, opts.Rate)
	}
	width := opts.Layout.Width()
	if width == 0 {
		return nil, fmt.Errorf("threedigits: %w: %s", ErrUnsupportedLayout, opts.Layout)
	}
	if !opts.Orientation.valid() {
		return nil, fmt.Errorf("threedigits: %w: %s", ErrUnsupportedOrientation, opts.Orientation)
	}
	if g, ok := out.(interface{ Pins() []pin.Pin }); ok {
		if n := len(g.Pins()); n < width {
			return nil, fmt.Errorf("threedigits: %w: %s needs %d lines, got %d", ErrOutputsTooNarrow, opts.Layout, width, n)
		}
	}
	d := &Dev{
		out:    out,
		rate:   opts.Rate,
		layout: opts.Layout,
		table:  sevenseg.Default,
		logger: opts.Logger,
		buf:    blank(),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	if opts.Table != nil {
		d.table = *opts.Table
	}
	if d.logger == nil {
		d.logger = log.Default()
	}
	d.orientation.Store(uint32(opts.Orientation))
	if err := d.write(0, allLines); err != nil {
		return nil, fmt.Errorf("threedigits: %w", err)
	}
	return d, nil
}

// SetOrientation changes how the next SetDigits or SetSegments call lays
// out its content. What is currently shown isn't flipped.
func (d *Dev) SetOrientation(o Orientation) {
	if !o.valid() {
		d.logger.Printf("threedigits: ignoring %s", o)
		return
	}
	d.orientation.Store(uint32(o))
}

// Orientation returns the current orientation.
func (d *Dev) Orientation() Orientation {
	return Orientation(d.orientation.Load())
}

// SetDigits shows text left aligned. Only the first three characters are
// used and missing ones are blank. Characters the table doesn't know are
// blank too.
//
// An empty text leaves the display as it is; use "   " to clear it.
func (d *Dev) SetDigits(text string) {
	b, ok := encodeText(&d.table, text, d.Orientation())
	if !ok {
		return
	}
	d.publish(&b)
}

// SetSegments shows raw segment masks, left to right. Bit 7 of each mask is
// ignored.
func (d *Dev) SetSegments(masks [Digits]sevenseg.Mask) {
	b := encodeSegments(masks, d.Orientation())
	d.publish(&b)
}

// Halt implements conn.Resource.
//
// It stops the refresh and turns all lines off. The Dev can't be restarted;
// create a new one instead.
func (d *Dev) Halt() error {
	d.halt.Do(func() { close(d.stop) })
	<-d.done
	if err := d.write(0, allLines); err != nil {
		return fmt.Errorf("threedigits: %w", err)
	}
	return nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("ThreeDigits{%s, %s}", d.layout, d.rate)
}

var _ conn.Resource = &Dev{}
var _ fmt.Stringer = &Dev{}
