// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package gpiogroup bundles independent GPIO output pins into a gpio.Group,
// so drivers written against a bank of lines can run on any set of pins
// the host exposes.
//
// Unlike a port expander the pins are written one at a time, in group
// order.
package gpiogroup

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/pin"
)

var (
	ErrUnknownPin  = errors.New("gpiogroup: unknown pin")
	ErrTooManyPins = errors.New("gpiogroup: too many pins")
)

// maxPins is the width of gpio.GPIOValue.
const maxPins = 64

// Group is a gpio.Group made of individual output pins. Bit n of the values
// passed to Out and Read is the pin at offset n.
type Group struct {
	pins        []gpio.PinOut
	defaultMask gpio.GPIOValue
}

// New returns a Group of pins. At most 64 pins can be grouped.
func New(pins ...gpio.PinOut) (*Group, error) {
	if len(pins) > maxPins {
		return nil, fmt.Errorf("%w: got %d, at most %d", ErrTooManyPins, len(pins), maxPins)
	}
	g := &Group{pins: pins}
	if len(pins) == maxPins {
		g.defaultMask = ^gpio.GPIOValue(0)
	} else {
		g.defaultMask = gpio.GPIOValue(1)<<len(pins) - 1
	}
	return g, nil
}

// ByNames looks the pins up in gpioreg and groups them in the order given.
// host.Init() must have been called. Like New, it accepts at most 64 names.
func ByNames(names ...string) (*Group, error) {
	pins := make([]gpio.PinOut, len(names))
	for ix, name := range names {
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPin, name)
		}
		pins[ix] = p
	}
	return New(pins...)
}

// Pins returns the pins of the group.
func (g *Group) Pins() []pin.Pin {
	result := make([]pin.Pin, len(g.pins))
	for ix, p := range g.pins {
		result[ix] = p
	}
	return result
}

// ByOffset returns the pin at offset, or nil.
func (g *Group) ByOffset(offset int) pin.Pin {
	if offset < 0 || offset >= len(g.pins) {
		return nil
	}
	return g.pins[offset]
}

// ByName returns the pin named name, or nil.
func (g *Group) ByName(name string) pin.Pin {
	for _, p := range g.pins {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// ByNumber returns the pin with the GPIO number, or nil.
func (g *Group) ByNumber(number int) pin.Pin {
	for _, p := range g.pins {
		if p.Number() == number {
			return p
		}
	}
	return nil
}

// Out writes value to the pins selected by mask. A mask of 0 selects all
// pins. It stops at the first pin that fails.
func (g *Group) Out(value, mask gpio.GPIOValue) error {
	if mask == 0 {
		mask = g.defaultMask
	} else {
		mask &= g.defaultMask
	}
	for ix, p := range g.pins {
		bit := gpio.GPIOValue(1) << ix
		if mask&bit == 0 {
			continue
		}
		if err := p.Out(gpio.Level(value&bit != 0)); err != nil {
			return fmt.Errorf("gpiogroup: %s: %w", p, err)
		}
	}
	return nil
}

// Read returns the level of the pins selected by mask. It fails with
// gpio.ErrGroupFeatureNotImplemented if one of them can't be read.
func (g *Group) Read(mask gpio.GPIOValue) (gpio.GPIOValue, error) {
	if mask == 0 {
		mask = g.defaultMask
	}
	var result gpio.GPIOValue
	for ix, p := range g.pins {
		bit := gpio.GPIOValue(1) << ix
		if mask&bit == 0 {
			continue
		}
		in, ok := p.(gpio.PinIn)
		if !ok {
			return 0, fmt.Errorf("gpiogroup: reading %s: %w", p, gpio.ErrGroupFeatureNotImplemented)
		}
		if in.Read() {
			result |= bit
		}
	}
	return result, nil
}

// WaitForEdge is not available, the pins are outputs.
func (g *Group) WaitForEdge(timeout time.Duration) (int, gpio.Edge, error) {
	return -1, gpio.NoEdge, gpio.ErrGroupFeatureNotImplemented
}

// Halt releases the pins. The group can't be used afterwards.
func (g *Group) Halt() error {
	g.pins = nil
	g.defaultMask = 0
	return nil
}

func (g *Group) String() string {
	names := make([]string, len(g.pins))
	for ix, p := range g.pins {
		names[ix] = p.Name()
	}
	return "Group[" + strings.Join(names, " ") + "]"
}

var _ gpio.Group = &Group{}
