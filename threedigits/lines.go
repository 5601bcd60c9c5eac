// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package threedigits

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"

	"github.com/GermanBionicSystems/segmux/sevenseg"
)

// Digits is the number of digits on the display.
const Digits = 3

// Pattern is the state of the ten display lines while one digit is lit.
// Lines 0-2 are the digit sinks, lines 3-9 the segments g to a.
type Pattern uint16

// Buffer holds one Pattern per digit, left to right.
type Buffer [Digits]Pattern

const (
	lineCount = 10

	sinkLines    Pattern = 0b0000000111
	segmentLines Pattern = 0b1111111000
	allLines             = sinkLines | segmentLines
)

var sinkLine = [Digits]Pattern{
	0b0000000100, // digit 3
	0b0000000010, // digit 2
	0b0000000001, // digit 1
}

var segmentLine = [sevenseg.Count]Pattern{
	0b1000000000, // a
	0b0100000000, // b
	0b0010000000, // c
	0b0001000000, // d
	0b0000100000, // e
	0b0000010000, // f
	0b0000001000, // g
}

// Position returns the digit position p lights, if exactly one sink line is
// set.
func (p Pattern) Position() (int, bool) {
	switch p & sinkLines {
	case sinkLine[0]:
		return 0, true
	case sinkLine[1]:
		return 1, true
	case sinkLine[2]:
		return 2, true
	}
	return 0, false
}

// Segments returns the segments p drives.
func (p Pattern) Segments() sevenseg.Mask {
	var m sevenseg.Mask
	for i, l := range segmentLine {
		if p&l != 0 {
			m |= 1 << i
		}
	}
	return m
}

func (p Pattern) String() string {
	if pos, ok := p.Position(); ok {
		return fmt.Sprintf("%d:%s", pos, p.Segments())
	}
	return fmt.Sprintf("0b%010b", uint16(p))
}

func segmentPattern(m sevenseg.Mask) Pattern {
	var p Pattern
	for i, l := range segmentLine {
		if m&(1<<i) != 0 {
			p |= l
		}
	}
	return p
}

// Layout selects where the ten display lines sit within the output bank.
type Layout uint8

const (
	// Pins2To11 uses bank lines 2 to 11.
	Pins2To11 Layout = iota
	// Pins4To13 uses bank lines 4 to 13.
	Pins4To13
)

func (l Layout) offset() (uint, bool) {
	switch l {
	case Pins2To11:
		return 2, true
	case Pins4To13:
		return 4, true
	}
	return 0, false
}

// Width returns the number of bank lines needed for l, or 0 when l isn't
// supported.
func (l Layout) Width() int {
	o, ok := l.offset()
	if !ok {
		return 0
	}
	return int(o) + lineCount
}

// Bank converts p to bank line values.
func (l Layout) Bank(p Pattern) gpio.GPIOValue {
	o, _ := l.offset()
	return gpio.GPIOValue(p&allLines) << o
}

// FromBank extracts the display lines from bank line values.
func (l Layout) FromBank(v gpio.GPIOValue) Pattern {
	o, _ := l.offset()
	return Pattern(v>>o) & allLines
}

func (l Layout) String() string {
	switch l {
	case Pins2To11:
		return "Pins2To11"
	case Pins4To13:
		return "Pins4To13"
	}
	return fmt.Sprintf("Layout(%d)", uint8(l))
}
