// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package threedigits

import (
	"fmt"

	"github.com/GermanBionicSystems/segmux/sevenseg"
)

// Orientation is how the display is mounted.
type Orientation uint8

const (
	// Normal has the connector on top.
	Normal Orientation = iota
	// Rotated180 has the connector at the bottom. Both the segments of each
	// digit and the order of the digits are flipped.
	Rotated180
)

func (o Orientation) valid() bool {
	return o == Normal || o == Rotated180
}

func (o Orientation) String() string {
	switch o {
	case Normal:
		return "Normal"
	case Rotated180:
		return "Rotated180"
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}

// encodeText converts up to Digits leading characters of text, left
// aligned. It returns false for an empty text, which must leave the display
// untouched.
func encodeText(t *sevenseg.Table, text string, o Orientation) (Buffer, bool) {
	if len(text) == 0 {
		return Buffer{}, false
	}
	var masks [Digits]sevenseg.Mask
	i := 0
	for _, r := range text {
		if i == Digits {
			break
		}
		masks[i] = t.Lookup(r)
		i++
	}
	return encodeSegments(masks, o), true
}

// encodeSegments converts raw masks, left to right. Rotated180 reads the
// masks in reverse and turns each one upside down; doing only one of the
// two garbles the display.
func encodeSegments(masks [Digits]sevenseg.Mask, o Orientation) Buffer {
	var b Buffer
	for pos := range Digits {
		m := masks[pos]
		if o == Rotated180 {
			m = sevenseg.Rotate(masks[Digits-1-pos])
		}
		b[pos] = segmentPattern(m) | sinkLine[pos]
	}
	return b
}

// blank is what the display shows before anything is published.
func blank() Buffer {
	var b Buffer
	for pos := range Digits {
		b[pos] = sinkLine[pos]
	}
	return b
}
