// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package sevenseg describes the segments of a single 7-segment digit and
// translates characters into segment masks.
//
// Segments are numbered the usual way:
//
//	.-a-.   .-0-.
//	f   b   5   1
//	:-g-:   :-6-:
//	e   c   4   2
//	.-d-.   .-3-.
package sevenseg

import "fmt"

// Mask selects the lit segments of one digit. Bit n is segment n, bit 7 is
// not a segment and is ignored by the encoders.
type Mask uint8

const (
	SegA Mask = 1 << iota
	SegB
	SegC
	SegD
	SegE
	SegF
	SegG

	// Blank is a digit with all segments off.
	Blank Mask = 0
	// All is a digit with every segment on.
	All Mask = 0x7f
)

// Count is the number of segments in a digit.
const Count = 7

// rotated maps segment n to the segment occupying its place once the digit
// is turned upside down. It is its own inverse.
var rotated = [Count]uint8{3, 4, 5, 0, 1, 2, 6}

// Rotate returns the mask that shows m on a digit turned by 180 degrees.
func Rotate(m Mask) Mask {
	var r Mask
	for i := range Count {
		if m&(1<<i) != 0 {
			r |= 1 << rotated[i]
		}
	}
	return r
}

// Has reports whether segment n (0-6) is lit.
func (m Mask) Has(n int) bool {
	return n >= 0 && n < Count && m&(1<<n) != 0
}

func (m Mask) String() string {
	s := make([]byte, 0, Count)
	for i := range Count {
		if m.Has(i) {
			s = append(s, byte('a'+i))
		}
	}
	if len(s) == 0 {
		return "blank"
	}
	return fmt.Sprintf("%s(0x%02x)", s, uint8(m&All))
}
