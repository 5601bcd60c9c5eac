// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sevenseg

import (
	"testing"
)

func TestRotateInvolution(t *testing.T) {
	for m := Mask(0); m <= All; m++ {
		if got := Rotate(Rotate(m)); got != m {
			t.Fatalf("Rotate(Rotate(0x%02x)) = 0x%02x", uint8(m), uint8(got))
		}
	}
}

func TestRotateSegments(t *testing.T) {
	for _, test := range []struct {
		in, want Mask
	}{
		{SegA, SegD},
		{SegB, SegE},
		{SegC, SegF},
		{SegG, SegG},
		{Blank, Blank},
		{All, All},
		// An upright '1' lights b and c, upside down it lights e and f.
		{0x06, SegE | SegF},
		// '0' is symmetric.
		{0x3f, 0x3f},
	} {
		if got := Rotate(test.in); got != test.want {
			t.Errorf("Rotate(%s) = %s, want %s", test.in, got, test.want)
		}
	}
}

func TestRotateIgnoresHighBit(t *testing.T) {
	if got := Rotate(0x80 | SegA); got != SegD {
		t.Errorf("got %s", got)
	}
}

func TestLookup(t *testing.T) {
	for _, test := range []struct {
		r    rune
		want Mask
	}{
		{'0', 0x3f},
		{'1', 0x06},
		{'8', 0x7f},
		{'a', 0x77},
		{'A', 0x77},
		{'F', 0x71},
		{'_', 0x08},
		{'*', 0x63},
		{' ', Blank},
		{'g', Blank},
		{'~', Blank},
		{'€', Blank},
		{-1, Blank},
		{0, Blank},
	} {
		if got := Default.Lookup(test.r); got != test.want {
			t.Errorf("Lookup(%q) = %s, want %s", test.r, got, test.want)
		}
	}
}

func TestLookupTotal(t *testing.T) {
	for r := rune(-5); r < 0x300; r++ {
		if m := Default.Lookup(r); m&^All != 0 {
			t.Fatalf("Lookup(%q) = 0x%02x has bits outside the digit", r, uint8(m))
		}
	}
}

func TestWith(t *testing.T) {
	custom := Default.With('h', SegB|SegC|SegE|SegF|SegG).With('é', All)
	if got := custom.Lookup('h'); got != 0x76 {
		t.Errorf("custom 'h' = %s", got)
	}
	if got := Default.Lookup('h'); got != Blank {
		t.Errorf("Default was modified: 'h' = %s", got)
	}
	if got := custom.Lookup('é'); got != Blank {
		t.Errorf("non-ASCII rune stored: %s", got)
	}
}

func TestMaskString(t *testing.T) {
	if s := Blank.String(); s != "blank" {
		t.Errorf("got %q", s)
	}
	if s := Mask(0x06).String(); s != "bc(0x06)" {
		t.Errorf("got %q", s)
	}
}
