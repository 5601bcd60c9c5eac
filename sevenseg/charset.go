// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package sevenseg

// Table maps ASCII characters to masks. Characters without an entry, and
// anything outside ASCII, resolve to Blank.
type Table [128]Mask

// Lookup returns the mask for r. It never fails.
func (t *Table) Lookup(r rune) Mask {
	if r < 0 || int(r) >= len(t) {
		return Blank
	}
	return t[r] & All
}

// With returns a copy of t with r mapped to m. Runes outside ASCII are
// silently dropped since Lookup can't return them anyway.
func (t Table) With(r rune, m Mask) Table {
	if r >= 0 && int(r) < len(t) {
		t[r] = m & All
	}
	return t
}

// Default covers the decimal digits, hexadecimal letters in both cases and
// a handful of punctuation marks.
var Default = func() Table {
	var t Table
	for c, m := range map[rune]Mask{
		'0':  0x3f,
		'1':  0x06,
		'2':  0x5b,
		'3':  0x4f,
		'4':  0x66,
		'5':  0x6d,
		'6':  0x7d,
		'7':  0x07,
		'8':  0x7f,
		'9':  0x6f,
		'a':  0x77,
		'b':  0x7c,
		'c':  0x39,
		'd':  0x5e,
		'e':  0x79,
		'f':  0x71,
		'_':  0x08,
		'-':  0x40,
		'*':  0x63, // degree
		'\'': 0x20,
		'"':  0x0a,
		' ':  0x00,
	} {
		t[c] = m
		if c >= 'a' && c <= 'f' {
			t[c-'a'+'A'] = m
		}
	}
	return t
}()
