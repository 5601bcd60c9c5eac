// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package threedigits drives a bare 3 digit 7-segment LED display, like the
// Boldport #28 "3x7", straight from GPIO lines.
//
// The display has no controller. Seven segment lines are shared by all
// digits and each digit has its own sink line, so only one digit can be lit
// at a time. Dev lights the digits one after another from a periodic
// refresh, fast enough for all three to look lit at once.
//
// # Wiring
//
// The display takes ten consecutive lines of an output bank. With Pins2To11
// they are:
//
//	| Bank line | Display      |
//	| --------- | ------------ |
//	| 2         | Digit 1 sink |
//	| 3         | Digit 2 sink |
//	| 4         | Digit 3 sink |
//	| 5         | Segment g    |
//	| 6         | Segment f    |
//	| 7         | Segment e    |
//	| 8         | Segment d    |
//	| 9         | Segment c    |
//	| 10        | Segment b    |
//	| 11        | Segment a    |
//
// Pins4To13 shifts everything up by two. Digit 3 is the leftmost digit.
//
// Any gpio.Group can be used as the bank. gpiogroup builds one from
// individual GPIO pins.
package threedigits
