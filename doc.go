// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package segmux is a container for the multiplexed 7-segment display
// driver and its helpers.
//
// The driver lives in threedigits. sevenseg holds the segment encoding,
// gpiogroup turns loose GPIO pins into a single output bank and screen7seg
// emulates the display on a terminal.
package segmux
