// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package threedigits

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/physic"
)

// Rate is the refresh rate of the display.
//
// Faster rates reduce the visible flickering but spend more CPU time on
// refreshing. Each digit is lit once per Frequency() period.
type Rate uint8

const (
	_ Rate = iota
	// RateUselessSlow is ~20 Hz, with visible and annoying flickering.
	RateUselessSlow
	// RateVerySlow is ~81 Hz, flickering is invisible for most people.
	RateVerySlow
	// RateSlow is ~163 Hz.
	RateSlow
	// RateNormal is ~325 Hz, a reasonable compromise.
	RateNormal
	// RateFast is ~650 Hz.
	RateFast
	// RateFaster is ~2.6 kHz.
	RateFaster
	// RateVeryFast is ~20 kHz.
	RateVeryFast
	// RateInsane is ~41 kHz. Only use it when the host does nothing else.
	RateInsane
)

// The periods are the overflows of an 8 bit counter at 16 MHz with the
// prescalers 1024 down to 1. RateInsane counts to 0x80 only.
var ratePeriods = [...]time.Duration{
	RateUselessSlow: 16384 * time.Microsecond,
	RateVerySlow:    4096 * time.Microsecond,
	RateSlow:        2048 * time.Microsecond,
	RateNormal:      1024 * time.Microsecond,
	RateFast:        512 * time.Microsecond,
	RateFaster:      128 * time.Microsecond,
	RateVeryFast:    16 * time.Microsecond,
	RateInsane:      8062 * time.Nanosecond,
}

var rateNames = [...]string{
	RateUselessSlow: "RateUselessSlow",
	RateVerySlow:    "RateVerySlow",
	RateSlow:        "RateSlow",
	RateNormal:      "RateNormal",
	RateFast:        "RateFast",
	RateFaster:      "RateFaster",
	RateVeryFast:    "RateVeryFast",
	RateInsane:      "RateInsane",
}

func (r Rate) valid() bool {
	return r > 0 && int(r) < len(ratePeriods)
}

// Period returns the time one digit stays lit, or 0 for an unsupported
// rate.
func (r Rate) Period() time.Duration {
	if !r.valid() {
		return 0
	}
	return ratePeriods[r]
}

// Frequency returns how often the whole display is refreshed.
func (r Rate) Frequency() physic.Frequency {
	if !r.valid() {
		return 0
	}
	return physic.PeriodToFrequency(Digits * ratePeriods[r])
}

func (r Rate) String() string {
	if !r.valid() {
		return fmt.Sprintf("Rate(%d)", uint8(r))
	}
	return rateNames[r]
}
