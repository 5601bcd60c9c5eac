// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package threedigits_test

import (
	"fmt"
	"log"
	"time"

	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/segmux/gpiogroup"
	"github.com/GermanBionicSystems/segmux/sevenseg"
	"github.com/GermanBionicSystems/segmux/threedigits"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// The display sits on GPIO2 to GPIO11, the first two lines of the bank
	// are skipped by Pins2To11.
	names := make([]string, 12)
	for ix := range names {
		names[ix] = fmt.Sprintf("GPIO%d", ix)
	}
	bank, err := gpiogroup.ByNames(names...)
	if err != nil {
		log.Fatal(err)
	}

	opts := threedigits.DefaultOpts
	opts.Rate = threedigits.RateFast
	dev, err := threedigits.New(bank, &opts)
	if err != nil {
		log.Fatal(err)
	}
	defer dev.Halt()

	// Count up in hexadecimal.
	for i := range 0x100 {
		dev.SetDigits(fmt.Sprintf("%02x*", i))
		time.Sleep(50 * time.Millisecond)
	}

	// A spinning segment.
	for i := range 6 * 10 {
		m := sevenseg.Mask(1 << (i % 6))
		dev.SetSegments([threedigits.Digits]sevenseg.Mask{m, m, m})
		time.Sleep(80 * time.Millisecond)
	}
}

func Example_rotated() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	bank, err := gpiogroup.ByNames(
		"GPIO0", "GPIO1", "GPIO2", "GPIO3", "GPIO4", "GPIO5", "GPIO6",
		"GPIO7", "GPIO8", "GPIO9", "GPIO10", "GPIO11", "GPIO12", "GPIO13")
	if err != nil {
		log.Fatal(err)
	}
	dev, err := threedigits.New(bank, &threedigits.Opts{
		Rate:        threedigits.RateNormal,
		Orientation: threedigits.Rotated180,
		Layout:      threedigits.Pins4To13,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer dev.Halt()

	dev.SetDigits("12*")
	time.Sleep(2 * time.Second)

	// Only the next update is flipped back.
	dev.SetOrientation(threedigits.Normal)
	dev.SetDigits("12*")
	time.Sleep(2 * time.Second)
}
