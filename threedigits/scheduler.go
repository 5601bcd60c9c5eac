// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package threedigits

// publish replaces the buffer seen by tick. The gate is held for the copy
// only; everything else must happen before the call.
func (d *Dev) publish(b *Buffer) {
	d.gate.Lock()
	d.buf = *b
	d.gate.Unlock()
}

// tick lights the digit under the cursor and moves on to the next one. It
// runs on the refresh goroutine only and never stops the cycle, whatever
// the outputs report.
func (d *Dev) tick() {
	d.gate.Lock()
	p := d.buf[d.cursor]
	d.gate.Unlock()

	if err := d.drive(p); err != nil {
		if !d.failing {
			d.logger.Printf("threedigits: refresh failed: %v", err)
			d.failing = true
		}
	} else if d.failing {
		d.logger.Printf("threedigits: refresh recovered")
		d.failing = false
	}

	d.cursor++
	if d.cursor == Digits {
		d.cursor = 0
	}
}

// drive turns the lit digit off before the segments change, so the
// previous digit never flashes the new segments.
func (d *Dev) drive(p Pattern) error {
	if err := d.write(0, sinkLines); err != nil {
		return err
	}
	if err := d.write(p, segmentLines); err != nil {
		return err
	}
	return d.write(p, sinkLines)
}

func (d *Dev) write(value, mask Pattern) error {
	return d.out.Out(d.layout.Bank(value&mask), d.layout.Bank(mask))
}

// run is the refresh goroutine.
func (d *Dev) run() {
	defer close(d.done)
	for {
		select {
		case <-d.stop:
			d.ticker.Stop()
			return
		case <-d.ticker.Chan():
			d.tick()
		}
	}
}
