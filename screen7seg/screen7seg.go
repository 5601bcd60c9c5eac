// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen7seg emulates a multiplexed 3 digit 7-segment display on the
// terminal, using ANSI colors.
//
// Dev is a bank of output lines; hand it to threedigits.New instead of real
// GPIO pins. It keeps the last segments each digit was lit with, which is
// what the eye sees on the real display.
package screen7seg

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"

	"github.com/fogleman/gg"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"golang.org/x/image/font/basicfont"
	"periph.io/x/conn/v3/gpio"

	"github.com/GermanBionicSystems/segmux/sevenseg"
	"github.com/GermanBionicSystems/segmux/threedigits"
)

// Opts represents the options available for this emulator.
type Opts struct {
	// Layout must match the one given to threedigits.
	Layout threedigits.Layout
	// Lit and Unlit are the segment colors. Zero values select red on dark
	// grey.
	Lit, Unlit color.NRGBA
	Palette    *ansi256.Palette
	// W receives the drawing. nil selects stdout.
	W io.Writer

	_ struct{}
}

// Dev is a 3 digit display emulator that outputs to the console.
type Dev struct {
	w       io.Writer
	layout  threedigits.Layout
	palette ansi256.Palette
	lit     color.NRGBA
	unlit   color.NRGBA

	mu        sync.Mutex
	lines     gpio.GPIOValue
	frame     [threedigits.Digits]sevenseg.Mask
	refreshes [threedigits.Digits]int
	drawn     bool
	buf       bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	d := &Dev{
		w:       opts.W,
		layout:  opts.Layout,
		palette: *p,
		lit:     opts.Lit,
		unlit:   opts.Unlit,
	}
	if d.w == nil {
		d.w = colorable.NewColorableStdout()
	}
	if d.lit == (color.NRGBA{}) {
		d.lit = color.NRGBA{R: 255, A: 255}
	}
	if d.unlit == (color.NRGBA{}) {
		d.unlit = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
	}
	return d
}

func (d *Dev) String() string {
	return "Screen7Seg"
}

// Halt implements conn.Resource.
//
// It resets the terminal colors so the console is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\033[0m\n"))
	return err
}

// Out implements threedigits.Outputs.
//
// Once exactly one digit sink is on, the segments currently on are latched
// for that digit.
func (d *Dev) Out(value, mask gpio.GPIOValue) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lines = d.lines&^mask | value&mask
	p := d.layout.FromBank(d.lines)
	if pos, ok := p.Position(); ok {
		d.frame[pos] = p.Segments()
		d.refreshes[pos]++
	}
	return nil
}

// Frame returns the segments last seen on each digit, left to right as the
// digits are wired.
func (d *Dev) Frame() [threedigits.Digits]sevenseg.Mask {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frame
}

// Refreshes returns how many times each digit was lit.
func (d *Dev) Refreshes() [threedigits.Digits]int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.refreshes
}

// cells places the segments on a 3x5 grid per digit. -1 is background.
var cells = [5][3]int{
	{-1, 0, -1},
	{5, -1, 1},
	{-1, 6, -1},
	{4, -1, 2},
	{-1, 3, -1},
}

// Refresh draws the current frame, overwriting the previous drawing. It
// must not be called concurrently with itself.
func (d *Dev) Refresh() error {
	frame := d.Frame()
	d.buf.Reset()
	if d.drawn {
		// Back to the top of the previous drawing.
		_, _ = d.buf.WriteString("\033[5A")
	}
	for _, row := range cells {
		_, _ = d.buf.WriteString("\r\033[0m")
		for pos, m := range frame {
			if pos != 0 {
				_, _ = d.buf.WriteString("\033[0m  ")
			}
			for _, seg := range row {
				switch {
				case seg < 0:
					_, _ = d.buf.WriteString("\033[0m  ")
				case m.Has(seg):
					_, _ = io.WriteString(&d.buf, d.palette.Block(d.lit))
				default:
					_, _ = io.WriteString(&d.buf, d.palette.Block(d.unlit))
				}
			}
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	d.drawn = true
	_, err := d.buf.WriteTo(d.w)
	return err
}

// Geometry of one digit in the snapshot, in pixels.
const (
	digitW  = 40
	digitH  = 70
	thick   = 6
	margin  = 10
	caption = 20
)

// segmentRects are x, y, width and height of each segment within a digit.
var segmentRects = [sevenseg.Count][4]float64{
	{thick, 0, digitW - 2*thick, thick},                               // a
	{digitW - thick, thick, thick, digitH/2 - 3*thick/2},              // b
	{digitW - thick, digitH/2 + thick/2, thick, digitH/2 - 3*thick/2}, // c
	{thick, digitH - thick, digitW - 2*thick, thick},                  // d
	{0, digitH/2 + thick/2, thick, digitH/2 - 3*thick/2},              // e
	{0, thick, thick, digitH/2 - 3*thick/2},                           // f
	{thick, digitH/2 - thick/2, digitW - 2*thick, thick},              // g
}

// Image renders the current frame with a caption listing how often each
// digit was refreshed.
func (d *Dev) Image() image.Image {
	frame := d.Frame()
	refreshes := d.Refreshes()
	w := margin + threedigits.Digits*(digitW+margin)
	h := margin + digitH + margin + caption
	dc := gg.NewContext(w, h)
	dc.SetColor(color.Black)
	dc.Clear()
	for pos, m := range frame {
		ox := float64(margin + pos*(digitW+margin))
		oy := float64(margin)
		for seg, r := range segmentRects {
			if m.Has(seg) {
				dc.SetColor(d.lit)
			} else {
				dc.SetColor(d.unlit)
			}
			dc.DrawRectangle(ox+r[0], oy+r[1], r[2], r[3])
			dc.Fill()
		}
	}
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(color.White)
	label := fmt.Sprintf("refreshes: %d %d %d", refreshes[0], refreshes[1], refreshes[2])
	dc.DrawString(label, margin, float64(h-margin/2))
	return dc.Image()
}

var _ threedigits.Outputs = &Dev{}
