// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package seqsim

import (
	"github.com/pkg/errors"
)

// A Register is a bank of D flip-flops sharing one clock, with a load
// enable.
//
// Each bit's data input goes through a two-way gate-level mux: while load
// is high, a rising clock edge samples the corresponding bit of the input
// word; while load is low, each bit recirculates its own output and the
// stored word is held across edges.
//
type Register struct {
	flipflops []DFlipflop
}

// NewRegister returns a register of the given width, cleared to zero. The
// width is fixed for the lifetime of the register and must be between 1
// and 64.
//
func NewRegister(width int) (*Register, error) {
	if width < 1 || width > 64 {
		return nil, errors.Errorf("invalid register width %d: must be between 1 and 64", width)
	}
	r := &Register{flipflops: make([]DFlipflop, width)}
	r.Update(false, false, 0)
	return r, nil
}

// Update applies a new clock, load enable and input word.
//
func (r *Register) Update(clk, load bool, in uint64) {
	for i := range r.flipflops {
		d := mux(r.flipflops[i].Q(), in&(1<<uint(i)) != 0, load)
		r.flipflops[i].Update(clk, d)
	}
}

// Clear resets the register to zero regardless of its current state.
//
func (r *Register) Clear() {
	for i := range r.flipflops {
		r.flipflops[i].Clear()
	}
	r.Update(false, false, 0)
}

// Width returns the number of bits in the register.
//
func (r *Register) Width() int { return len(r.flipflops) }

// Uint64 returns the stored word.
//
func (r *Register) Uint64() uint64 {
	var v uint64
	for i := range r.flipflops {
		if r.flipflops[i].Q() {
			v |= 1 << uint(i)
		}
	}
	return v
}
