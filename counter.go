// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package seqsim

import (
	"github.com/pkg/errors"
)

// ErrOverflow is returned by Value when the counter or register value does
// not fit in the requested integer type.
var ErrOverflow = errors.New("value out of range for target type")

// An Integer is any built-in integer type that Value can convert a counter
// value into.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// A RippleCounter is an asynchronous counter built from a chain of D
// flip-flops in toggle configuration.
//
// Bit 0 (least significant) is clocked by the external clock; every further
// bit is clocked by its predecessor's complemented output. Each bit's data
// input is its own complemented output, so every rising edge a stage sees
// flips its stored bit. Within one Update call the stages are updated in
// ascending index order, each reading the already-updated state of its
// predecessor: a carry ripples through all affected stages in the same
// call, as it does through the gate delays of a physical ripple counter.
//
// The counter wraps modulo 2^width; wraparound is normal behavior, not an
// error.
//
type RippleCounter struct {
	flipflops []DFlipflop
}

// NewRippleCounter returns a counter of the given width, cleared to zero.
// The width is fixed for the lifetime of the counter and must be between 1
// and 64.
//
func NewRippleCounter(width int) (*RippleCounter, error) {
	if width < 1 || width > 64 {
		return nil, errors.Errorf("invalid counter width %d: must be between 1 and 64", width)
	}
	c := &RippleCounter{flipflops: make([]DFlipflop, width)}
	c.init()
	return c, nil
}

// init settles the chain with the clock held low. Presenting a high clock
// and a high data input simultaneously at construction would race the
// master and slave latches through an ambiguous first transition.
func (c *RippleCounter) init() {
	c.Update(false)
}

// Update applies a new clock input and ripples any resulting carry through
// the chain.
//
func (c *RippleCounter) Update(clk bool) {
	// feed the external clock into the LSB stage
	c.flipflops[0].Update(clk, c.flipflops[0].Qn())

	// chain each stage's inverted output into the next stage's clock
	for i := 1; i < len(c.flipflops); i++ {
		c.flipflops[i].Update(c.flipflops[i-1].Qn(), c.flipflops[i].Qn())
	}
}

// Clear resets the counter to zero regardless of its current state.
//
func (c *RippleCounter) Clear() {
	for i := range c.flipflops {
		c.flipflops[i].Clear()
	}
	c.init()
}

// Width returns the number of bits in the counter.
//
func (c *RippleCounter) Width() int { return len(c.flipflops) }

// Bit returns the value of bit i, with bit 0 the least significant.
//
func (c *RippleCounter) Bit(i int) bool { return c.flipflops[i].Q() }

// Uint64 returns the counter value.
//
func (c *RippleCounter) Uint64() uint64 {
	var v uint64
	for i := range c.flipflops {
		if c.flipflops[i].Q() {
			v |= 1 << uint(i)
		}
	}
	return v
}

// Value returns the counter value converted to the requested integer type.
//
// The conversion fails with ErrOverflow if the value cannot be represented
// in T; it is never silently truncated. This cannot happen as long as T is
// wide enough to hold all of the counter's bits.
//
func Value[T Integer](c *RippleCounter) (T, error) {
	v := c.Uint64()
	t := T(v)
	if t < 0 || uint64(t) != v {
		return 0, errors.Wrapf(ErrOverflow, "%d-bit counter value %d", len(c.flipflops), v)
	}
	return t, nil
}
