// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package seqsim_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/db47h/seqsim"
	"github.com/db47h/seqsim/seqtest"
)

func TestRippleCounter(t *testing.T) {
	const width = 8
	c, err := seqsim.NewRippleCounter(width)
	require.NoError(t, err)
	require.Equal(t, uint64(0), c.Uint64())

	// count up to a value within the counter's range
	seqtest.Pulse(c, 100)
	v, err := seqsim.Value[uint64](c)
	require.NoError(t, err)
	require.Equal(t, uint64(100), v)

	// clear the counter
	c.Clear()
	v, err = seqsim.Value[uint64](c)
	require.NoError(t, err)
	require.Equal(t, uint64(0), v)

	// count past the counter's capacity: the value wraps around
	seqtest.Pulse(c, 300)
	v, err = seqsim.Value[uint64](c)
	require.NoError(t, err)
	require.Equal(t, uint64(300%(1<<width)), v)
}

func TestRippleCounter_every_count(t *testing.T) {
	c, err := seqsim.NewRippleCounter(4)
	require.NoError(t, err)

	// every intermediate value must appear in sequence, including across
	// the wraparound, and carries must ripple within a single update
	for i := 1; i <= 40; i++ {
		c.Update(true)
		require.Equal(t, uint64(i%16), c.Uint64(), "pulse %d", i)
		c.Update(false)
		require.Equal(t, uint64(i%16), c.Uint64(), "pulse %d (clock low)", i)
	}
}

func TestRippleCounter_widths(t *testing.T) {
	for _, width := range []int{1, 2, 3, 16, 64} {
		c, err := seqsim.NewRippleCounter(width)
		require.NoError(t, err, "width %d", width)
		require.Equal(t, width, c.Width())

		pulses := 10
		seqtest.Pulse(c, pulses)
		mod := uint64(pulses)
		if width < 4 {
			mod = uint64(pulses) % (1 << uint(width))
		}
		require.Equal(t, mod, c.Uint64(), "width %d", width)
	}
}

func TestRippleCounter_invalid_width(t *testing.T) {
	for _, width := range []int{0, -1, 65} {
		_, err := seqsim.NewRippleCounter(width)
		require.Error(t, err, "width %d", width)
	}
}

func TestRippleCounter_clear(t *testing.T) {
	c, err := seqsim.NewRippleCounter(8)
	require.NoError(t, err)

	seqtest.Pulse(c, 37)
	require.Equal(t, uint64(37), c.Uint64())

	c.Clear()
	require.Equal(t, uint64(0), c.Uint64())
	for i := 0; i < c.Width(); i++ {
		require.False(t, c.Bit(i), "bit %d", i)
	}

	// counting resumes normally after a clear
	seqtest.Pulse(c, 5)
	require.Equal(t, uint64(5), c.Uint64())
}

func TestValue_narrowing(t *testing.T) {
	c, err := seqsim.NewRippleCounter(8)
	require.NoError(t, err)
	seqtest.Pulse(c, 200)

	// wide enough targets succeed
	u8, err := seqsim.Value[uint8](c)
	require.NoError(t, err)
	require.Equal(t, uint8(200), u8)

	i32, err := seqsim.Value[int32](c)
	require.NoError(t, err)
	require.Equal(t, int32(200), i32)

	// 200 does not fit in an int8
	_, err = seqsim.Value[int8](c)
	require.Error(t, err)
	require.Equal(t, seqsim.ErrOverflow, errors.Cause(err))
}

func TestRippleCounter_bits(t *testing.T) {
	c, err := seqsim.NewRippleCounter(4)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		seqtest.Pulse(c, 1)
		var v uint64
		for b := 0; b < c.Width(); b++ {
			if c.Bit(b) {
				v |= 1 << uint(b)
			}
		}
		require.Equal(t, c.Uint64(), v)
	}
}
