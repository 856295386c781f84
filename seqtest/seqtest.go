// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package seqtest provides utility functions for testing logic components.
//
package seqtest

import (
	"strconv"
	"strings"
	"testing"
)

// A Bit is any component exposing complementary Q/Qn outputs.
//
type Bit interface {
	Q() bool
	Qn() bool
}

// CheckComplement fails the test if b's outputs are not complementary.
//
func CheckComplement(t *testing.T, b Bit) {
	t.Helper()
	if b.Qn() == b.Q() {
		t.Errorf("complement invariant violated: Q=%v, Qn=%v", b.Q(), b.Qn())
	}
}

// A Clocked is any component driven by a bare clock input.
//
type Clocked interface {
	Update(clk bool)
}

// Pulse drives n complete clock pulses into c, each pulse being one rising
// edge followed by one falling edge.
//
func Pulse(c Clocked, n int) {
	for i := 0; i < n; i++ {
		c.Update(true)
		c.Update(false)
	}
}

// CompareGate takes two boolean functions of the given input count and
// compares their outputs over all input combinations. Both functions must
// be pure; the comparison is exhaustive, so the input count should stay
// reasonably small.
//
func CompareGate(t *testing.T, inputs int, expected, got func(...bool) bool) {
	t.Helper()
	in := make([]bool, inputs)
	for i := 0; i < 1<<uint(inputs); i++ {
		for bit := range in {
			in[len(in)-bit-1] = i&(1<<uint(bit)) != 0
		}
		if e, g := expected(in...), got(in...); e != g {
			t.Errorf("%s: expected %v, got %v", inputString(in), e, g)
		}
	}
}

func inputString(in []bool) string {
	var b strings.Builder
	for i, v := range in {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString("in[")
		b.WriteString(strconv.Itoa(i))
		b.WriteString("]=")
		if v {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	}
	return b.String()
}
