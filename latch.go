// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package seqsim

import "github.com/db47h/seqsim/gate"

// A GatedSRLatch is a level-sensitive set/reset latch with an enable input.
//
// While enable is high, s sets Q and r resets it; while enable is low the
// latch is opaque and holds its state. Driving s and r high simultaneously
// under enable is the forbidden input combination of physical SR latches:
// the result is deterministic for a given build of the latch but
// unspecified, and callers must not rely on it.
//
type GatedSRLatch struct {
	q bool
}

// NewGatedSRLatch returns a gated SR latch in the reset state (Q low).
//
func NewGatedSRLatch() *GatedSRLatch {
	return &GatedSRLatch{}
}

// Set applies the s and r inputs, gated by enable.
//
//	Function: Q = (s && enable) || (Q && !(r && enable))
//
func (l *GatedSRLatch) Set(s, enable, r bool) {
	gs := gate.And(s, enable)
	gr := gate.And(r, enable)
	l.q = gate.Or(gs, gate.And(l.q, gate.Not(gr)))
}

// Clear forces the latch back to the reset state regardless of enable.
//
func (l *GatedSRLatch) Clear() {
	l.q = false
}

// Q returns the latch output.
//
func (l *GatedSRLatch) Q() bool { return l.q }

// Qn returns the complemented latch output.
//
func (l *GatedSRLatch) Qn() bool { return gate.Not(l.q) }

// A DLatch is a level-sensitive data latch.
//
// While enable is high the latch is transparent: Q tracks the data input.
// While enable is low it is opaque: Q holds its last value.
//
type DLatch struct {
	sr GatedSRLatch
}

// NewDLatch returns a D latch in the reset state (Q low).
//
func NewDLatch() *DLatch {
	return &DLatch{}
}

// Set applies the data input d, gated by enable.
//
// The latch drives its internal SR pair with s=d, r=!d, so the forbidden
// SR input combination can never occur here.
//
func (l *DLatch) Set(enable, d bool) {
	l.sr.Set(d, enable, gate.Not(d))
}

// Clear forces the latch back to the reset state regardless of enable.
//
func (l *DLatch) Clear() {
	l.sr.Clear()
}

// Q returns the latch output.
//
func (l *DLatch) Q() bool { return l.sr.Q() }

// Qn returns the complemented latch output.
//
func (l *DLatch) Qn() bool { return l.sr.Qn() }
