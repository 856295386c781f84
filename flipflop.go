// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package seqsim

import "github.com/db47h/seqsim/gate"

// A DFlipflop is a rising edge triggered D flip-flop built from a
// master-slave pair of D latches.
//
// The master latch is enabled exactly while the clock is low and the slave
// exactly while it is high. Because the two enables are mutually exclusive,
// the pair is never transparent end to end: the master tracks d while the
// clock is low, and the slave copies the master's settled output while the
// clock is high. Q therefore changes only when the clk argument goes from
// false to true across two consecutive Update calls, taking the value d had
// just before the transition.
//
type DFlipflop struct {
	master DLatch
	slave  DLatch
}

// NewDFlipflop returns a D flip-flop in the reset state (Q low), settled
// with the clock held low.
//
func NewDFlipflop() *DFlipflop {
	ff := &DFlipflop{}
	ff.Update(false, false)
	return ff
}

// Update applies a new clock and data input.
//
// Repeated calls with an unchanged clk value are idempotent with respect to
// Q: the edge is defined by the low to high transition of clk across calls,
// not by the number of calls.
//
func (ff *DFlipflop) Update(clk, d bool) {
	ff.master.Set(gate.Not(clk), d)
	ff.slave.Set(clk, ff.master.Q())
}

// Clear forces the flip-flop back to the reset state, then re-settles it
// with the clock held low so that a following rising edge behaves like the
// first edge after construction.
//
func (ff *DFlipflop) Clear() {
	ff.master.Clear()
	ff.slave.Clear()
	ff.Update(false, false)
}

// Q returns the flip-flop output.
//
func (ff *DFlipflop) Q() bool { return ff.slave.Q() }

// Qn returns the complemented flip-flop output.
//
func (ff *DFlipflop) Qn() bool { return ff.slave.Qn() }

// An SRFlipflop is a rising edge triggered set/reset flip-flop built from a
// master-slave pair of gated SR latches.
//
// The master samples s and r while the clock is low; on the rising edge the
// slave's set and reset inputs are driven from the master's complementary
// outputs, moving the slave toward whatever state the master settled into.
// Driving s and r high together inherits the unspecified behavior of
// GatedSRLatch.
//
type SRFlipflop struct {
	master GatedSRLatch
	slave  GatedSRLatch
}

// NewSRFlipflop returns an SR flip-flop in the reset state (Q low), settled
// with the clock held low.
//
func NewSRFlipflop() *SRFlipflop {
	ff := &SRFlipflop{}
	ff.Update(false, false, false)
	return ff
}

// Update applies a new clock and set/reset inputs.
//
func (ff *SRFlipflop) Update(clk, s, r bool) {
	ff.master.Set(s, gate.Not(clk), r)
	ff.slave.Set(ff.master.Q(), clk, ff.master.Qn())
}

// Clear forces the flip-flop back to the reset state, then re-settles it
// with the clock held low.
//
func (ff *SRFlipflop) Clear() {
	ff.master.Clear()
	ff.slave.Clear()
	ff.Update(false, false, false)
}

// Q returns the flip-flop output.
//
func (ff *SRFlipflop) Q() bool { return ff.slave.Q() }

// Qn returns the complemented flip-flop output.
//
func (ff *SRFlipflop) Qn() bool { return ff.slave.Qn() }

// A JKFlipflop is a rising edge triggered JK flip-flop built from an SR
// flip-flop with feedback.
//
// Its set and reset inputs are derived on every update from a snapshot of
// the current outputs: s = j && Qn, r = k && Q. Since Q and Qn are always
// complementary, s and r can never be high together, which eliminates the
// SR forbidden state and turns the j=k=true case into a toggle.
//
type JKFlipflop struct {
	sr SRFlipflop
}

// NewJKFlipflop returns a JK flip-flop in the reset state (Q low), settled
// with the clock held low.
//
func NewJKFlipflop() *JKFlipflop {
	ff := &JKFlipflop{}
	ff.sr.Update(false, false, false)
	return ff
}

// Update applies a new clock and j/k inputs.
//
//	j=false, k=false: hold
//	j=true,  k=false: set
//	j=false, k=true:  reset
//	j=true,  k=true:  toggle on each rising edge
//
func (ff *JKFlipflop) Update(clk, j, k bool) {
	s := gate.And(j, ff.sr.Qn())
	r := gate.And(k, ff.sr.Q())
	ff.sr.Update(clk, s, r)
}

// Clear forces the flip-flop back to the reset state.
//
func (ff *JKFlipflop) Clear() {
	ff.sr.Clear()
}

// Q returns the flip-flop output.
//
func (ff *JKFlipflop) Q() bool { return ff.sr.Q() }

// Qn returns the complemented flip-flop output.
//
func (ff *JKFlipflop) Qn() bool { return ff.sr.Qn() }

// A TFlipflop is a rising edge triggered toggle flip-flop: the single-bit
// form of the toggle wiring used by the ripple counter stages.
//
// While t is true, Q flips on each rising edge; while t is false, Q holds.
//
type TFlipflop struct {
	d DFlipflop
}

// NewTFlipflop returns a T flip-flop in the reset state (Q low), settled
// with the clock held low.
//
func NewTFlipflop() *TFlipflop {
	ff := &TFlipflop{}
	ff.d.Update(false, false)
	return ff
}

// Update applies a new clock and toggle input.
//
func (ff *TFlipflop) Update(clk, t bool) {
	ff.d.Update(clk, gate.Xor(t, ff.d.Q()))
}

// Clear forces the flip-flop back to the reset state.
//
func (ff *TFlipflop) Clear() {
	ff.d.Clear()
}

// Q returns the flip-flop output.
//
func (ff *TFlipflop) Q() bool { return ff.d.Q() }

// Qn returns the complemented flip-flop output.
//
func (ff *TFlipflop) Qn() bool { return ff.d.Qn() }
