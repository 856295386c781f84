// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package gate provides primitive boolean gates as pure functions.
//
// These are the leaf building blocks of the latch and flip-flop layers:
// stateless, total functions with standard truth-table semantics. The n-ary
// gates operate over their whole argument set; called with no arguments they
// return the identity element of the operation.
//
package gate

// Not returns the complement of a.
//
//	Function: out = !a
//
func Not(a bool) bool { return !a }

// And returns the conjunction of its inputs.
//
//	Function: out = in[0] && in[1] && ... && in[n-1]
//
func And(in ...bool) bool {
	for _, i := range in {
		if !i {
			return false
		}
	}
	return true
}

// Or returns the disjunction of its inputs.
//
//	Function: out = in[0] || in[1] || ... || in[n-1]
//
func Or(in ...bool) bool {
	for _, i := range in {
		if i {
			return true
		}
	}
	return false
}

// Xor returns the exclusive or of its inputs, i.e. whether an odd number of
// them is true.
//
//	Function: out = in[0] != in[1] != ... != in[n-1]
//
func Xor(in ...bool) bool {
	var out bool
	for _, i := range in {
		out = out != i
	}
	return out
}

// Nand returns the complement of And(in...).
//
func Nand(in ...bool) bool { return !And(in...) }

// Nor returns the complement of Or(in...).
//
func Nor(in ...bool) bool { return !Or(in...) }

// Xnor returns the complement of Xor(in...).
//
func Xnor(in ...bool) bool { return !Xor(in...) }
