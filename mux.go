// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package seqsim

import "github.com/db47h/seqsim/gate"

// mux is a two-way multiplexer.
//
//	Function: out = a if sel == false, b if sel == true
//
func mux(a, b, sel bool) bool {
	return gate.Or(gate.And(a, gate.Not(sel)), gate.And(b, sel))
}
