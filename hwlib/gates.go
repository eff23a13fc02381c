// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides the chips of the Hack computer, built from a single
// NAND gate.
//
// Combinational chips are plain functions. Chips with state (Latch, Register,
// the RAM tiers and PC) are structs whose zero value is all low and whose Load
// method runs one clock cycle and returns the value held after that cycle.
//
// Copyright 2018 Denis Bernard <db047h@gmail.com>
//
// This package is licensed under the MIT license. See license text in the LICENSE file.
//
package hwlib

import "github.com/db47h/hack"

// Nand returns a NAND gate output. This is the only gate in the package
// not built from other gates.
//
//	Function: out = !(a && b)
//
func Nand(a, b bool) bool { return !(a && b) }

// Not returns a NOT gate output.
//
//	Function: out = !in
//
func Not(in bool) bool { return Nand(in, in) }

// And returns a AND gate output.
//
//	Function: out = a && b
//
func And(a, b bool) bool { return Not(Nand(a, b)) }

// Or returns a OR gate output.
//
//	Function: out = a || b
//
func Or(a, b bool) bool { return Nand(Not(a), Not(b)) }

// Nor returns a NOR gate output.
//
//	Function: out = !(a || b)
//
func Nor(a, b bool) bool { return Not(Or(a, b)) }

// Xor returns a XOR gate output.
//
//	Function: out = (a && !b) || (!a && b)
//
func Xor(a, b bool) bool {
	nab := Nand(a, b)
	return Nand(Nand(a, nab), Nand(b, nab))
}

// Xnor returns a XNOR gate output.
//
//	Function: out = a && b || !a && !b
//
func Xnor(a, b bool) bool { return Not(Xor(a, b)) }

// Not16 returns a 16 bits NOT gate output.
//
//	Function: for i := range out { out[i] = !in[i] }
//
func Not16(in hack.Word) (out hack.Word) {
	for i := range out {
		out[i] = Not(in[i])
	}
	return out
}

// gate16 applies fn to each bit pair of a and b.
func gate16(a, b hack.Word, fn func(a, b bool) bool) (out hack.Word) {
	for i := range out {
		out[i] = fn(a[i], b[i])
	}
	return out
}

// And16 returns a 16 bits AND gate output.
//
//	Function: for i := range out { out[i] = a[i] && b[i] }
//
func And16(a, b hack.Word) hack.Word { return gate16(a, b, And) }

// Or16 returns a 16 bits OR gate output.
//
//	Function: for i := range out { out[i] = a[i] || b[i] }
//
func Or16(a, b hack.Word) hack.Word { return gate16(a, b, Or) }

// Or8Way returns the output of an 8-way OR gate.
//
//	Function: out = in[0] || in[1] || ... || in[7]
//
func Or8Way(in [8]bool) bool {
	return Or(
		Or(Or(in[0], in[1]), Or(in[2], in[3])),
		Or(Or(in[4], in[5]), Or(in[6], in[7])))
}
