// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/hack"

// Mux returns a multiplexer output.
//
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux(a, b, sel bool) bool {
	return Or(And(a, Not(sel)), And(b, sel))
}

// DMux returns the outputs of a demultiplexer.
//
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
//
func DMux(in, sel bool) (a, b bool) {
	return And(in, Not(sel)), And(in, sel)
}

// Mux16 returns a 16-bits Mux output.
//
//	Function: for i := range out { if sel == 0 { out[i] = a[i] } else { out[i] = b[i] } }
//
func Mux16(a, b hack.Word, sel bool) (out hack.Word) {
	for i := range out {
		out[i] = Mux(a[i], b[i], sel)
	}
	return out
}

// Mux4Way16 returns the output of a 4-way 16 bits multiplexer. sel[0] is
// the lsb of the selector.
//
//	Function: out = [a, b, c, d][sel]
//
func Mux4Way16(a, b, c, d hack.Word, sel [2]bool) hack.Word {
	return Mux16(Mux16(a, b, sel[0]), Mux16(c, d, sel[0]), sel[1])
}

// Mux8Way16 returns the output of an 8-way 16 bits multiplexer.
//
//	Function: out = in[sel]
//
func Mux8Way16(in [8]hack.Word, sel [3]bool) hack.Word {
	lo := [2]bool{sel[0], sel[1]}
	return Mux16(
		Mux4Way16(in[0], in[1], in[2], in[3], lo),
		Mux4Way16(in[4], in[5], in[6], in[7], lo),
		sel[2])
}

// DMux4Way returns the outputs of a 4-way demultiplexer.
//
//	Function: out[sel] = in, all other outputs are 0
//
func DMux4Way(in bool, sel [2]bool) (out [4]bool) {
	hi0, hi1 := DMux(in, sel[1])
	out[0], out[1] = DMux(hi0, sel[0])
	out[2], out[3] = DMux(hi1, sel[0])
	return out
}

// DMux8Way returns the outputs of an 8-way demultiplexer.
//
//	Function: out[sel] = in, all other outputs are 0
//
func DMux8Way(in bool, sel [3]bool) (out [8]bool) {
	hi0, hi1 := DMux(in, sel[2])
	lo := [2]bool{sel[0], sel[1]}
	a, b := DMux4Way(hi0, lo), DMux4Way(hi1, lo)
	copy(out[:4], a[:])
	copy(out[4:], b[:])
	return out
}
