// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/hack"

// A Latch holds a single bit. The zero value holds false.
//
// Latches have no read delay: the value returned by Load is the value held
// at the end of the current cycle.
//
type Latch struct {
	bit bool
}

// Load runs one clock cycle and returns the held bit.
//
//	Inputs: in, load
//	Outputs: out
//	Function: if load { bit = in }; out = bit
//
func (l *Latch) Load(in, load bool) bool {
	l.bit = Mux(l.bit, in, load)
	return l.bit
}

// A Register is a 16 bits register built from 16 Latches.
//
type Register struct {
	bits [hack.Size]Latch
}

// Load runs one clock cycle and returns the held word.
//
//	Inputs: in[16], load
//	Outputs: out[16]
//	Function: if load { r = in }; out = r
//
func (r *Register) Load(in hack.Word, load bool) (out hack.Word) {
	for i := range r.bits {
		out[i] = r.bits[i].Load(in[i], load)
	}
	return out
}
