// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/hack"

// PC is a program counter: a Register with increment, load and reset
// controls. The zero value holds 0.
//
type PC struct {
	reg Register
}

// Load runs one clock cycle and returns the value of the counter at the end
// of the cycle. When several controls are set, reset wins over load, which
// wins over inc.
//
//	Inputs: in[16], load, inc, reset
//	Outputs: out[16]
//	Function: if reset { pc = 0 } else if load { pc = in } else if inc { pc++ }
//	          out = pc
//
func (p *PC) Load(in hack.Word, load, inc, reset bool) hack.Word {
	var zero hack.Word
	cur := p.reg.Load(zero, false)
	next := Mux16(cur, Inc16(cur), inc)
	next = Mux16(next, in, load)
	next = Mux16(next, zero, reset)
	return p.reg.Load(next, Or(Or(load, inc), reset))
}
