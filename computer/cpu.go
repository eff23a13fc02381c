// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package computer

import (
	"github.com/db47h/hack"
	hl "github.com/db47h/hack/hwlib"
)

// CPU is the Hack central processing unit: an ALU, the A and D registers and
// a program counter. The zero value is a CPU with all registers cleared.
//
type CPU struct {
	a, d hl.Register
	pc   hl.PC
}

// Output holds the CPU outputs after a clock cycle.
//
type Output struct {
	OutM     hack.Word // value to write to memory. Zero for A-instructions.
	WriteM   bool      // write OutM at AddressM
	AddressM hack.Word // value of A at the beginning of the cycle
	PC       hack.Word // address of the next instruction
}

// Execute runs one clock cycle.
//
//	Inputs: inst[16], inM[16], reset
//	Outputs: outM[16], writeM, addressM[16], pc[16]
//
// A-instructions load their value into A. C-instructions compute
// D op (A or inM) and store the result into any of A, D and memory. The
// program counter jumps to the value A had at the beginning of the cycle if
// the jump condition of the instruction is met, and advances by one
// otherwise. reset sets the program counter to 0.
//
func (c *CPU) Execute(inst, inM hack.Word, reset bool) Output {
	var zero hack.Word
	isC := inst[15]
	a := c.a.Load(zero, false)
	d := c.d.Load(zero, false)

	y := hl.Mux16(a, inM, hl.And(isC, inst[12]))
	out, zr, ng := hl.ALU(d, y, inst[11], inst[10], inst[9], inst[8], inst[7], inst[6])
	out = hl.Mux16(zero, out, isC)

	c.a.Load(hl.Mux16(inst, out, isC), hl.Or(hl.Not(isC), inst[5]))
	c.d.Load(out, hl.And(isC, inst[4]))

	jmp := hl.Or(
		hl.Or(hl.And(inst[2], ng), hl.And(inst[1], zr)),
		hl.And(inst[0], hl.Nor(zr, ng)))
	pc := c.pc.Load(a, hl.And(isC, jmp), true, reset)

	return Output{
		OutM:     out,
		WriteM:   hl.And(isC, inst[3]),
		AddressM: a,
		PC:       pc,
	}
}

// Reset sets the program counter to 0. A and D are left untouched.
//
func (c *CPU) Reset() {
	c.pc.Load(hack.Word{}, false, false, true)
}

// A returns the value of the A register.
//
func (c *CPU) A() hack.Word { return c.a.Load(hack.Word{}, false) }

// D returns the value of the D register.
//
func (c *CPU) D() hack.Word { return c.d.Load(hack.Word{}, false) }

// PC returns the value of the program counter.
//
func (c *CPU) PC() hack.Word { return c.pc.Load(hack.Word{}, false, false, false) }
