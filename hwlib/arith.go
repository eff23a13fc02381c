// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"fmt"

	"github.com/db47h/hack"
)

// HalfAdder returns the sum and carry of a + b.
//
//	Function: s = lsb(a + b)
//	          c = msb(a + b)
//
func HalfAdder(a, b bool) (s, c bool) {
	return Xor(a, b), And(a, b)
}

// FullAdder returns the sum and carry of a + b + cin.
//
//	Function: s = lsb(a + b + cin)
//	          c = msb(a + b + cin)
//
func FullAdder(a, b, cin bool) (s, c bool) {
	s0, c0 := HalfAdder(a, b)
	s, c1 := HalfAdder(s0, cin)
	return s, Or(c0, c1)
}

// Add16 returns a + b. The final carry is discarded.
//
func Add16(a, b hack.Word) (out hack.Word) {
	var c bool
	for i := range out {
		out[i], c = FullAdder(a[i], b[i], c)
	}
	return out
}

// Inc16 returns in + 1. The final carry is discarded.
//
func Inc16(in hack.Word) (out hack.Word) {
	c := true
	for i := range out {
		out[i], c = HalfAdder(in[i], c)
	}
	return out
}

// ALU returns the output of the Hack ALU along with its zero and negative
// flags.
//
//	Inputs: x[16], y[16], zx, nx, zy, ny, f, no
//	Outputs: out[16], zr, ng
//	Function: if zx { x = 0 }
//	          if nx { x = !x }
//	          if zy { y = 0 }
//	          if ny { y = !y }
//	          if f { out = x + y } else { out = x & y }
//	          if no { out = !out }
//	          zr = out == 0
//	          ng = out < 0
//
func ALU(x, y hack.Word, zx, nx, zy, ny, f, no bool) (out hack.Word, zr, ng bool) {
	var zero hack.Word
	x = Mux16(x, zero, zx)
	y = Mux16(y, zero, zy)
	x = Mux16(x, Not16(x), nx)
	y = Mux16(y, Not16(y), ny)
	out = Mux16(And16(x, y), Add16(x, y), f)
	out = Mux16(out, Not16(out), no)
	zr = Nor(Or8Way([8]bool(out[:8])), Or8Way([8]bool(out[8:])))
	return out, zr, out[15]
}

// An Op is a set of ALU control bits packed as zx, nx, zy, ny, f, no from
// bit 5 to bit 0. This is also the layout of the comp field in C-instructions.
//
type Op uint8

// Functions computed by the ALU for the 18 documented control bit
// combinations.
//
const (
	OpZero   Op = 0x2a // 0
	OpOne    Op = 0x3f // 1
	OpNegOne Op = 0x3a // -1
	OpX      Op = 0x0c // x
	OpY      Op = 0x30 // y
	OpNotX   Op = 0x0d // !x
	OpNotY   Op = 0x31 // !y
	OpNegX   Op = 0x0f // -x
	OpNegY   Op = 0x33 // -y
	OpIncX   Op = 0x1f // x+1
	OpIncY   Op = 0x37 // y+1
	OpDecX   Op = 0x0e // x-1
	OpDecY   Op = 0x32 // y-1
	OpAdd    Op = 0x02 // x+y
	OpSubXY  Op = 0x13 // x-y
	OpSubYX  Op = 0x07 // y-x
	OpAnd    Op = 0x00 // x&y
	OpOr     Op = 0x15 // x|y
)

var opNames = map[Op]string{
	OpZero:   "0",
	OpOne:    "1",
	OpNegOne: "-1",
	OpX:      "x",
	OpY:      "y",
	OpNotX:   "!x",
	OpNotY:   "!y",
	OpNegX:   "-x",
	OpNegY:   "-y",
	OpIncX:   "x+1",
	OpIncY:   "y+1",
	OpDecX:   "x-1",
	OpDecY:   "y-1",
	OpAdd:    "x+y",
	OpSubXY:  "x-y",
	OpSubYX:  "y-x",
	OpAnd:    "x&y",
	OpOr:     "x|y",
}

// Bits returns the individual control bits of op.
//
func (op Op) Bits() (zx, nx, zy, ny, f, no bool) {
	return op&0x20 != 0, op&0x10 != 0, op&0x08 != 0, op&0x04 != 0, op&0x02 != 0, op&0x01 != 0
}

// Eval runs the ALU with the control bits of op.
//
func (op Op) Eval(x, y hack.Word) (out hack.Word, zr, ng bool) {
	zx, nx, zy, ny, f, no := op.Bits()
	return ALU(x, y, zx, nx, zy, ny, f, no)
}

// Known reports whether op is one of the documented functions.
//
func (op Op) Known() bool {
	_, ok := opNames[op&0x3f]
	return ok
}

// String returns the function computed by op in terms of x and y, like "x-1".
// Undocumented combinations are returned in binary.
//
func (op Op) String() string {
	if n, ok := opNames[op&0x3f]; ok {
		return n
	}
	return fmt.Sprintf("Op(%06b)", uint8(op&0x3f))
}
