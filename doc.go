// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package hack provides the Word type shared by all the chips of a gate-accurate
model of the Hack 16-bit computer.

The chips themselves live in the hwlib package. They are built bottom-up from a
single NAND gate: every other gate, the adders, the ALU, latches, registers,
the tiered RAM and the program counter are plain Go functions and structs
composed from it. There is no circuit engine and no propagation delay: calling
a chip's Load method is one clock cycle.

The computer package wires these chips into a CPU with a memory map and a ROM,
and cmd/hackrun runs .hack programs on it.

A Word is an array of 16 signals where index 0 is the least significant bit and
index 15 the sign bit:

	w := hack.WordOf(0x8001)
	w[0]       // true
	w[15]      // true
	w.Int16()  // -32767

*/
package hack
