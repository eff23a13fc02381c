// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package computer

import (
	"strconv"
	"strings"

	"github.com/db47h/hack"
	"github.com/db47h/hack/hwlib"
)

// Dest is the destination field of a C-instruction.
//
type Dest uint8

// Destination bits.
//
const (
	DestM Dest = 1 << iota
	DestD
	DestA
)

// String returns the destination mnemonic, like "AM". It returns an empty
// string if d has no bits set.
//
func (d Dest) String() string {
	var b strings.Builder
	if d&DestA != 0 {
		b.WriteByte('A')
	}
	if d&DestM != 0 {
		b.WriteByte('M')
	}
	if d&DestD != 0 {
		b.WriteByte('D')
	}
	return b.String()
}

// Jump is the jump field of a C-instruction. Bits 2, 1 and 0 respectively
// enable jumping when the ALU output is negative, zero or positive.
//
type Jump uint8

// Jump conditions.
//
const (
	JNone Jump = iota
	JGT
	JEQ
	JGE
	JLT
	JNE
	JLE
	JMP
)

var jumpNames = [...]string{"", "JGT", "JEQ", "JGE", "JLT", "JNE", "JLE", "JMP"}

func (j Jump) String() string { return jumpNames[j&7] }

// Taken returns true if the jump condition is met for the given ALU flags.
//
func (j Jump) Taken(zr, ng bool) bool {
	return j&4 != 0 && ng || j&2 != 0 && zr || j&1 != 0 && !zr && !ng
}

// Instruction is a decoded Hack instruction.
//
type Instruction struct {
	C     bool     // false for A-instructions
	Value uint16   // A-instruction: 15 bits value
	M     bool     // C-instruction: the ALU y input is M instead of A
	Comp  hwlib.Op // C-instruction: ALU control bits
	Dest  Dest
	Jump  Jump
}

// Decode decodes a Hack instruction.
//
// Bit 15 clear is an A-instruction and the remaining bits are its value.
// C-instructions are laid out as 111a cccc ccdd djjj where a selects M as the
// ALU y input, c are the ALU control bits zx..no, d the destination and j the
// jump condition. Bits 13 and 14 are ignored.
//
func Decode(w hack.Word) Instruction {
	v := w.Uint16()
	if v&0x8000 == 0 {
		return Instruction{Value: v}
	}
	return Instruction{
		C:    true,
		M:    v&0x1000 != 0,
		Comp: hwlib.Op(v >> 6 & 0x3f),
		Dest: Dest(v >> 3 & 7),
		Jump: Jump(v & 7),
	}
}

// Encode returns the binary form of i. Bits 13 and 14 of C-instructions are
// set.
//
func (i Instruction) Encode() hack.Word {
	if !i.C {
		return hack.WordOf(i.Value & 0x7fff)
	}
	v := uint16(0xe000) | uint16(i.Comp&0x3f)<<6 | uint16(i.Dest&7)<<3 | uint16(i.Jump&7)
	if i.M {
		v |= 0x1000
	}
	return hack.WordOf(v)
}

var (
	compA = strings.NewReplacer("x", "D", "y", "A")
	compM = strings.NewReplacer("x", "D", "y", "M")
)

// String returns the assembly form of i, like "@42" or "AM=M-1;JNE".
// Undocumented ALU control bits are shown in binary.
//
func (i Instruction) String() string {
	if !i.C {
		return "@" + strconv.Itoa(int(i.Value))
	}
	var b strings.Builder
	if i.Dest != 0 {
		b.WriteString(i.Dest.String())
		b.WriteByte('=')
	}
	if i.M {
		b.WriteString(compM.Replace(i.Comp.String()))
	} else {
		b.WriteString(compA.Replace(i.Comp.String()))
	}
	if i.Jump != JNone {
		b.WriteByte(';')
		b.WriteString(i.Jump.String())
	}
	return b.String()
}
