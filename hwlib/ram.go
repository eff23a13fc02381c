// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import "github.com/db47h/hack"

// RAM chips are composed recursively: each tier holds a fixed number of
// chips of the tier below it. The low bits of an address are forwarded as is
// to every sub-chip, the remaining high bits select the sub-chip whose output
// is returned and which gets the load signal.
//
//	Chip    Words  Address  Parts
//	Ram8        8     3     8 Register
//	Ram64      64     6     8 Ram8
//	Ram512    512     9     8 Ram64
//	Ram4K    4096    12     8 Ram512
//	Ram8K    8192    13     2 Ram4K
//	Ram16K  16384    14     4 Ram4K
//
// Every sub-chip is clocked on each call to Load, but only the selected one
// can see an active load signal.

// chip is implemented by pointers to the addressable chips with an address
// bus of type A.
//
type chip[T any, A any] interface {
	*T
	Load(in hack.Word, load bool, address A) hack.Word
}

// fanOut8 drives an 8-way tier: load is routed to parts[sel], address is
// forwarded to all parts and the output of parts[sel] is returned.
//
func fanOut8[T any, A any, P chip[T, A]](parts *[8]T, in hack.Word, load bool, sel [3]bool, address A) hack.Word {
	var outs [8]hack.Word
	for i, ld := range DMux8Way(load, sel) {
		outs[i] = P(&parts[i]).Load(in, ld, address)
	}
	return Mux8Way16(outs, sel)
}

// Ram8 is a memory of 8 words.
//
type Ram8 struct {
	regs [8]Register
}

// Load runs one clock cycle and returns the word at the given address.
//
//	Inputs: in[16], load, address[3]
//	Outputs: out[16]
//	Function: if load { m[address] = in }; out = m[address]
//
func (r *Ram8) Load(in hack.Word, load bool, address [3]bool) hack.Word {
	var outs [8]hack.Word
	for i, ld := range DMux8Way(load, address) {
		outs[i] = r.regs[i].Load(in, ld)
	}
	return Mux8Way16(outs, address)
}

// Ram64 is a memory of 64 words.
//
type Ram64 struct {
	parts [8]Ram8
}

// Load runs one clock cycle and returns the word at the given address.
// address[0..2] selects a word in a Ram8, address[3..5] selects the Ram8.
//
func (r *Ram64) Load(in hack.Word, load bool, address [6]bool) hack.Word {
	return fanOut8(&r.parts, in, load, [3]bool(address[3:]), [3]bool(address[:3]))
}

// Ram512 is a memory of 512 words.
//
type Ram512 struct {
	parts [8]Ram64
}

// Load runs one clock cycle and returns the word at the given address.
// address[0..5] is forwarded to the Ram64 selected by address[6..8].
//
func (r *Ram512) Load(in hack.Word, load bool, address [9]bool) hack.Word {
	return fanOut8(&r.parts, in, load, [3]bool(address[6:]), [6]bool(address[:6]))
}

// Ram4K is a memory of 4096 words.
//
type Ram4K struct {
	parts [8]Ram512
}

// NewRam4K returns a new zeroed Ram4K.
//
func NewRam4K() *Ram4K { return new(Ram4K) }

// Load runs one clock cycle and returns the word at the given address.
// address[0..8] is forwarded to the Ram512 selected by address[9..11].
//
func (r *Ram4K) Load(in hack.Word, load bool, address [12]bool) hack.Word {
	return fanOut8(&r.parts, in, load, [3]bool(address[9:]), [9]bool(address[:9]))
}

// Ram8K is a memory of 8192 words.
//
type Ram8K struct {
	parts [2]Ram4K
}

// NewRam8K returns a new zeroed Ram8K.
//
func NewRam8K() *Ram8K { return new(Ram8K) }

// Load runs one clock cycle and returns the word at the given address.
// address[0..11] is forwarded to the Ram4K selected by address[12].
//
func (r *Ram8K) Load(in hack.Word, load bool, address [13]bool) hack.Word {
	sel := address[12]
	sub := [12]bool(address[:12])
	ld0, ld1 := DMux(load, sel)
	return Mux16(
		r.parts[0].Load(in, ld0, sub),
		r.parts[1].Load(in, ld1, sub),
		sel)
}

// Ram16K is a memory of 16384 words.
//
type Ram16K struct {
	parts [4]Ram4K
}

// NewRam16K returns a new zeroed Ram16K.
//
func NewRam16K() *Ram16K { return new(Ram16K) }

// Load runs one clock cycle and returns the word at the given address.
// address[0..11] is forwarded to the Ram4K selected by address[12..13].
//
func (r *Ram16K) Load(in hack.Word, load bool, address [14]bool) hack.Word {
	sel := [2]bool(address[12:])
	sub := [12]bool(address[:12])
	ld := DMux4Way(load, sel)
	return Mux4Way16(
		r.parts[0].Load(in, ld[0], sub),
		r.parts[1].Load(in, ld[1], sub),
		r.parts[2].Load(in, ld[2], sub),
		r.parts[3].Load(in, ld[3], sub),
		sel)
}
