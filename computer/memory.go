// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package computer

import (
	"github.com/db47h/hack"
	hl "github.com/db47h/hack/hwlib"
	"github.com/pkg/errors"
)

// Memory map of the data address space.
//
const (
	RAMBase    = 0x0000
	ScreenBase = 0x4000
	Keyboard   = 0x6000
)

// ErrOutOfRange is the cause of the errors returned when accessing an address
// outside of the ROM or the memory map.
//
var ErrOutOfRange = errors.New("address out of range")

// Memory is the data memory of the computer: 16K words of RAM, followed by
// the 8K words screen memory and the keyboard register.
//
type Memory struct {
	ram    *hl.Ram16K
	screen *hl.Ram8K
	kbd    hl.Register
}

// NewMemory returns a new cleared Memory.
//
func NewMemory() *Memory {
	return &Memory{
		ram:    hl.NewRam16K(),
		screen: hl.NewRam8K(),
	}
}

// Load runs one clock cycle and returns the word at the given address.
// Addresses above Keyboard are not mapped: Load then returns a zero Word and
// an error with cause ErrOutOfRange, and nothing is written.
//
//	Inputs: in[16], load, address[16]
//	Outputs: out[16]
//	Function: if load { m[address] = in }; out = m[address]
//
func (m *Memory) Load(in hack.Word, load bool, address hack.Word) (hack.Word, error) {
	if a := address.Uint16(); a > Keyboard {
		return hack.Word{}, errors.Wrapf(ErrOutOfRange, "memory address %#04x", a)
	}
	ldRAM, ldIO := hl.DMux(load, address[14])
	ldScreen, ldKbd := hl.DMux(ldIO, address[13])
	ram := m.ram.Load(in, ldRAM, [14]bool(address[:14]))
	screen := m.screen.Load(in, ldScreen, [13]bool(address[:13]))
	kbd := m.kbd.Load(in, ldKbd)
	return hl.Mux4Way16(ram, ram, screen, kbd, [2]bool{address[13], address[14]}), nil
}

// SetKey sets the value of the keyboard register.
//
func (m *Memory) SetKey(key hack.Word) {
	m.kbd.Load(key, true)
}

// Reset clears the memory.
//
func (m *Memory) Reset() {
	m.ram = hl.NewRam16K()
	m.screen = hl.NewRam8K()
	m.kbd = hl.Register{}
}
