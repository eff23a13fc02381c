// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package computer

import (
	"github.com/db47h/hack"
	"github.com/pkg/errors"
)

// ROMSize is the number of instructions in the ROM.
//
const ROMSize = 1 << 15

// ErrProgramTooLarge is returned when flashing a program that does not fit
// in the ROM.
//
var ErrProgramTooLarge = errors.New("program too large")

// ROM is the instruction memory.
//
type ROM struct {
	words []hack.Word
}

// NewROM returns a new ROM filled with zeros.
//
func NewROM() *ROM {
	return &ROM{words: make([]hack.Word, ROMSize)}
}

// Flash writes program at the start of the ROM and clears the rest.
//
func (r *ROM) Flash(program []hack.Word) error {
	if len(program) > len(r.words) {
		return errors.Wrapf(ErrProgramTooLarge, "%d instructions", len(program))
	}
	n := copy(r.words, program)
	for i := n; i < len(r.words); i++ {
		r.words[i] = hack.Word{}
	}
	return nil
}

// Fetch returns the instruction at the given address.
//
func (r *ROM) Fetch(address hack.Word) (hack.Word, error) {
	a := int(address.Uint16())
	if a >= len(r.words) {
		return hack.Word{}, errors.Wrapf(ErrOutOfRange, "ROM address %#04x", a)
	}
	return r.words[a], nil
}
