// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hack

import (
	"github.com/pkg/errors"
)

// Size is the number of signals in a Word.
//
const Size = 16

// A Word is a bus of 16 signals. Bit 0 is the lsb, bit 15 is the sign bit.
//
type Word [Size]bool

// WordOf returns v as a Word.
//
func WordOf(v uint16) Word {
	var w Word
	setBits(w[:], v)
	return w
}

// Uint16 returns the unsigned value of w.
//
func (w Word) Uint16() uint16 {
	return bitsValue(w[:])
}

// Int16 returns the two's complement value of w.
//
func (w Word) Int16() int16 {
	return int16(w.Uint16())
}

// Addr15 returns the low 15 bits of w as an address in the data or
// instruction address space.
//
func (w Word) Addr15() uint16 {
	return bitsValue(w[:15])
}

// String returns w as 16 binary digits, msb first.
//
func (w Word) String() string {
	var b [Size]byte
	for i, s := range w {
		if s {
			b[Size-1-i] = '1'
		} else {
			b[Size-1-i] = '0'
		}
	}
	return string(b[:])
}

// ParseWord parses a string of exactly 16 binary digits, msb first.
//
func ParseWord(s string) (Word, error) {
	var w Word
	if len(s) != Size {
		return w, errors.Errorf("invalid word %q: expected %d binary digits, got %d", s, Size, len(s))
	}
	for i := 0; i < Size; i++ {
		switch s[i] {
		case '0':
		case '1':
			w[Size-1-i] = true
		default:
			return w, errors.Errorf("invalid word %q: bad digit %q at pos %d", s, s[i], i+1)
		}
	}
	return w, nil
}

func setBits(bits []bool, v uint16) {
	for bit := range bits {
		bits[bit] = v&(1<<uint(bit)) != 0
	}
}

func bitsValue(bits []bool) uint16 {
	var v uint16
	for bit, s := range bits {
		if s {
			v |= 1 << uint(bit)
		}
	}
	return v
}

// Addr3 returns the low 3 bits of v as a Ram8 address.
//
func Addr3(v uint16) (a [3]bool) { setBits(a[:], v); return a }

// Addr6 returns the low 6 bits of v as a Ram64 address.
//
func Addr6(v uint16) (a [6]bool) { setBits(a[:], v); return a }

// Addr9 returns the low 9 bits of v as a Ram512 address.
//
func Addr9(v uint16) (a [9]bool) { setBits(a[:], v); return a }

// Addr12 returns the low 12 bits of v as a Ram4K address.
//
func Addr12(v uint16) (a [12]bool) { setBits(a[:], v); return a }

// Addr13 returns the low 13 bits of v as a Ram8K address.
//
func Addr13(v uint16) (a [13]bool) { setBits(a[:], v); return a }

// Addr14 returns the low 14 bits of v as a Ram16K address.
//
func Addr14(v uint16) (a [14]bool) { setBits(a[:], v); return a }
