// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing chips.
//
package hwtest

import (
	"math/rand"
	"testing"
	"time"

	"github.com/db47h/hack"
)

// Iterations is the number of random inputs tried by the Compare functions
// after the all 0 and all 1 inputs.
//
var Iterations = 1 << 12

func newRand(t *testing.T) *rand.Rand {
	t.Helper()
	seed := time.Now().UnixNano()
	t.Logf("seed: %d", seed)
	return rand.New(rand.NewSource(seed))
}

// RandWord returns a random Word.
//
func RandWord(r *rand.Rand) hack.Word {
	return hack.WordOf(uint16(r.Uint32()))
}

// CompareGate takes a 2 inputs gate and compares its outputs to a reference
// function for every input combination.
//
func CompareGate(t *testing.T, name string, gate, ref func(a, b bool) bool) {
	t.Helper()
	for _, in := range [][2]bool{{false, false}, {false, true}, {true, false}, {true, true}} {
		if got, ex := gate(in[0], in[1]), ref(in[0], in[1]); got != ex {
			t.Errorf("%s(%v, %v): expected %v, got %v", name, in[0], in[1], ex, got)
		}
	}
}

// CompareWord1 takes a 1 input chip and compares its output to a reference
// function working on native integers, given the same inputs.
//
func CompareWord1(t *testing.T, name string, chip func(hack.Word) hack.Word, ref func(uint16) uint16) {
	t.Helper()
	r := newRand(t)
	check := func(v uint16) bool {
		t.Helper()
		got, ex := chip(hack.WordOf(v)), ref(v)
		if got.Uint16() != ex {
			t.Errorf("%s(%#04x): expected %#04x, got %#04x", name, v, ex, got.Uint16())
			return false
		}
		return true
	}
	if !check(0) || !check(0xffff) {
		return
	}
	for i := 0; i < Iterations; i++ {
		if !check(uint16(r.Uint32())) {
			return
		}
	}
}

// CompareWord2 takes a 2 inputs chip and compares its output to a reference
// function working on native integers, given the same inputs.
//
func CompareWord2(t *testing.T, name string, chip func(a, b hack.Word) hack.Word, ref func(a, b uint16) uint16) {
	t.Helper()
	r := newRand(t)
	check := func(a, b uint16) bool {
		t.Helper()
		got, ex := chip(hack.WordOf(a), hack.WordOf(b)), ref(a, b)
		if got.Uint16() != ex {
			t.Errorf("%s(%#04x, %#04x): expected %#04x, got %#04x", name, a, b, ex, got.Uint16())
			return false
		}
		return true
	}
	if !check(0, 0) || !check(0xffff, 0xffff) {
		return
	}
	for i := 0; i < Iterations; i++ {
		if !check(uint16(r.Uint32()), uint16(r.Uint32())) {
			return
		}
	}
}
