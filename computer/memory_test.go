package computer_test

import (
	"testing"

	"github.com/db47h/hack"
	"github.com/db47h/hack/computer"
	"github.com/pkg/errors"
)

func TestMemory(t *testing.T) {
	m := computer.NewMemory()
	addrs := []uint16{
		computer.RAMBase, 0x1fff, 0x2000, 0x3fff,
		computer.ScreenBase, 0x5fff,
		computer.Keyboard,
	}
	for i, a := range addrs {
		if _, err := m.Load(hack.WordOf(uint16(i+1)), true, hack.WordOf(a)); err != nil {
			t.Fatalf("write %#04x: %v", a, err)
		}
	}
	for i, a := range addrs {
		w, err := m.Load(hack.WordOf(0xffff), false, hack.WordOf(a))
		if err != nil {
			t.Fatalf("read %#04x: %v", a, err)
		}
		if w.Uint16() != uint16(i+1) {
			t.Errorf("%#04x: expected %d, got %d", a, i+1, w.Uint16())
		}
	}

	m.Reset()
	for _, a := range addrs {
		if w, _ := m.Load(hack.Word{}, false, hack.WordOf(a)); w.Uint16() != 0 {
			t.Errorf("%#04x: expected 0 after reset, got %d", a, w.Uint16())
		}
	}
}

func TestMemory_keyboard(t *testing.T) {
	m := computer.NewMemory()
	m.SetKey(hack.WordOf('K'))
	w, err := m.Load(hack.Word{}, false, hack.WordOf(computer.Keyboard))
	if err != nil {
		t.Fatal(err)
	}
	if w.Uint16() != 'K' {
		t.Fatalf("expected %d, got %d", 'K', w.Uint16())
	}
}

func TestMemory_outOfRange(t *testing.T) {
	m := computer.NewMemory()
	for _, a := range []uint16{computer.Keyboard + 1, 0x7fff, 0x8000, 0xffff} {
		w, err := m.Load(hack.WordOf(1), true, hack.WordOf(a))
		if errors.Cause(err) != computer.ErrOutOfRange {
			t.Errorf("%#04x: expected ErrOutOfRange, got %v", a, err)
		}
		if w.Uint16() != 0 {
			t.Errorf("%#04x: expected 0, got %d", a, w.Uint16())
		}
	}
	// nothing aliased into RAM
	if w, _ := m.Load(hack.Word{}, false, hack.WordOf(1)); w.Uint16() != 0 {
		t.Errorf("RAM[1] = %d, expected 0", w.Uint16())
	}
}

func TestROM(t *testing.T) {
	r := computer.NewROM()
	if err := r.Flash([]hack.Word{hack.WordOf(1), hack.WordOf(2)}); err != nil {
		t.Fatal(err)
	}
	for a, want := range []uint16{1, 2, 0} {
		w, err := r.Fetch(hack.WordOf(uint16(a)))
		if err != nil {
			t.Fatal(err)
		}
		if w.Uint16() != want {
			t.Errorf("ROM[%d]: expected %d, got %d", a, want, w.Uint16())
		}
	}
	if _, err := r.Fetch(hack.WordOf(computer.ROMSize)); errors.Cause(err) != computer.ErrOutOfRange {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if _, err := r.Fetch(hack.WordOf(computer.ROMSize - 1)); err != nil {
		t.Error(err)
	}
	if err := r.Flash(make([]hack.Word, computer.ROMSize+1)); errors.Cause(err) != computer.ErrProgramTooLarge {
		t.Errorf("expected ErrProgramTooLarge, got %v", err)
	}
}
