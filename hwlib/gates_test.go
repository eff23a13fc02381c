package hwlib_test

import (
	"testing"
	"testing/quick"

	"github.com/db47h/hack"
	hl "github.com/db47h/hack/hwlib"
	"github.com/db47h/hack/hwtest"
)

func Test_gate(t *testing.T) {
	td := []struct {
		name   string
		gate   func(a, b bool) bool
		result []bool // a=0 && b=0, a=0 && b=1, a=1 && b=0, a=1 && b=1
	}{
		{"NAND", hl.Nand, []bool{true, true, true, false}},
		{"AND", hl.And, []bool{false, false, false, true}},
		{"OR", hl.Or, []bool{false, true, true, true}},
		{"NOR", hl.Nor, []bool{true, false, false, false}},
		{"XOR", hl.Xor, []bool{false, true, true, false}},
		{"XNOR", hl.Xnor, []bool{true, false, false, true}},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			for i, exp := range d.result {
				a, b := i&2 != 0, i&1 != 0
				if out := d.gate(a, b); out != exp {
					t.Errorf("%s(%v, %v) = %v, got %v", d.name, a, b, exp, out)
				}
			}
		})
	}
	t.Run("NOT", func(t *testing.T) {
		if !hl.Not(false) || hl.Not(true) {
			t.Error("NOT truth table mismatch")
		}
	})
}

func Test_gate_reference(t *testing.T) {
	hwtest.CompareGate(t, "And", hl.And, func(a, b bool) bool { return a && b })
	hwtest.CompareGate(t, "Or", hl.Or, func(a, b bool) bool { return a || b })
	hwtest.CompareGate(t, "Xor", hl.Xor, func(a, b bool) bool { return a != b })
}

func Test_gate16(t *testing.T) {
	td := []struct {
		name string
		gate func(a, b hack.Word) hack.Word
		ctrl func(a, b int16) int16
	}{
		{"AND16", hl.And16, func(a, b int16) int16 { return a & b }},
		{"OR16", hl.Or16, func(a, b int16) int16 { return a | b }},
		{"NOT16", func(a, _ hack.Word) hack.Word { return hl.Not16(a) }, func(a, b int16) int16 { return ^a }},
	}

	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			f := func(x, y int16) bool {
				out := d.gate(hack.WordOf(uint16(x)), hack.WordOf(uint16(y)))
				return out.Int16() == d.ctrl(x, y)
			}
			if err := quick.Check(f, nil); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestOr8Way(t *testing.T) {
	for i := 0; i < 256; i++ {
		var in [8]bool
		for bit := range in {
			in[bit] = i&(1<<uint(bit)) != 0
		}
		if out := hl.Or8Way(in); out != (i != 0) {
			t.Errorf("Or8Way(%08b) = %v, got %v", i, i != 0, out)
		}
	}
}
