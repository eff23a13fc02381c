package hwlib_test

import (
	"math/rand"
	"testing"
	"testing/quick"
	"time"

	"github.com/db47h/hack"
	hl "github.com/db47h/hack/hwlib"
	"github.com/db47h/hack/hwtest"
)

func TestHalfAdder(t *testing.T) {
	for i := 0; i < 4; i++ {
		a, b := i&2 != 0, i&1 != 0
		s, c := hl.HalfAdder(a, b)
		sum := i>>1 + i&1
		if s != (sum&1 != 0) || c != (sum&2 != 0) {
			t.Errorf("HalfAdder(%v, %v) = %d, got s=%v, c=%v", a, b, sum, s, c)
		}
	}
}

func TestFullAdder(t *testing.T) {
	for i := 0; i < 8; i++ {
		a, b, cin := i&4 != 0, i&2 != 0, i&1 != 0
		s, c := hl.FullAdder(a, b, cin)
		sum := i>>2 + i>>1&1 + i&1
		if s != (sum&1 != 0) || c != (sum&2 != 0) {
			t.Errorf("FullAdder(%v, %v, %v) = %d, got s=%v, c=%v", a, b, cin, sum, s, c)
		}
	}
}

func TestAdd16(t *testing.T) {
	hwtest.CompareWord2(t, "Add16", hl.Add16, func(a, b uint16) uint16 { return a + b })
}

func TestInc16(t *testing.T) {
	hwtest.CompareWord1(t, "Inc16", hl.Inc16, func(a uint16) uint16 { return a + 1 })

	one := hack.WordOf(1)
	f := func(x uint16) bool {
		w := hack.WordOf(x)
		return hl.Inc16(w) == hl.Add16(w, one)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestALU_constants(t *testing.T) {
	allOnes := hack.WordOf(0xffff)
	var zero hack.Word

	out, zr, ng := hl.ALU(zero, allOnes, true, false, true, false, true, false)
	if out != zero || !zr || ng {
		t.Errorf("constant zero: got out=%v, zr=%v, ng=%v", out, zr, ng)
	}
	out, zr, ng = hl.ALU(zero, allOnes, true, true, true, true, true, true)
	if out.Uint16() != 1 || zr || ng {
		t.Errorf("constant one: got out=%v, zr=%v, ng=%v", out, zr, ng)
	}
}

func TestALU_flags(t *testing.T) {
	seed := time.Now().UnixNano()
	r := rand.New(rand.NewSource(seed))
	for ctl := 0; ctl < 64; ctl++ {
		op := hl.Op(ctl)
		for i := 0; i < 64; i++ {
			x, y := hwtest.RandWord(r), hwtest.RandWord(r)
			if i == 0 {
				x, y = hack.Word{}, hack.Word{}
			}
			out, zr, ng := op.Eval(x, y)
			if zr != (out.Uint16() == 0) {
				t.Fatalf("seed %d: %v(%v, %v) = %v, zr=%v", seed, op, x, y, out, zr)
			}
			if ng != out[15] {
				t.Fatalf("seed %d: %v(%v, %v) = %v, ng=%v", seed, op, x, y, out, ng)
			}
		}
	}
}

func TestALU_ops(t *testing.T) {
	td := []struct {
		op  hl.Op
		ref func(x, y uint16) uint16
	}{
		{hl.OpZero, func(x, y uint16) uint16 { return 0 }},
		{hl.OpOne, func(x, y uint16) uint16 { return 1 }},
		{hl.OpNegOne, func(x, y uint16) uint16 { return 0xffff }},
		{hl.OpX, func(x, y uint16) uint16 { return x }},
		{hl.OpY, func(x, y uint16) uint16 { return y }},
		{hl.OpNotX, func(x, y uint16) uint16 { return ^x }},
		{hl.OpNotY, func(x, y uint16) uint16 { return ^y }},
		{hl.OpNegX, func(x, y uint16) uint16 { return -x }},
		{hl.OpNegY, func(x, y uint16) uint16 { return -y }},
		{hl.OpIncX, func(x, y uint16) uint16 { return x + 1 }},
		{hl.OpIncY, func(x, y uint16) uint16 { return y + 1 }},
		{hl.OpDecX, func(x, y uint16) uint16 { return x - 1 }},
		{hl.OpDecY, func(x, y uint16) uint16 { return y - 1 }},
		{hl.OpAdd, func(x, y uint16) uint16 { return x + y }},
		{hl.OpSubXY, func(x, y uint16) uint16 { return x - y }},
		{hl.OpSubYX, func(x, y uint16) uint16 { return y - x }},
		{hl.OpAnd, func(x, y uint16) uint16 { return x & y }},
		{hl.OpOr, func(x, y uint16) uint16 { return x | y }},
	}
	for _, d := range td {
		op := d.op
		t.Run(op.String(), func(t *testing.T) {
			if !op.Known() {
				t.Errorf("%v not reported as known", op)
			}
			hwtest.CompareWord2(t, op.String(), func(x, y hack.Word) hack.Word {
				out, _, _ := op.Eval(x, y)
				return out
			}, d.ref)
		})
	}
}

func TestALU_cases(t *testing.T) {
	td := []struct {
		op     hl.Op
		x, y   uint16
		out    uint16
		zr, ng bool
	}{
		{hl.OpIncX, 0xffff, 0, 0, true, false},
		{hl.OpDecX, 0, 0, 0xffff, false, true},
		{hl.OpAdd, 0xffff, 1, 0, true, false},
		{hl.OpSubXY, 5, 10, uint16(0x10000 - 5), false, true},
		{hl.OpSubYX, 42, 24, 65518, false, true},
		{hl.OpAnd, 0xc, 0xa, 0x8, false, false},
		{hl.OpOr, 0xc, 0xa, 0xe, false, false},
		{hl.OpNegX, 42, 0, uint16(0x10000 - 42), false, true},
	}
	for _, d := range td {
		out, zr, ng := d.op.Eval(hack.WordOf(d.x), hack.WordOf(d.y))
		if out.Uint16() != d.out || zr != d.zr || ng != d.ng {
			t.Errorf("%v(%d, %d): expected (%d, %v, %v), got (%d, %v, %v)",
				d.op, d.x, d.y, d.out, d.zr, d.ng, out.Uint16(), zr, ng)
		}
	}
}

func TestOp_String(t *testing.T) {
	if s := hl.OpSubYX.String(); s != "y-x" {
		t.Errorf("expected y-x, got %s", s)
	}
	if hl.Op(0x01).Known() {
		t.Errorf("Op(0x01) reported as known")
	}
	if s := hl.Op(0x01).String(); s != "Op(000001)" {
		t.Errorf("expected Op(000001), got %s", s)
	}
}
