// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package computer implements the Hack computer on top of the chips in hwlib:
// a CPU, a 32K words instruction ROM and a memory mapped data memory.
//
package computer

import (
	"context"
	"log/slog"

	"github.com/db47h/hack"
	"github.com/pkg/errors"
)

// Computer is a Hack computer.
//
type Computer struct {
	rom    *ROM
	mem    *Memory
	cpu    CPU
	log    *slog.Logger
	cycles uint64
}

// An Option configures a Computer.
//
type Option func(*Computer)

// WithLogger sets the logger used to trace execution. Each clock cycle is
// logged at debug level.
//
func WithLogger(l *slog.Logger) Option {
	return func(c *Computer) { c.log = l }
}

// New returns a new Computer with an empty ROM and cleared memory.
//
func New(opts ...Option) *Computer {
	c := &Computer{
		rom: NewROM(),
		mem: NewMemory(),
		log: slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// LoadProgram flashes program into the ROM.
//
func (c *Computer) LoadProgram(program []hack.Word) error {
	return errors.Wrap(c.rom.Flash(program), "load program")
}

// Step runs the computer for one clock cycle.
//
// Reads from memory at an unmapped address yield a zero inM since A is
// routinely used to hold constants. Writes to an unmapped address fail.
//
func (c *Computer) Step() error {
	var zero hack.Word
	pc := c.cpu.PC()
	inst, err := c.rom.Fetch(pc)
	if err != nil {
		return errors.Wrap(err, "fetch")
	}
	inM, err := c.mem.Load(zero, false, c.cpu.A())
	if err != nil && errors.Cause(err) != ErrOutOfRange {
		return err
	}
	out := c.cpu.Execute(inst, inM, false)
	if out.WriteM {
		if _, err = c.mem.Load(out.OutM, true, out.AddressM); err != nil {
			return errors.Wrapf(err, "write at pc %d", pc.Uint16())
		}
	}
	c.cycles++
	if c.log.Enabled(context.Background(), slog.LevelDebug) {
		c.log.Debug("step",
			"cycle", c.cycles,
			"pc", pc.Uint16(),
			"inst", Decode(inst).String(),
			"a", c.cpu.A().Int16(),
			"d", c.cpu.D().Int16(),
			"next", out.PC.Uint16())
	}
	return nil
}

// Run steps the computer until it has run the given number of cycles, it
// halts, ctx is done or an error occurs. A negative cycle count runs until
// the computer halts. Run returns the number of cycles run.
//
func (c *Computer) Run(ctx context.Context, cycles int) (int, error) {
	n := 0
	for ; cycles < 0 || n < cycles; n++ {
		select {
		case <-ctx.Done():
			return n, ctx.Err()
		default:
		}
		if c.Halted() {
			c.log.Info("halted", "pc", c.cpu.PC().Uint16(), "cycles", c.cycles)
			break
		}
		if err := c.Step(); err != nil {
			return n, err
		}
	}
	return n, nil
}

// Halted returns true if the computer is stuck in the end of program loop:
//
//	(END)
//	    @END
//	    0;JMP
//
func (c *Computer) Halted() bool {
	pc := c.cpu.PC()
	inst, err := c.rom.Fetch(pc)
	if err != nil {
		return false
	}
	at := Decode(inst)
	if at.C || at.Value != pc.Uint16() {
		return false
	}
	next, err := c.rom.Fetch(hack.WordOf(pc.Uint16() + 1))
	if err != nil {
		return false
	}
	jmp := Decode(next)
	return jmp.C && jmp.Jump == JMP && jmp.Dest&DestA == 0
}

// Reset sets the program counter to 0 and clears the data memory. The A and
// D registers are left untouched.
//
func (c *Computer) Reset() {
	c.cpu.Reset()
	c.mem.Reset()
	c.cycles = 0
}

// Peek returns the word at the given data memory address.
//
func (c *Computer) Peek(address uint16) (hack.Word, error) {
	return c.mem.Load(hack.Word{}, false, hack.WordOf(address))
}

// Poke writes v at the given data memory address.
//
func (c *Computer) Poke(address uint16, v hack.Word) error {
	_, err := c.mem.Load(v, true, hack.WordOf(address))
	return err
}

// SetKey sets the value of the keyboard register.
//
func (c *Computer) SetKey(key hack.Word) { c.mem.SetKey(key) }

// A returns the value of the A register.
//
func (c *Computer) A() hack.Word { return c.cpu.A() }

// D returns the value of the D register.
//
func (c *Computer) D() hack.Word { return c.cpu.D() }

// PC returns the value of the program counter.
//
func (c *Computer) PC() hack.Word { return c.cpu.PC() }

// Cycles returns the number of clock cycles run since the last reset.
//
func (c *Computer) Cycles() uint64 { return c.cycles }
