// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command hackrun loads a .hack program into a Hack computer, runs it and
// prints the CPU registers and a range of the data memory.
//
// Usage:
//
//	hackrun [-config run.cue] [-cycles n] [-trace trace.json] [-log level] [-dump from:count] program.hack
//
// By default the program runs until it reaches an end of program loop
// (@END; 0;JMP). When -trace is set, every clock cycle is logged as JSON to
// the given file.
//
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/db47h/hack/computer"
	"github.com/db47h/hack/internal/hackfile"
	"github.com/pkg/errors"
	slogmulti "github.com/samber/slog-multi"
	"golang.org/x/term"
)

var level = new(slog.LevelVar)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == flag.ErrHelp:
		os.Exit(2)
	case err != nil:
		slog.Error("hackrun", "error", err)
		os.Exit(1)
	}
}

func run(args []string, stdout *os.File, stderr io.Writer) error {
	var flags config
	var cfgFile string
	fs := flag.NewFlagSet("hackrun", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfgFile, "config", "", "load settings from CUE `file`")
	fs.IntVar(&flags.Cycles, "cycles", -1, "run at most `n` clock cycles; negative runs until the program halts")
	fs.StringVar(&flags.Trace, "trace", "", "log every clock cycle as JSON to `file`")
	fs.StringVar(&flags.Log, "log", "info", "log `level` (debug, info, warn, error)")
	fs.StringVar(&flags.Dump, "dump", "0:16", "data memory `range` to print, as from:count")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: hackrun [flags] program.hack\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := defaultConfig()
	if cfgFile != "" {
		if err := loadConfig(cfgFile, &cfg); err != nil {
			return err
		}
	}
	cfg.merge(fs, &flags)
	if cfg.Program == "" {
		fs.Usage()
		return errors.New("no program file")
	}
	l, err := cfg.level()
	if err != nil {
		return err
	}
	level.Set(l)
	from, count, err := cfg.dumpRange()
	if err != nil {
		return err
	}

	handlers := []slog.Handler{slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})}
	if cfg.Trace != "" {
		f, err := os.Create(cfg.Trace)
		if err != nil {
			return errors.Wrap(err, "create trace file")
		}
		defer f.Close()
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	log := slog.New(slogmulti.Fanout(handlers...))

	prog, err := hackfile.ReadFile(cfg.Program)
	if err != nil {
		return err
	}
	c := computer.New(computer.WithLogger(log))
	if err = c.LoadProgram(prog); err != nil {
		return err
	}
	log.Info("loaded", "program", cfg.Program, "instructions", len(prog))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	n, err := c.Run(ctx, cfg.Cycles)
	if err != nil && err != context.Canceled {
		return errors.Wrapf(err, "after %d cycles", n)
	}
	log.Info("done", "cycles", n, "halted", c.Halted())

	return dump(stdout, term.IsTerminal(int(stdout.Fd())), c, from, count)
}

// dump prints the registers and count words of data memory starting at from.
// On a terminal the output is a table, otherwise one key=value per line.
//
func dump(w io.Writer, table bool, c *computer.Computer, from, count uint16) error {
	type row struct {
		name string
		v    int16
		bits string
	}
	rows := []row{
		{"A", c.A().Int16(), c.A().String()},
		{"D", c.D().Int16(), c.D().String()},
		{"PC", c.PC().Int16(), c.PC().String()},
	}
	for i := uint32(0); i < uint32(count); i++ {
		a := uint32(from) + i
		if a > computer.Keyboard {
			break
		}
		v, err := c.Peek(uint16(a))
		if err != nil {
			return err
		}
		rows = append(rows, row{fmt.Sprintf("RAM[%d]", a), v.Int16(), v.String()})
	}

	if !table {
		for _, r := range rows {
			if _, err := fmt.Fprintf(w, "%s=%d\n", r.name, r.v); err != nil {
				return err
			}
		}
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%s\t\n", r.name, r.v, r.bits)
	}
	return tw.Flush()
}
