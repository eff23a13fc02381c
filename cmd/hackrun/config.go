// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"flag"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/pkg/errors"
)

// config holds the settings of a run. It is loaded from an optional CUE file
// and overridden by the command line flags that are explicitly set.
//
type config struct {
	Program string `json:"program"`
	Cycles  int    `json:"cycles"`
	Trace   string `json:"trace"`
	Log     string `json:"log"`
	Dump    string `json:"dump"`
}

const configSchema = `
program?: string
cycles?:  int
trace?:   string
log?:     "debug" | "info" | "warn" | "error"
dump?:    =~"^[^:]+:[^:]+$"
`

func defaultConfig() config {
	return config{
		Cycles: -1,
		Log:    "info",
		Dump:   "0:16",
	}
}

// loadConfig reads a CUE configuration file into cfg. Fields missing from the
// file are left untouched.
//
func loadConfig(name string, cfg *config) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return errors.Wrap(err, "read config")
	}
	return parseConfig(name, data, cfg)
}

func parseConfig(name string, data []byte, cfg *config) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString("close({" + configSchema + "})")
	if err := schema.Err(); err != nil {
		return errors.Wrap(err, "config schema")
	}
	v := ctx.CompileBytes(data, cue.Filename(name))
	if err := v.Err(); err != nil {
		return errors.Wrapf(err, "parse %s", name)
	}
	v = schema.Unify(v)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return errors.Wrapf(err, "validate %s", name)
	}
	return errors.Wrapf(v.Decode(cfg), "decode %s", name)
}

// merge overrides cfg with the flags of fs that were set on the command line.
//
func (cfg *config) merge(fs *flag.FlagSet, flags *config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "cycles":
			cfg.Cycles = flags.Cycles
		case "trace":
			cfg.Trace = flags.Trace
		case "log":
			cfg.Log = flags.Log
		case "dump":
			cfg.Dump = flags.Dump
		}
	})
	if fs.NArg() > 0 {
		cfg.Program = fs.Arg(0)
	}
}

func (cfg *config) level() (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(cfg.Log))
	return l, errors.Wrapf(err, "log level %q", cfg.Log)
}

// dumpRange parses a "from:count" memory range.
//
func (cfg *config) dumpRange() (from, count uint16, err error) {
	f, c, ok := strings.Cut(cfg.Dump, ":")
	if !ok {
		return 0, 0, errors.Errorf("invalid dump range %q: expected from:count", cfg.Dump)
	}
	fv, err := strconv.ParseUint(f, 0, 16)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid dump range %q", cfg.Dump)
	}
	cv, err := strconv.ParseUint(c, 0, 16)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid dump range %q", cfg.Dump)
	}
	return uint16(fv), uint16(cv), nil
}
