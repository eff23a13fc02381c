// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command chiptree writes the composition tree of a chip as a graphviz
// graph on stdout.
//
//	chiptree -chip ram8 | dot -Tsvg > ram8.svg
//
// Larger RAM tiers are not supported: their graphs run into the hundreds of
// thousands of nodes.
//
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/db47h/hack"
	hl "github.com/db47h/hack/hwlib"
	"github.com/pkg/errors"
)

// chips returns a new chip for each supported name. Each chip gets a few
// words loaded so that the graph shows some state.
//
var chips = map[string]func() interface{}{
	"register": func() interface{} {
		var r hl.Register
		r.Load(hack.WordOf(0x2a), true)
		return &r
	},
	"ram8": func() interface{} {
		var r hl.Ram8
		r.Load(hack.WordOf(1), true, hack.Addr3(1))
		return &r
	},
	"ram64": func() interface{} {
		var r hl.Ram64
		r.Load(hack.WordOf(9), true, hack.Addr6(9))
		return &r
	},
	"pc": func() interface{} {
		var p hl.PC
		p.Load(hack.Word{}, false, true, false)
		return &p
	},
}

func chipNames() string {
	names := make([]string, 0, len(chips))
	for n := range chips {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func writeTree(w io.Writer, name string) error {
	newChip, ok := chips[name]
	if !ok {
		return errors.Errorf("unknown chip %q (expected one of %s)", name, chipNames())
	}
	memviz.Map(w, newChip())
	return nil
}

func main() {
	name := flag.String("chip", "register", "chip to graph: "+chipNames())
	flag.Parse()
	if err := writeTree(os.Stdout, *name); err != nil {
		fmt.Fprintln(os.Stderr, "chiptree:", err)
		os.Exit(1)
	}
}
