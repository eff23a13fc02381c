// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hackfile reads programs in the .hack text format: one instruction
// per line, written as 16 binary digits msb first. Blank lines, surrounding
// white space and // comments are ignored.
//
package hackfile

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/db47h/hack"
	"github.com/pkg/errors"
)

// ReadFile reads the program in the named file.
//
func ReadFile(name string) ([]hack.Word, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "open program")
	}
	defer f.Close()
	return Parse(name, f)
}

// Parse reads a program from r. name is only used in error messages.
//
func Parse(name string, r io.Reader) ([]hack.Word, error) {
	var prog []hack.Word
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		w, ok, err := parseLine(s.Text())
		if err != nil {
			return nil, parseError(name, line, err)
		}
		if ok {
			prog = append(prog, w)
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}
	return prog, nil
}

type posError struct {
	col int
	msg string
}

func (e *posError) Error() string { return e.msg }

// parseLine returns the instruction on the line, if any.
//
func parseLine(l string) (hack.Word, bool, error) {
	var w hack.Word
	if i := strings.Index(l, "//"); i >= 0 {
		l = l[:i]
	}
	start := strings.IndexFunc(l, func(r rune) bool { return !unicode.IsSpace(r) })
	if start < 0 {
		return w, false, nil
	}
	digits := strings.TrimRightFunc(l[start:], unicode.IsSpace)
	for i, r := range digits {
		if r != '0' && r != '1' {
			return w, false, &posError{start + i + 1, "expected binary digit, got " + quoteRune(r)}
		}
	}
	if len(digits) != hack.Size {
		return w, false, &posError{start + 1, "expected 16 binary digits"}
	}
	w, err := hack.ParseWord(digits)
	return w, true, err
}

func quoteRune(r rune) string {
	return "'" + string(r) + "'"
}

func parseError(name string, line int, err error) error {
	if pe, ok := err.(*posError); ok {
		return errors.Errorf("%s:%d:%d: %s", name, line, pe.col, pe.msg)
	}
	return errors.Wrapf(err, "%s:%d", name, line)
}
