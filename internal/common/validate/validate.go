// Released under an MIT license. See LICENSE.

// Package validate checks the arguments passed to native functions.
package validate

import (
	"fmt"

	"github.com/brine-lang/brine/internal/common/interface/cell"
	"github.com/brine-lang/brine/internal/common/interface/literal"
	"github.com/brine-lang/brine/internal/common/kind"
)

// ArityError reports a call with the wrong number of arguments.
type ArityError struct {
	Name     string
	Expected int
	Actual   int
}

func (e *ArityError) Error() string {
	s := Count(e.Expected, "argument", "s")

	return fmt.Sprintf("%s: expected %s, passed %d", e.Name, s, e.Actual)
}

// TypeError reports an argument, or result, of the wrong kind.
// Position counts from 1. It is 0 for a result.
type TypeError struct {
	Name     string
	Position int
	Expected kind.T
	Actual   cell.I
}

func (e *TypeError) Error() string {
	what := "result"
	if e.Position > 0 {
		what = fmt.Sprintf("argument %d", e.Position)
	}

	return fmt.Sprintf(
		"%s: %s: expected %s, passed %s %s",
		e.Name, what, e.Expected, kind.Of(e.Actual), describe(e.Actual),
	)
}

// RangeError reports an index outside of a container.
type RangeError struct {
	Name   string
	Index  int64
	Length int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0, %d)", e.Name, e.Index, e.Length)
}

// Fixed checks that exactly n arguments were passed.
func Fixed(name string, args []cell.I, n int) error {
	if len(args) != n {
		return &ArityError{Name: name, Expected: n, Actual: len(args)}
	}

	return nil
}

// Kinds checks each argument, in order, against the expected kinds. It
// stops at the first argument that does not match. There must be at
// least as many expected kinds as arguments.
func Kinds(name string, args []cell.I, expected []kind.T) error {
	for i, c := range args {
		if !expected[i].Matches(c) {
			return &TypeError{Name: name, Position: i + 1, Expected: expected[i], Actual: c}
		}
	}

	return nil
}

// Count returns n followed by label, pluralized with p when n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

func describe(c cell.I) string {
	if c == nil {
		return "<nil>"
	}

	return literal.String(c)
}
