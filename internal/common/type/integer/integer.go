// Released under an MIT license. See LICENSE.

// Package integer provides brine's signed integer type.
package integer

import (
	"strconv"

	"github.com/brine-lang/brine/internal/common"
	"github.com/brine-lang/brine/internal/common/interface/cell"
	"github.com/brine-lang/brine/internal/common/interface/literal"
	"github.com/brine-lang/brine/internal/common/interface/ordered"
)

const name = "int"

// T (integer) wraps Go's int64 type.
type T int64

type integer = T

// New creates a integer cell.
func New(v int64) cell.I {
	n := integer(v)

	return &n
}

// Is returns true if c is a integer.
func Is(c cell.I) bool {
	_, ok := c.(*integer)

	return ok
}

// To returns a *T if c is a integer; Otherwise it panics.
func To(c cell.I) *integer {
	if t, ok := c.(*integer); ok {
		return t
	}

	panic("not a " + name)
}

// Value returns the int64 wrapped by c. If c is not a integer, it panics.
func Value(c cell.I) int64 {
	return int64(*To(c))
}

// Compare orders c relative to n, if c is also a integer.
func (n *integer) Compare(c cell.I) (int, bool) {
	if !Is(c) {
		return 0, false
	}

	return ordered.Of(int64(*n), Value(c)), true
}

// Equal returns true if c is a integer with the same value as n.
func (n *integer) Equal(c cell.I) bool {
	return Is(c) && int64(*n) == Value(c)
}

// Literal returns the literal representation of the integer n.
func (n *integer) Literal() string {
	return n.String()
}

// Name returns the type name for the integer n.
func (n *integer) Name() string {
	return name
}

// String returns the decimal text of the integer n.
func (n *integer) String() string {
	return strconv.FormatInt(int64(*n), 10)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t integer

	// The integer type is a cell.
	_ = cell.I(&t)

	// The integer type has a literal representation.
	_ = literal.I(&t)

	// The integer type is ordered.
	_ = ordered.I(&t)

	// The integer type is a stringer.
	_ = common.Stringer(&t)
}
