// Released under an MIT license. See LICENSE.

// Package char provides brine's character type.
package char

import (
	"strconv"

	"github.com/brine-lang/brine/internal/common"
	"github.com/brine-lang/brine/internal/common/interface/cell"
	"github.com/brine-lang/brine/internal/common/interface/literal"
	"github.com/brine-lang/brine/internal/common/interface/ordered"
)

const name = "char"

// T (char) wraps Go's rune type.
type T rune

type char = T

// New creates a char cell.
func New(r rune) cell.I {
	c := char(r)

	return &c
}

// Is returns true if c is a char.
func Is(c cell.I) bool {
	_, ok := c.(*char)

	return ok
}

// To returns a *T if c is a char; Otherwise it panics.
func To(c cell.I) *char {
	if t, ok := c.(*char); ok {
		return t
	}

	panic("not a " + name)
}

// Compare orders chars by code point.
func (ch *char) Compare(c cell.I) (int, bool) {
	if !Is(c) {
		return 0, false
	}

	return ordered.Of(ch.Rune(), To(c).Rune()), true
}

// Equal returns true if c is a char with the same code point.
func (ch *char) Equal(c cell.I) bool {
	return Is(c) && ch.Rune() == To(c).Rune()
}

// Literal returns the literal representation of the char ch. It is
// distinct from the literal representation of a one character string.
func (ch *char) Literal() string {
	return "(" + name + " " + strconv.Quote(ch.String()) + ")"
}

// Name returns the type name for the char ch.
func (ch *char) Name() string {
	return name
}

// Rune returns the code point of the char ch.
func (ch *char) Rune() rune {
	return rune(*ch)
}

// String returns the char ch as text.
func (ch *char) String() string {
	return string(ch.Rune())
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t char

	// The char type is a cell.
	_ = cell.I(&t)

	// The char type has a literal representation.
	_ = literal.I(&t)

	// The char type is ordered.
	_ = ordered.I(&t)

	// The char type is a stringer.
	_ = common.Stringer(&t)
}
