// Released under an MIT license. See LICENSE.

// Package str provides brine's immutable string type.
package str

import (
	"strconv"
	"strings"

	"github.com/brine-lang/brine/internal/common"
	"github.com/brine-lang/brine/internal/common/interface/cell"
	"github.com/brine-lang/brine/internal/common/interface/literal"
	"github.com/brine-lang/brine/internal/common/interface/ordered"
)

const name = "str"

// T (str) wraps Go's string type. A *T is a shared handle to text that
// never changes.
type T string

type str = T

// New creates a new str cell.
func New(v string) cell.I {
	s := str(v)

	return &s
}

// Is returns true if c is a str.
func Is(c cell.I) bool {
	_, ok := c.(*str)

	return ok
}

// To returns a *T if c is a str; Otherwise it panics.
func To(c cell.I) *str {
	if t, ok := c.(*str); ok {
		return t
	}

	panic("not a " + name)
}

// Compare orders c relative to s, byte-wise, if c is also a str.
func (s *str) Compare(c cell.I) (int, bool) {
	if !Is(c) {
		return 0, false
	}

	return strings.Compare(s.String(), To(c).String()), true
}

// Equal returns true if the cell c wraps the same string and false otherwise.
func (s *str) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Literal returns the literal representation of the str s.
func (s *str) Literal() string {
	return strconv.Quote(string(*s))
}

// Name returns the name of the str type.
func (s *str) Name() string {
	return name
}

// String returns the text of the str s.
func (s *str) String() string {
	return string(*s)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a cell.
	_ = cell.I(&t)

	// The str type has a literal representation.
	_ = literal.I(&t)

	// The str type is ordered.
	_ = ordered.I(&t)

	// The str type is a stringer.
	_ = common.Stringer(&t)
}
