// Released under an MIT license. See LICENSE.

// Package unsigned provides brine's unsigned integer type.
package unsigned

import (
	"strconv"

	"github.com/brine-lang/brine/internal/common"
	"github.com/brine-lang/brine/internal/common/interface/cell"
	"github.com/brine-lang/brine/internal/common/interface/literal"
	"github.com/brine-lang/brine/internal/common/interface/ordered"
)

const name = "uint"

// T (unsigned) wraps Go's uint64 type.
type T uint64

type unsigned = T

// New creates a unsigned cell.
func New(v uint64) cell.I {
	n := unsigned(v)

	return &n
}

// Is returns true if c is a unsigned.
func Is(c cell.I) bool {
	_, ok := c.(*unsigned)

	return ok
}

// To returns a *T if c is a unsigned; Otherwise it panics.
func To(c cell.I) *unsigned {
	if t, ok := c.(*unsigned); ok {
		return t
	}

	panic("not a " + name)
}

// Value returns the uint64 wrapped by c. If c is not a unsigned, it panics.
func Value(c cell.I) uint64 {
	return uint64(*To(c))
}

// Compare orders c relative to n, if c is also a unsigned.
func (n *unsigned) Compare(c cell.I) (int, bool) {
	if !Is(c) {
		return 0, false
	}

	return ordered.Of(uint64(*n), Value(c)), true
}

// Equal returns true if c is a unsigned with the same value as n.
func (n *unsigned) Equal(c cell.I) bool {
	return Is(c) && uint64(*n) == Value(c)
}

// Literal returns the literal representation of the unsigned n.
func (n *unsigned) Literal() string {
	return n.String()
}

// Name returns the type name for the unsigned n.
func (n *unsigned) Name() string {
	return name
}

// String returns the decimal text of the unsigned n.
func (n *unsigned) String() string {
	return strconv.FormatUint(uint64(*n), 10)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t unsigned

	// The unsigned type is a cell.
	_ = cell.I(&t)

	// The unsigned type has a literal representation.
	_ = literal.I(&t)

	// The unsigned type is ordered.
	_ = ordered.I(&t)

	// The unsigned type is a stringer.
	_ = common.Stringer(&t)
}
