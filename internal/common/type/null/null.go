// Released under an MIT license. See LICENSE.

// Package null provides brine's nil value.
package null

import (
	"github.com/brine-lang/brine/internal/common"
	"github.com/brine-lang/brine/internal/common/interface/cell"
	"github.com/brine-lang/brine/internal/common/interface/literal"
	"github.com/brine-lang/brine/internal/common/interface/ordered"
)

const name = "nil"

// T (null) is the type of the nil value. There is only one.
type T struct{}

type null = T

// Nil is the nil value. It is also used to mark the end of a list.
var Nil cell.I = &null{} //nolint:gochecknoglobals

// Is returns true if c is nil.
func Is(c cell.I) bool {
	return c == Nil
}

// Compare returns 0 if c is nil. Nil is not ordered with respect to anything else.
func (n *null) Compare(c cell.I) (int, bool) {
	return 0, Is(c)
}

// Equal returns true if c is nil.
func (n *null) Equal(c cell.I) bool {
	return Is(c)
}

// Literal returns the literal representation of nil.
func (n *null) Literal() string {
	return name
}

// Name returns the type name for nil.
func (n *null) Name() string {
	return name
}

// String returns the text of nil.
func (n *null) String() string {
	return name
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t null

	// The null type is a cell.
	_ = cell.I(&t)

	// The null type has a literal representation.
	_ = literal.I(&t)

	// The null type is ordered.
	_ = ordered.I(&t)

	// The null type is a stringer.
	_ = common.Stringer(&t)
}
