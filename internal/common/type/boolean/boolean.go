// Released under an MIT license. See LICENSE.

// Package boolean provides brine's boolean value type.
package boolean

import (
	"github.com/brine-lang/brine/internal/common"
	"github.com/brine-lang/brine/internal/common/interface/cell"
	"github.com/brine-lang/brine/internal/common/interface/literal"
	"github.com/brine-lang/brine/internal/common/interface/ordered"
)

const name = "bool"

// T (boolean) wraps Go's bool type.
type T bool

type boolean = T

//nolint:gochecknoglobals
var (
	False = f()
	True  = t()
)

// Bool returns the boolean cell for the bool b.
func Bool(b bool) cell.I {
	if b {
		return True
	}

	return False
}

// New creates a boolean from its text.
func New(s string) cell.I {
	b, ok := map[string]*boolean{
		"true":  True,
		"false": False,
	}[s]

	if ok {
		return b
	}

	panic(s + " is not true or false")
}

// Is returns true if c is a boolean.
func Is(c cell.I) bool {
	_, ok := c.(*boolean)

	return ok
}

// To returns a *T if c is a boolean; Otherwise it panics.
func To(c cell.I) *boolean {
	if t, ok := c.(*boolean); ok {
		return t
	}

	panic("not a " + name)
}

// Value returns the bool wrapped by c. If c is not a boolean, it panics.
func Value(c cell.I) bool {
	return To(c).Bool()
}

// Bool returns the boolean value of the boolean b.
func (b *boolean) Bool() bool {
	return bool(*b)
}

// Compare orders false before true.
func (b *boolean) Compare(c cell.I) (int, bool) {
	if !Is(c) {
		return 0, false
	}

	x, y := 0, 0
	if b.Bool() {
		x = 1
	}

	if To(c).Bool() {
		y = 1
	}

	return x - y, true
}

// Equal returns true if c is a boolean with a matching value.
func (b *boolean) Equal(c cell.I) bool {
	return Is(c) && b.Bool() == To(c).Bool()
}

// Literal returns the literal representation of the boolean b.
func (b *boolean) Literal() string {
	return b.String()
}

// Name returns the type name for the boolean b.
func (b *boolean) Name() string {
	return name
}

// String returns the text of the boolean b.
func (b *boolean) String() string {
	if bool(*b) {
		return "true"
	}

	return "false"
}

func f() *boolean {
	v := boolean(false)

	return &v
}

func t() *boolean {
	v := boolean(true)

	return &v
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t boolean

	// The boolean type is a cell.
	_ = cell.I(&t)

	// The boolean type has a literal representation.
	_ = literal.I(&t)

	// The boolean type is ordered.
	_ = ordered.I(&t)

	// The boolean type is a stringer.
	_ = common.Stringer(&t)
}
