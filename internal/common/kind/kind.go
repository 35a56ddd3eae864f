// Released under an MIT license. See LICENSE.

// Package kind identifies the variant of a brine value.
package kind

import (
	"github.com/brine-lang/brine/internal/common/interface/cell"
	"github.com/brine-lang/brine/internal/common/type/boolean"
	"github.com/brine-lang/brine/internal/common/type/callable"
	"github.com/brine-lang/brine/internal/common/type/char"
	"github.com/brine-lang/brine/internal/common/type/dict"
	"github.com/brine-lang/brine/internal/common/type/float"
	"github.com/brine-lang/brine/internal/common/type/integer"
	"github.com/brine-lang/brine/internal/common/type/null"
	"github.com/brine-lang/brine/internal/common/type/pair"
	"github.com/brine-lang/brine/internal/common/type/str"
	"github.com/brine-lang/brine/internal/common/type/sym"
	"github.com/brine-lang/brine/internal/common/type/unsigned"
	"github.com/brine-lang/brine/internal/common/type/vec"
)

// T (kind) is the tag for one of brine's value variants.
type T uint8

const (
	Invalid T = iota
	Nil
	Bool
	Char
	Uint
	Int
	Float
	Str
	Sym
	Pair
	Dict
	Vec
	Callable

	// Any is not a variant. It matches every value when validating arguments.
	Any
)

//nolint:gochecknoglobals
var names = [...]string{
	Invalid:  "invalid",
	Nil:      "nil",
	Bool:     "bool",
	Char:     "char",
	Uint:     "uint",
	Int:      "int",
	Float:    "float",
	Str:      "str",
	Sym:      "sym",
	Pair:     "pair",
	Dict:     "dict",
	Vec:      "vec",
	Callable: "callable",
	Any:      "any",
}

// Of returns the kind of the cell c.
func Of(c cell.I) T {
	switch {
	case c == nil:
		return Invalid
	case null.Is(c):
		return Nil
	case boolean.Is(c):
		return Bool
	case char.Is(c):
		return Char
	case unsigned.Is(c):
		return Uint
	case integer.Is(c):
		return Int
	case float.Is(c):
		return Float
	case str.Is(c):
		return Str
	case sym.Is(c):
		return Sym
	case pair.Is(c):
		return Pair
	case dict.Is(c):
		return Dict
	case vec.Is(c):
		return Vec
	case callable.Is(c):
		return Callable
	}

	return Invalid
}

// IsHandle returns true if values of kind k refer to shared heap state.
func (k T) IsHandle() bool {
	switch k {
	case Str, Sym, Pair, Dict, Vec, Callable:
		return true
	}

	return false
}

// IsMutable returns true if values of kind k refer to lock-guarded state.
func (k T) IsMutable() bool {
	return k == Dict || k == Vec
}

// IsScalar returns true if values of kind k are copied by value.
func (k T) IsScalar() bool {
	switch k {
	case Nil, Bool, Char, Uint, Int, Float:
		return true
	}

	return false
}

// Matches returns true if the cell c is acceptable where kind k is expected.
func (k T) Matches(c cell.I) bool {
	if k == Any {
		return c != nil
	}

	return Of(c) == k
}

func (k T) String() string {
	if int(k) < len(names) {
		return names[k]
	}

	return names[Invalid]
}

// Parse returns the kind with the name s.
func Parse(s string) (T, bool) {
	for k, n := range names {
		if n == s && T(k) != Invalid {
			return T(k), true
		}
	}

	return Invalid, false
}
