// Released under an MIT license. See LICENSE.

// Package float provides brine's floating point type.
package float

import (
	"math"
	"strconv"

	"github.com/brine-lang/brine/internal/common"
	"github.com/brine-lang/brine/internal/common/interface/cell"
	"github.com/brine-lang/brine/internal/common/interface/literal"
	"github.com/brine-lang/brine/internal/common/interface/ordered"
)

const name = "float"

// T (float) wraps Go's float64 type.
type T float64

type float = T

// New creates a float cell.
func New(v float64) cell.I {
	f := float(v)

	return &f
}

// Is returns true if c is a float.
func Is(c cell.I) bool {
	_, ok := c.(*float)

	return ok
}

// To returns a *T if c is a float; Otherwise it panics.
func To(c cell.I) *float {
	if t, ok := c.(*float); ok {
		return t
	}

	panic("not a " + name)
}

// Value returns the float64 wrapped by c. If c is not a float, it panics.
func Value(c cell.I) float64 {
	return float64(*To(c))
}

// Compare orders c relative to f. NaN is unordered.
func (f *float) Compare(c cell.I) (int, bool) {
	if !Is(c) {
		return 0, false
	}

	a, b := float64(*f), Value(c)
	if math.IsNaN(a) || math.IsNaN(b) {
		return 0, false
	}

	return ordered.Of(a, b), true
}

// Equal returns true if c is a float with the same value as f.
// As with Go's == operator, NaN is not equal to anything.
func (f *float) Equal(c cell.I) bool {
	return Is(c) && float64(*f) == Value(c)
}

// Literal returns the literal representation of the float f.
func (f *float) Literal() string {
	return f.String()
}

// Name returns the type name for the float f.
func (f *float) Name() string {
	return name
}

// String returns the shortest decimal text, without an exponent, that
// reads back as f.
func (f *float) String() string {
	v := float64(*f)

	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t float

	// The float type is a cell.
	_ = cell.I(&t)

	// The float type has a literal representation.
	_ = literal.I(&t)

	// The float type is ordered.
	_ = ordered.I(&t)

	// The float type is a stringer.
	_ = common.Stringer(&t)
}
