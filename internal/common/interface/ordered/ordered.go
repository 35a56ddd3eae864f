// Released under an MIT license. See LICENSE.

// Package ordered defines the interface for brine types with a natural order.
package ordered

import (
	"github.com/brine-lang/brine/internal/common/interface/cell"
)

// I (ordered) is anything that can be compared with a cell of the same type.
// Compare returns -1, 0 or +1 and true, or false if the two are unordered.
type I interface {
	Compare(c cell.I) (int, bool)
}

// Compare orders a and b. The result is only meaningful if ok is true.
func Compare(a, b cell.I) (n int, ok bool) {
	o, isOrdered := a.(I)
	if !isOrdered {
		return 0, false
	}

	return o.Compare(b)
}

// Less returns true if a and b are ordered and a comes before b.
func Less(a, b cell.I) bool {
	n, ok := Compare(a, b)

	return ok && n < 0
}

// Of returns -1, 0 or +1 for the ordered operands a and b.
func Of[T int64 | uint64 | float64 | string | rune](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}
