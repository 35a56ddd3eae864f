// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of cons cells
// and end with nil. A chain of cons cells that ends with anything else is
// an improper list.
package list

import (
	"github.com/brine-lang/brine/internal/common/interface/cell"
	"github.com/brine-lang/brine/internal/common/type/null"
	"github.com/brine-lang/brine/internal/common/type/pair"
)

// New creates a new list composed of all of the elements in elements.
// The list is built back to front so the last element is innermost.
func New(elements ...cell.I) cell.I {
	return Dotted(null.Nil, elements...)
}

// Dotted creates a list of elements that ends with tail instead of nil.
func Dotted(tail cell.I, elements ...cell.I) cell.I {
	l := tail

	for i := len(elements) - 1; i >= 0; i-- {
		l = pair.Cons(elements[i], l)
	}

	return l
}

// IsProper returns true if c is nil or a chain of pairs that ends with nil.
// The list must be non-circular.
func IsProper(c cell.I) bool {
	_, tail := Values(c)

	return null.Is(tail)
}

// Length returns the number of pairs in the chain starting at c.
// The list must be non-circular.
func Length(c cell.I) int64 {
	var length int64

	for pair.Is(c) {
		length++

		c = pair.Cdr(c)
	}

	return length
}

// Reverse reverses list.
// A non-pair value where a pair is expected will cause a panic.
// The list must be non-circular.
func Reverse(list cell.I) cell.I {
	reversed := null.Nil

	for !null.Is(list) {
		reversed = pair.Cons(pair.Car(list), reversed)

		list = pair.Cdr(list)
	}

	return reversed
}

// Values returns the elements of the chain of pairs starting at c, in
// order, and the value that ends the chain. For a proper list, tail is nil.
// The list must be non-circular.
func Values(c cell.I) (elements []cell.I, tail cell.I) {
	for pair.Is(c) {
		elements = append(elements, pair.Car(c))

		c = pair.Cdr(c)
	}

	return elements, c
}
