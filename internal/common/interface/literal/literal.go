// Released under an MIT license. See LICENSE.

// Package literal defines the interface for brine types that can be expressed as literals.
package literal

import (
	"github.com/brine-lang/brine/internal/common/interface/cell"
)

// Elided is rendered in place of a container that is already being rendered.
const Elided = "..."

// I (literal) is any type that can be expressed as a literal.
type I interface {
	Literal() string
}

// Nested is any type whose literal representation contains other cells.
// Implementations pass seen along when rendering the cells they contain.
type Nested interface {
	Render(seen Seen) string
}

// Seen records the mutable containers on the current rendering path.
type Seen map[cell.I]struct{}

// Enter marks c as being rendered. It returns false if c is already on the path.
func (s Seen) Enter(c cell.I) bool {
	if _, ok := s[c]; ok {
		return false
	}

	s[c] = struct{}{}

	return true
}

// Leave removes c from the rendering path.
func (s Seen) Leave(c cell.I) {
	delete(s, c)
}

// Render returns the literal representation of c, given the containers in seen.
func Render(c cell.I, seen Seen) string {
	if n, ok := c.(Nested); ok {
		return n.Render(seen)
	}

	return String(c)
}

// String returns the literal string representation for a cell, if possible.
func String(c cell.I) string {
	if n, ok := c.(Nested); ok {
		return n.Render(Seen{})
	}

	l, ok := c.(I)
	if !ok {
		// Not all cell types can be expressed as literals.
		panic(c.Name() + " does not have a literal representation")
	}

	return l.Literal()
}
