// Released under an MIT license. See LICENSE.

// Package pair provides brine's cons cell type.
package pair

import (
	"strings"

	"github.com/brine-lang/brine/internal/common/interface/cell"
	"github.com/brine-lang/brine/internal/common/interface/literal"
	"github.com/brine-lang/brine/internal/common/type/null"
)

const name = "pair"

// T (pair) is a cons cell. Its fields are fixed when it is created.
type T struct {
	car cell.I
	cdr cell.I
}

type pair = T

// Equal returns true if c is a pair with elements that are equal to p's.
func (p *pair) Equal(c cell.I) bool {
	var q *pair

	for {
		var ok bool

		q, ok = c.(*pair)
		if !ok {
			return false
		}

		if !p.car.Equal(q.car) {
			return false
		}

		next, ok := p.cdr.(*pair)
		if !ok {
			break
		}

		p, c = next, q.cdr
	}

	return p.cdr.Equal(q.cdr)
}

// Literal returns the literal representation of the pair p.
func (p *pair) Literal() string {
	return p.Render(literal.Seen{})
}

// Name returns the name for a pair type.
func (p *pair) Name() string {
	return name
}

// Render returns the literal representation of the pair p, given seen.
func (p *pair) Render(seen literal.Seen) string {
	var b strings.Builder

	b.WriteString("'(")

	for start := true; ; start = false {
		if !start {
			b.WriteByte(' ')
		}

		b.WriteString(literal.Render(p.car, seen))

		next, ok := p.cdr.(*pair)
		if ok {
			p = next

			continue
		}

		if !null.Is(p.cdr) {
			b.WriteString(" . ")
			b.WriteString(literal.Render(p.cdr, seen))
		}

		break
	}

	b.WriteByte(')')

	return b.String()
}

// String returns the text representation of the pair p.
func (p *pair) String() string {
	return p.Literal()
}

// Functions specific to pair.

// Car returns the car/head/first member of the pair c.
// If c is not a pair, this function will panic.
func Car(c cell.I) cell.I {
	return To(c).car
}

// Cdr returns the cdr/tail/rest member of the pair c.
// If c is not a pair, this function will panic.
func Cdr(c cell.I) cell.I {
	return To(c).cdr
}

// Cadr returns the car of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Cadr(c cell.I) cell.I {
	return To(To(c).cdr).car
}

// Cddr returns the cdr of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Cddr(c cell.I) cell.I {
	return To(To(c).cdr).cdr
}

// Cons conses h and t together to form a new pair.
func Cons(h, t cell.I) cell.I {
	return &pair{car: h, cdr: t}
}

// Is returns true if c is a pair.
func Is(c cell.I) bool {
	_, ok := c.(*pair)

	return ok
}

// To returns a *T if c is a pair; Otherwise it panics.
func To(c cell.I) *pair {
	if t, ok := c.(*pair); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t pair

	// The pair type is a cell.
	_ = cell.I(&t)

	// The pair type has a literal representation.
	_ = literal.I(&t)

	// The pair type contains other cells.
	_ = literal.Nested(&t)
}
