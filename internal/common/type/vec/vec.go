// Released under an MIT license. See LICENSE.

// Package vec provides brine's shared, mutable vector type.
//
// A vector has two levels of locking. The outer lock guards the length
// and layout of the vector. Each element is held in its own slot with its
// own lock. Reading or replacing an element only takes the outer lock for
// reading, so operations on different elements do not block each other.
// Inserting, removing, or resizing takes the outer lock for writing.
//
// Locks are always acquired outer before inner, and no operation holds the
// locks of two vectors at once.
package vec

import (
	"strings"

	"github.com/brine-lang/brine/internal/common/interface/cell"
	"github.com/brine-lang/brine/internal/common/interface/literal"
	"github.com/brine-lang/brine/internal/common/interface/ordered"
	"github.com/brine-lang/brine/internal/common/struct/guard"
	"github.com/brine-lang/brine/internal/common/struct/slot"
	"github.com/brine-lang/brine/internal/common/type/null"
)

const name = "vec"

// T (vec) is an ordered, growable sequence of cells.
type T struct {
	*guard.T
	slots []*slot.T
}

type vec = T

// New creates a vec holding values.
func New(values ...cell.I) *vec {
	v := &vec{T: guard.New(name)}

	v.slots = make([]*slot.T, len(values))
	for i, c := range values {
		v.slots[i] = slot.New(c)
	}

	return v
}

// Is returns true if c is a vec.
func Is(c cell.I) bool {
	_, ok := c.(*vec)

	return ok
}

// To returns a *T if c is a vec; Otherwise it panics.
func To(c cell.I) *vec {
	if t, ok := c.(*vec); ok {
		return t
	}

	panic("not a " + name)
}

// Append adds values to the end of the vec v.
func (v *vec) Append(values ...cell.I) {
	v.Write(func() {
		for _, c := range values {
			v.slots = append(v.slots, slot.New(c))
		}
	})
}

// Compare orders the vec v and c element by element. If any pair of
// elements compared is unordered, so are the vecs.
func (v *vec) Compare(c cell.I) (int, bool) {
	if !Is(c) {
		return 0, false
	}

	a := v.snapshot()
	b := To(c).snapshot()

	for i := 0; i < len(a) && i < len(b); i++ {
		n, ok := ordered.Compare(a[i].Get(), b[i].Get())
		if !ok {
			return 0, false
		}

		if n != 0 {
			return n, true
		}
	}

	return ordered.Of(int64(len(a)), int64(len(b))), true
}

// Equal returns true if c is a vec of the same length as v with equal elements.
func (v *vec) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	a := v.snapshot()
	b := To(c).snapshot()

	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !a[i].Get().Equal(b[i].Get()) {
			return false
		}
	}

	return true
}

// Get returns the element at index i.
func (v *vec) Get(i int) (c cell.I, ok bool) {
	v.Read(func() {
		if i >= 0 && i < len(v.slots) {
			c, ok = v.slots[i].Get(), true
		}
	})

	return c, ok
}

// Insert places c at index i, moving later elements up.
// Any index from 0 to the length of v, inclusive, is valid.
func (v *vec) Insert(i int, c cell.I) (ok bool) {
	v.Write(func() {
		if i < 0 || i > len(v.slots) {
			return
		}

		v.slots = append(v.slots, nil)
		copy(v.slots[i+1:], v.slots[i:])
		v.slots[i] = slot.New(c)

		ok = true
	})

	return ok
}

// Len returns the number of elements in the vec v.
func (v *vec) Len() (n int) {
	v.Read(func() {
		n = len(v.slots)
	})

	return n
}

// Literal returns the literal representation of the vec v.
func (v *vec) Literal() string {
	return v.Render(literal.Seen{})
}

// Name returns the type name for the vec v.
func (v *vec) Name() string {
	return name
}

// Remove deletes the element at index i and returns it.
func (v *vec) Remove(i int) (c cell.I, ok bool) {
	v.Write(func() {
		if i < 0 || i >= len(v.slots) {
			return
		}

		c, ok = v.slots[i].Get(), true

		copy(v.slots[i:], v.slots[i+1:])
		v.slots[len(v.slots)-1] = nil
		v.slots = v.slots[:len(v.slots)-1]
	})

	return c, ok
}

// Render returns the literal representation of the vec v, given seen.
func (v *vec) Render(seen literal.Seen) string {
	if !seen.Enter(v) {
		return literal.Elided
	}
	defer seen.Leave(v)

	values := v.Values()
	if len(values) == 0 {
		return "(" + name + ")"
	}

	s := make([]string, len(values))
	for i, c := range values {
		s[i] = literal.Render(c, seen)
	}

	return "(" + name + " " + strings.Join(s, " ") + ")"
}

// Resize grows or shrinks the vec v to n elements. New elements are nil.
func (v *vec) Resize(n int) {
	if n < 0 {
		n = 0
	}

	v.Write(func() {
		for i := n; i < len(v.slots); i++ {
			v.slots[i] = nil
		}

		for len(v.slots) < n {
			v.slots = append(v.slots, slot.New(null.Nil))
		}

		v.slots = v.slots[:n]
	})
}

// Set replaces the element at index i with c.
func (v *vec) Set(i int, c cell.I) (ok bool) {
	v.Read(func() {
		if i >= 0 && i < len(v.slots) {
			v.slots[i].Set(c)

			ok = true
		}
	})

	return ok
}

// String returns the text representation of the vec v.
func (v *vec) String() string {
	return v.Literal()
}

// Update replaces the element at index i with f applied to it. Other
// readers and writers of that element wait until f returns.
func (v *vec) Update(i int, f func(cell.I) cell.I) (c cell.I, ok bool) {
	v.Read(func() {
		if i >= 0 && i < len(v.slots) {
			c, ok = v.slots[i].Update(f), true
		}
	})

	return c, ok
}

// Values returns a copy of the elements of the vec v.
func (v *vec) Values() (values []cell.I) {
	v.Read(func() {
		values = make([]cell.I, len(v.slots))
		for i, s := range v.slots {
			values[i] = s.Get()
		}
	})

	return values
}

func (v *vec) snapshot() (slots []*slot.T) {
	v.Read(func() {
		slots = make([]*slot.T, len(v.slots))
		copy(slots, v.slots)
	})

	return slots
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t vec

	// The vec type is a cell.
	_ = cell.I(&t)

	// The vec type has a literal representation.
	_ = literal.I(&t)

	// The vec type contains other cells.
	_ = literal.Nested(&t)

	// The vec type is ordered.
	_ = ordered.I(&t)
}
