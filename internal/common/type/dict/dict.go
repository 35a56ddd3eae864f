// Released under an MIT license. See LICENSE.

// Package dict provides brine's shared, mutable name to value mapping type.
// Every access to a dict, read or write, goes through a single lock.
package dict

import (
	"strconv"
	"strings"

	"github.com/google/btree"

	"github.com/brine-lang/brine/internal/common/interface/cell"
	"github.com/brine-lang/brine/internal/common/interface/literal"
	"github.com/brine-lang/brine/internal/common/struct/guard"
)

const (
	degree = 8
	name   = "dict"
)

type entry struct {
	key   string
	value cell.I
}

func less(a, b entry) bool {
	return a.key < b.key
}

// T (dict) maps names to values. Entries are kept in key order.
type T struct {
	*guard.T
	tree *btree.BTreeG[entry]
}

type dict = T

// New creates a new, empty dict.
func New() *dict {
	return &dict{
		T:    guard.New(name),
		tree: btree.NewG[entry](degree, less),
	}
}

// From creates a new dict holding the entries in m.
func From(m map[string]cell.I) *dict {
	d := New()

	for k, v := range m {
		d.tree.ReplaceOrInsert(entry{k, v})
	}

	return d
}

// Is returns true if c is a dict.
func Is(c cell.I) bool {
	_, ok := c.(*dict)

	return ok
}

// To returns a *T if c is a dict; Otherwise it panics.
func To(c cell.I) *dict {
	if t, ok := c.(*dict); ok {
		return t
	}

	panic("not a " + name)
}

// Copy creates a new dict with the same entries as d.
func (d *dict) Copy() *dict {
	fresh := &dict{T: guard.New(name)}

	// Clone marks the shared nodes as copy-on-write in both trees.
	d.Write(func() {
		fresh.tree = d.tree.Clone()
	})

	return fresh
}

// Del frees the name k from any association in the dict d.
func (d *dict) Del(k string) (ok bool) {
	d.Write(func() {
		_, ok = d.tree.Delete(entry{key: k})
	})

	return ok
}

// Each calls f for each entry in d, in key order, until f returns false.
// The entries are copied first so f may use d.
func (d *dict) Each(f func(k string, v cell.I) bool) {
	for _, e := range d.entries() {
		if !f(e.key, e.value) {
			return
		}
	}
}

// Equal always returns false. No dict is equal to any other, or to itself.
func (d *dict) Equal(_ cell.I) bool {
	return false
}

// Get retrieves the value associated with the name k in the dict d.
func (d *dict) Get(k string) (v cell.I, ok bool) {
	d.Read(func() {
		var e entry

		e, ok = d.tree.Get(entry{key: k})
		v = e.value
	})

	return v, ok
}

// Keys returns the names in the dict d, in order.
func (d *dict) Keys() (keys []string) {
	d.Read(func() {
		keys = make([]string, 0, d.tree.Len())

		d.tree.Ascend(func(e entry) bool {
			keys = append(keys, e.key)

			return true
		})
	})

	return keys
}

// Len returns the number of entries in the dict d.
func (d *dict) Len() (n int) {
	d.Read(func() {
		n = d.tree.Len()
	})

	return n
}

// Literal returns the literal representation of the dict d.
func (d *dict) Literal() string {
	return d.Render(literal.Seen{})
}

// Name returns the type name for the dict d.
func (d *dict) Name() string {
	return name
}

// Render returns the literal representation of the dict d, given seen.
func (d *dict) Render(seen literal.Seen) string {
	if !seen.Enter(d) {
		return literal.Elided
	}
	defer seen.Leave(d)

	entries := d.entries()
	if len(entries) == 0 {
		return "(" + name + ")"
	}

	s := make([]string, len(entries))
	for i, e := range entries {
		s[i] = "'(" + strconv.Quote(e.key) + " . " + literal.Render(e.value, seen) + ")"
	}

	return "(" + name + " " + strings.Join(s, " ") + ")"
}

// Set associates the name k with the cell v in the dict d.
func (d *dict) Set(k string, v cell.I) {
	d.Write(func() {
		d.tree.ReplaceOrInsert(entry{k, v})
	})
}

// String returns the text representation of the dict d.
func (d *dict) String() string {
	return d.Literal()
}

// Update associates the name k with the result of f, atomically. The
// current value and whether there was one are passed to f.
func (d *dict) Update(k string, f func(v cell.I, ok bool) cell.I) (v cell.I) {
	d.Write(func() {
		e, ok := d.tree.Get(entry{key: k})

		v = f(e.value, ok)

		d.tree.ReplaceOrInsert(entry{k, v})
	})

	return v
}

func (d *dict) entries() (entries []entry) {
	d.Read(func() {
		entries = make([]entry, 0, d.tree.Len())

		d.tree.Ascend(func(e entry) bool {
			entries = append(entries, e)

			return true
		})
	})

	return entries
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t dict

	// The dict type is a cell.
	_ = cell.I(&t)

	// The dict type has a literal representation.
	_ = literal.I(&t)

	// The dict type contains other cells.
	_ = literal.Nested(&t)
}
