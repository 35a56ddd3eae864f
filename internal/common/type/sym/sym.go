// Released under an MIT license. See LICENSE.

// Package sym provides brine's symbol type.
package sym

import (
	"strings"
	"sync"
	"unicode"

	"github.com/michaelmacinnis/adapted"

	"github.com/brine-lang/brine/internal/common"
	"github.com/brine-lang/brine/internal/common/interface/cell"
	"github.com/brine-lang/brine/internal/common/interface/literal"
	"github.com/brine-lang/brine/internal/common/interface/ordered"
)

const (
	name  = "sym"
	short = 3
)

// T (sym) wraps Go's string type. Short and common strings are interned.
type T string

type sym = T

// New creates a sym cell.
func New(v string) cell.I {
	return symnew(v)
}

// Is returns true if c is a sym.
func Is(c cell.I) bool {
	_, ok := c.(*sym)

	return ok
}

// To returns a *T if c is a sym; Otherwise it panics.
func To(c cell.I) *sym {
	if t, ok := c.(*sym); ok {
		return t
	}

	panic("not a " + name)
}

// Compare orders c relative to s by text, if c is also a sym.
func (s *sym) Compare(c cell.I) (int, bool) {
	if !Is(c) {
		return 0, false
	}

	return strings.Compare(s.String(), To(c).String()), true
}

// Equal returns true if c is a sym and wraps the same string.
func (s *sym) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	t := To(c)

	return s == t || s.String() == t.String()
}

// Literal returns the literal representation of the sym s.
func (s *sym) Literal() string {
	return repr(string(*s))
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return string(*s)
}

// Cache enables (or disables) caching of all symbols.
func Cache(a bool) {
	cachel.Lock()
	defer cachel.Unlock()

	all = a
}

//nolint:gochecknoglobals
var (
	all    = false
	cache  = map[string]*sym{}
	cachel = &sync.RWMutex{}
)

func meta(s string) string {
	return "(" + name + " " + s + ")"
}

// repr returns s as is, when it reads back as the same symbol.
func repr(s string) string {
	q := adapted.CanonicalString(s)

	if len(s) == 0 {
		return meta(q)
	}

	for _, r := range s {
		if unicode.IsSpace(r) || strings.ContainsRune(`()'"`, r) {
			return meta(q)
		}
	}

	if q[2:len(q)-1] != s {
		return meta(q)
	}

	return s
}

func symnew(v string) *sym {
	p, ok, cacheable := symtry(v)
	if !ok {
		if cacheable {
			cachel.Lock()
			defer cachel.Unlock()

			if p, ok = cache[v]; ok {
				return p
			}
		}

		s := sym(v)
		p = &s

		if cacheable {
			cache[v] = p
		}
	}

	return p
}

func symtry(v string) (p *sym, ok bool, cacheable bool) {
	cachel.RLock()
	defer cachel.RUnlock()

	cacheable = all || len(v) <= short

	p, ok = cache[v]

	return
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)

	// The sym type is ordered.
	_ = ordered.I(&t)

	// The sym type is a stringer.
	_ = common.Stringer(&t)
}
