// Released under an MIT license. See LICENSE.

// Package registry keeps track of brine's native functions by name.
//
// A registry is populated while the program starts and is then sealed.
// Once sealed it cannot be changed, and lookups take no locks.
package registry

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/michaelmacinnis/adapted"

	"github.com/brine-lang/brine/internal/common/kind"
	"github.com/brine-lang/brine/internal/common/struct/loc"
	"github.com/brine-lang/brine/internal/common/type/dict"
	"github.com/brine-lang/brine/internal/common/type/native"
)

// Default is the registry populated by the prelude.
var Default = New() //nolint:gochecknoglobals

// T (registry) maps names to natives.
type T struct {
	sync.RWMutex
	natives map[string]*native.T
	sealed  atomic.Bool
}

type registry = T

// New creates an empty, unsealed registry.
func New() *registry {
	return &registry{natives: map[string]*native.T{}}
}

// Bind creates a native from fn and registers it under name.
func (r *registry) Bind(fn native.Func, name string, source loc.T, params ...kind.T) *native.T {
	return r.Register(native.New(name, source, fn, params...))
}

// Install associates each native's name with the native in the dict d.
func (r *registry) Install(d *dict.T) {
	for _, k := range r.names() {
		n, _ := r.Lookup(k)
		d.Set(k, n)
	}
}

// Lookup retrieves the native registered under name.
func (r *registry) Lookup(name string) (*native.T, bool) {
	if !r.sealed.Load() {
		r.RLock()
		defer r.RUnlock()
	}

	n, ok := r.natives[name]

	return n, ok
}

// Names returns, in order, the registered names that match the glob pattern.
// An empty pattern matches every name.
func (r *registry) Names(pattern string) ([]string, error) {
	all := r.names()
	if pattern == "" {
		return all, nil
	}

	matched := all[:0]

	for _, k := range all {
		ok, err := adapted.Match(pattern, k)
		if err != nil {
			return nil, err
		}

		if ok {
			matched = append(matched, k)
		}
	}

	return matched, nil
}

// Register adds the native n. Registering a name twice, or registering
// with a sealed registry, panics.
func (r *registry) Register(n *native.T) *native.T {
	r.Lock()
	defer r.Unlock()

	if r.sealed.Load() {
		panic("registry is sealed: cannot register " + n.Ident())
	}

	if _, ok := r.natives[n.Ident()]; ok {
		panic(n.Ident() + " is already registered")
	}

	r.natives[n.Ident()] = n

	return n
}

// Seal prevents any further changes to the registry r.
func (r *registry) Seal() {
	r.Lock()
	defer r.Unlock()

	r.sealed.Store(true)
}

// Sealed returns true if the registry r can no longer be changed.
func (r *registry) Sealed() bool {
	return r.sealed.Load()
}

func (r *registry) names() []string {
	if !r.sealed.Load() {
		r.RLock()
		defer r.RUnlock()
	}

	names := make([]string, 0, len(r.natives))
	for k := range r.natives {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

// Lookup seals the default registry and retrieves the native named name.
func Lookup(name string) (*native.T, bool) {
	if !Default.Sealed() {
		Default.Seal()
	}

	return Default.Lookup(name)
}
