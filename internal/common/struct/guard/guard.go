// Released under an MIT license. See LICENSE.

// Package guard provides the reader/writer lock used by brine's containers.
// A guard is poisoned if a writer panics while holding it. Every later
// attempt to acquire a poisoned guard panics with a *Fault.
package guard

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Fault is raised when a poisoned guard is acquired.
type Fault struct {
	Owner string
	Cause any
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s: lock poisoned by earlier failure: %v", f.Owner, f.Cause)
}

// T (guard) is a poison-aware sync.RWMutex.
type T struct {
	mu       sync.RWMutex
	cause    atomic.Value
	owner    string
	poisoned atomic.Bool
}

type guard = T

// New creates a guard. The owner labels faults raised by the guard.
func New(owner string) *guard {
	return &guard{owner: owner}
}

// Poisoned returns true if a writer has failed while holding g.
func (g *guard) Poisoned() bool {
	return g.poisoned.Load()
}

// Read calls f with the read lock held.
func (g *guard) Read(f func()) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	g.check()

	f()
}

// Write calls f with the write lock held. If f panics, g is poisoned.
func (g *guard) Write(f func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.check()

	defer func() {
		if r := recover(); r != nil {
			g.cause.Store(fmt.Sprint(r))
			g.poisoned.Store(true)

			panic(r)
		}
	}()

	f()
}

func (g *guard) check() {
	if !g.poisoned.Load() {
		return
	}

	panic(&Fault{Owner: g.owner, Cause: g.cause.Load()})
}
