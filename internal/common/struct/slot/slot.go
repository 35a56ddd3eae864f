// Released under an MIT license. See LICENSE.

// Package slot provides an independently locked storage location for a cell.
package slot

import (
	"github.com/brine-lang/brine/internal/common/interface/cell"
	"github.com/brine-lang/brine/internal/common/struct/guard"
)

// T (slot) holds a cell value.
type T struct {
	*guard.T
	c cell.I
}

type slot = T

// New creates a new slot with the cell c.
func New(c cell.I) *slot {
	return &slot{T: guard.New("slot"), c: c}
}

// Copy creates a new slot with the same cell as slot s.
func (s *slot) Copy() *slot {
	return New(s.Get())
}

// Get returns the cell in slot s.
func (s *slot) Get() (c cell.I) {
	s.Read(func() {
		c = s.c
	})

	return c
}

// Set replaces the cell in slot s with the cell c.
func (s *slot) Set(c cell.I) {
	s.Write(func() {
		s.c = c
	})
}

// Update replaces the cell in slot s with f applied to it, atomically.
func (s *slot) Update(f func(cell.I) cell.I) (c cell.I) {
	s.Write(func() {
		s.c = f(s.c)
		c = s.c
	})

	return c
}
