// Released under an MIT license. See LICENSE.

// Package engine provides the entry point an evaluator uses to reach
// brine's natives.
package engine

import (
	"fmt"

	"github.com/brine-lang/brine/internal/common/interface/cell"
	"github.com/brine-lang/brine/internal/common/kind"
	"github.com/brine-lang/brine/internal/common/type/callable"
	"github.com/brine-lang/brine/internal/common/type/dict"
	"github.com/brine-lang/brine/internal/common/validate"
	"github.com/brine-lang/brine/internal/engine/registry"

	// The prelude populates the default registry.
	_ "github.com/brine-lang/brine/internal/engine/prelude"
)

// T (engine) is a facade in front of a global scope of natives.
type T struct {
	global *dict.T
}

// New creates a new T with every native in the default registry bound
// in its global scope. The default registry is sealed.
func New() *T {
	registry.Default.Seal()

	return With(registry.Default)
}

// With creates a new T with every native in r bound in its global scope.
func With(r *registry.T) *T {
	global := dict.New()

	r.Install(global)

	return &T{global: global}
}

// Apply calls c with args.
func Apply(c cell.I, args ...cell.I) (cell.I, error) {
	if !callable.Is(c) {
		return nil, &validate.TypeError{Name: "apply", Position: 1, Expected: kind.Callable, Actual: c}
	}

	return callable.To(c).Call(args)
}

// Call calls the value bound to name in the global scope with args.
func (e *T) Call(name string, args ...cell.I) (cell.I, error) {
	c, ok := e.global.Get(name)
	if !ok {
		return nil, fmt.Errorf("%s: not defined", name)
	}

	return Apply(c, args...)
}

// Global returns the global scope.
func (e *T) Global() *dict.T {
	return e.global
}
