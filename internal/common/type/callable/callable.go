// Released under an MIT license. See LICENSE.

// Package callable defines brine's invocable values. Natives and
// interpreted closures are both called with an ordered sequence of
// arguments and return a result or an error.
package callable

import (
	"errors"

	"github.com/brine-lang/brine/internal/common/interface/cell"
	"github.com/brine-lang/brine/internal/common/interface/literal"
)

const name = "callable"

// ErrNoApplier is returned when a closure is called without an evaluator.
var ErrNoApplier = errors.New("closure called without an evaluator")

// I (callable) is anything that can be called.
type I interface {
	cell.I
	Call(args []cell.I) (cell.I, error)
}

// Is returns true if c is callable.
func Is(c cell.I) bool {
	_, ok := c.(I)

	return ok
}

// To returns c as a callable; Otherwise it panics.
func To(c cell.I) I {
	if t, ok := c.(I); ok {
		return t
	}

	panic("not a " + name)
}

// Applier evaluates the body of a closure. It is supplied by the evaluator.
type Applier interface {
	Apply(c *Closure, args []cell.I) (cell.I, error)
}

// Closure is an interpreted routine. Its fields are fixed when it is created.
type Closure struct {
	Body   cell.I // Body of the routine.
	Env    cell.I // Environment captured when the routine was created.
	Params cell.I // Param labels.

	applier Applier
}

// NewClosure creates a closure that is applied by a.
func NewClosure(params, body, env cell.I, a Applier) *Closure {
	return &Closure{Body: body, Env: env, Params: params, applier: a}
}

// Call asks the evaluator that created c to apply it to args.
func (c *Closure) Call(args []cell.I) (cell.I, error) {
	if c.applier == nil {
		return nil, ErrNoApplier
	}

	return c.applier.Apply(c, args)
}

// Equal returns true if the cell o is the same closure as c.
func (c *Closure) Equal(o cell.I) bool {
	p, ok := o.(*Closure)

	return ok && p == c
}

// Literal returns the literal representation of the closure c.
func (c *Closure) Literal() string {
	return c.Render(literal.Seen{})
}

// Name returns the type name for the closure c.
func (c *Closure) Name() string {
	return name
}

// Render returns the literal representation of the closure c, given seen.
// The captured environment is not rendered.
func (c *Closure) Render(seen literal.Seen) string {
	return "(lambda " + literal.Render(c.Params, seen) + " " + literal.Render(c.Body, seen) + ")"
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t Closure

	// The closure type is callable.
	_ = I(&t)

	// The closure type has a literal representation.
	_ = literal.I(&t)
}
