// Released under an MIT license. See LICENSE.

// Package native provides brine's host implemented function type.
//
// A native has a fixed arity and an expected kind for each parameter.
// Calling a native first checks the number of arguments, then the kind of
// each argument in order, and only then runs the function. A call that
// fails validation never reaches the function.
package native

import (
	"github.com/brine-lang/brine/internal/common/interface/cell"
	"github.com/brine-lang/brine/internal/common/interface/literal"
	"github.com/brine-lang/brine/internal/common/kind"
	"github.com/brine-lang/brine/internal/common/struct/loc"
	"github.com/brine-lang/brine/internal/common/type/callable"
	"github.com/brine-lang/brine/internal/common/validate"
)

// Func is the signature of the Go function behind a native.
// It is only called with arguments that have passed validation.
type Func func(args []cell.I) (cell.I, error)

// T (native) is a named, validated Go function.
type T struct {
	fn     Func
	name   string
	params []kind.T
	source loc.T
}

type native = T

// New creates a native called name, defined at source, that accepts one
// argument for each kind in params.
func New(name string, source loc.T, fn Func, params ...kind.T) *native {
	if fn == nil {
		panic("native " + name + " has no function")
	}

	for _, k := range params {
		if k == kind.Invalid {
			panic("native " + name + " has an invalid parameter kind")
		}
	}

	return &native{
		fn:     fn,
		name:   name,
		params: append([]kind.T(nil), params...),
		source: source,
	}
}

// Is returns true if c is a native.
func Is(c cell.I) bool {
	_, ok := c.(*native)

	return ok
}

// To returns a *T if c is a native; Otherwise it panics.
func To(c cell.I) *native {
	if t, ok := c.(*native); ok {
		return t
	}

	panic("not a native")
}

// Arity returns the number of arguments the native n accepts.
func (n *native) Arity() int {
	return len(n.params)
}

// Call validates args and, if they are acceptable, calls the native n.
func (n *native) Call(args []cell.I) (cell.I, error) {
	if err := validate.Fixed(n.name, args, len(n.params)); err != nil {
		return nil, err
	}

	if err := validate.Kinds(n.name, args, n.params); err != nil {
		return nil, err
	}

	return n.fn(args)
}

// Equal returns true if the cell c is the same native as n.
func (n *native) Equal(c cell.I) bool {
	p, ok := c.(*native)

	return ok && p == n
}

// Ident returns the name the native n was registered with.
func (n *native) Ident() string {
	return n.name
}

// Literal returns the literal representation of the native n.
func (n *native) Literal() string {
	return "(native " + n.name + ")"
}

// Name returns the type name for the native n.
func (n *native) Name() string {
	return "callable"
}

// Params returns the kinds of argument the native n expects.
func (n *native) Params() []kind.T {
	return append([]kind.T(nil), n.params...)
}

// Source returns the location where the native n was defined.
func (n *native) Source() loc.T {
	return n.source
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t native

	// The native type is callable.
	_ = callable.I(&t)

	// The native type has a literal representation.
	_ = literal.I(&t)
}
