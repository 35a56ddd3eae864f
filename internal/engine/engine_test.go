// Released under an MIT license. See LICENSE.

package engine

import (
	"errors"
	"testing"

	"github.com/brine-lang/brine/internal/common/interface/cell"
	"github.com/brine-lang/brine/internal/common/type/boolean"
	"github.com/brine-lang/brine/internal/common/type/callable"
	"github.com/brine-lang/brine/internal/common/type/integer"
	"github.com/brine-lang/brine/internal/common/type/list"
	"github.com/brine-lang/brine/internal/common/type/null"
	"github.com/brine-lang/brine/internal/common/validate"
)

type applier struct {
	applied []cell.I
}

func (a *applier) Apply(c *callable.Closure, args []cell.I) (cell.I, error) {
	a.applied = args

	return c.Body, nil
}

func TestCall(t *testing.T) {
	e := New()

	r, err := e.Call("not", boolean.True)
	if err != nil || !r.Equal(boolean.False) {
		t.Fatalf("unexpected result %v, %v", r, err)
	}

	if _, err := e.Call("no-such-native"); err == nil {
		t.Errorf("expected an error for an undefined name")
	}
}

func TestGlobalIsShared(t *testing.T) {
	e := New()

	e.Global().Set("answer", integer.New(42))

	_, err := e.Call("answer")

	var te *validate.TypeError
	if !errors.As(err, &te) || te.Position != 1 {
		t.Errorf("calling a non-callable should be a type error, got %v", err)
	}
}

func TestApplyClosure(t *testing.T) {
	a := &applier{}
	c := callable.NewClosure(list.New(), integer.New(7), null.Nil, a)

	r, err := Apply(c, integer.New(1))
	if err != nil || !r.Equal(integer.New(7)) || len(a.applied) != 1 {
		t.Errorf("closure not applied: %v", err)
	}

	orphan := callable.NewClosure(list.New(), null.Nil, null.Nil, nil)
	if _, err := Apply(orphan); !errors.Is(err, callable.ErrNoApplier) {
		t.Errorf("expected ErrNoApplier, got %v", err)
	}
}
