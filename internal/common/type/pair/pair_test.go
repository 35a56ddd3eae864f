// Released under an MIT license. See LICENSE.

package pair_test

import (
	"testing"

	"github.com/brine-lang/brine/internal/common/interface/cell"
	"github.com/brine-lang/brine/internal/common/interface/literal"
	"github.com/brine-lang/brine/internal/common/type/dict"
	"github.com/brine-lang/brine/internal/common/type/integer"
	"github.com/brine-lang/brine/internal/common/type/list"
	"github.com/brine-lang/brine/internal/common/type/null"
	"github.com/brine-lang/brine/internal/common/type/pair"
	"github.com/brine-lang/brine/internal/common/type/str"
)

func ints(ns ...int64) []cell.I {
	cs := make([]cell.I, len(ns))
	for i, n := range ns {
		cs[i] = integer.New(n)
	}

	return cs
}

func TestLiteral(t *testing.T) {
	cases := []struct {
		c        cell.I
		expected string
	}{
		{list.New(ints(1, 2, 3)...), "'(1 2 3)"},
		{list.New(ints(1)...), "'(1)"},
		{pair.Cons(integer.New(1), integer.New(2)), "'(1 . 2)"},
		{list.Dotted(integer.New(3), ints(1, 2)...), "'(1 2 . 3)"},
		{list.New(integer.New(1), list.New(ints(2, 3)...)), "'(1 '(2 3))"},
		{list.New(str.New("a"), null.Nil), `'("a" nil)`},
	}

	for _, c := range cases {
		if actual := literal.String(c.c); actual != c.expected {
			t.Errorf("expected %s, got %s", c.expected, actual)
		}
	}
}

func TestEqual(t *testing.T) {
	a := list.New(ints(1, 2, 3)...)

	if !a.Equal(list.New(ints(1, 2, 3)...)) {
		t.Errorf("equal lists should be equal")
	}

	if a.Equal(list.New(ints(1, 2)...)) || list.New(ints(1, 2)...).Equal(a) {
		t.Errorf("lists of different lengths should not be equal")
	}

	if a.Equal(list.New(ints(1, 2, 4)...)) {
		t.Errorf("lists with different elements should not be equal")
	}

	if pair.Cons(integer.New(1), integer.New(2)).Equal(list.New(ints(1, 2)...)) {
		t.Errorf("an improper list should not equal a proper one")
	}

	if a.Equal(integer.New(1)) {
		t.Errorf("a pair should not equal a non-pair")
	}
}

// Pairs compare field by field, so a pair holding a dict is not equal to itself.
func TestEqualWithDict(t *testing.T) {
	p := list.New(dict.New())

	if p.Equal(p) {
		t.Errorf("a pair holding a dict should not be equal to itself")
	}
}

func TestAccessors(t *testing.T) {
	p := list.New(ints(1, 2, 3)...)

	if !pair.Car(p).Equal(integer.New(1)) || !pair.Cadr(p).Equal(integer.New(2)) {
		t.Errorf("unexpected elements")
	}

	if !pair.Cddr(p).Equal(list.New(integer.New(3))) {
		t.Errorf("unexpected tail %s", literal.String(pair.Cddr(p)))
	}

	defer func() {
		if recover() == nil {
			t.Errorf("car of a non-pair should panic")
		}
	}()

	pair.Car(null.Nil)
}
