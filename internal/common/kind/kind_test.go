// Released under an MIT license. See LICENSE.

package kind_test

import (
	"testing"

	"github.com/brine-lang/brine/internal/common/interface/cell"
	"github.com/brine-lang/brine/internal/common/interface/ordered"
	"github.com/brine-lang/brine/internal/common/kind"
	"github.com/brine-lang/brine/internal/common/struct/loc"
	"github.com/brine-lang/brine/internal/common/type/boolean"
	"github.com/brine-lang/brine/internal/common/type/callable"
	"github.com/brine-lang/brine/internal/common/type/char"
	"github.com/brine-lang/brine/internal/common/type/dict"
	"github.com/brine-lang/brine/internal/common/type/float"
	"github.com/brine-lang/brine/internal/common/type/integer"
	"github.com/brine-lang/brine/internal/common/type/list"
	"github.com/brine-lang/brine/internal/common/type/native"
	"github.com/brine-lang/brine/internal/common/type/null"
	"github.com/brine-lang/brine/internal/common/type/str"
	"github.com/brine-lang/brine/internal/common/type/sym"
	"github.com/brine-lang/brine/internal/common/type/unsigned"
	"github.com/brine-lang/brine/internal/common/type/vec"
)

func identity(args []cell.I) (cell.I, error) {
	return args[0], nil
}

func TestOf(t *testing.T) {
	cases := map[kind.T]cell.I{
		kind.Nil:      null.Nil,
		kind.Bool:     boolean.True,
		kind.Char:     char.New('x'),
		kind.Uint:     unsigned.New(1),
		kind.Int:      integer.New(1),
		kind.Float:    float.New(1),
		kind.Str:      str.New("x"),
		kind.Sym:      sym.New("x"),
		kind.Pair:     list.New(null.Nil),
		kind.Dict:     dict.New(),
		kind.Vec:      vec.New(),
		kind.Callable: native.New("identity", loc.Label("test"), identity, kind.Any),
	}

	for k, c := range cases {
		if actual := kind.Of(c); actual != k {
			t.Errorf("expected %s, got %s", k, actual)
		}

		if k.IsScalar() == k.IsHandle() {
			t.Errorf("%s must be exactly one of scalar or handle", k)
		}

		if !kind.Any.Matches(c) {
			t.Errorf("any should match %s", k)
		}
	}

	closure := callable.NewClosure(null.Nil, null.Nil, null.Nil, nil)
	if kind.Of(closure) != kind.Callable {
		t.Errorf("closure is not callable")
	}

	if kind.Of(nil) != kind.Invalid || kind.Any.Matches(nil) {
		t.Errorf("a missing value has no kind")
	}
}

func TestParse(t *testing.T) {
	for _, k := range []kind.T{kind.Nil, kind.Vec, kind.Any} {
		p, ok := kind.Parse(k.String())
		if !ok || p != k {
			t.Errorf("%s did not parse back", k)
		}
	}

	if _, ok := kind.Parse("invalid"); ok {
		t.Errorf("invalid should not parse")
	}
}

func TestCategories(t *testing.T) {
	for _, k := range []kind.T{kind.Nil, kind.Bool, kind.Char, kind.Uint, kind.Int, kind.Float} {
		if !k.IsScalar() || k.IsHandle() || k.IsMutable() {
			t.Errorf("%s should be a scalar", k)
		}
	}

	for _, k := range []kind.T{kind.Str, kind.Sym, kind.Pair, kind.Callable} {
		if k.IsScalar() || !k.IsHandle() || k.IsMutable() {
			t.Errorf("%s should be an immutable handle", k)
		}
	}

	for _, k := range []kind.T{kind.Dict, kind.Vec} {
		if k.IsScalar() || !k.IsHandle() || !k.IsMutable() {
			t.Errorf("%s should be a mutable handle", k)
		}
	}
}

func scalars() []cell.I {
	return []cell.I{
		null.Nil,
		boolean.True, boolean.False,
		char.New('a'), char.New('b'),
		unsigned.New(0), unsigned.New(1),
		integer.New(0), integer.New(-1),
		float.New(0), float.New(1.5),
		str.New(""), str.New("a"),
		sym.New("a"), sym.New("longer-symbol"),
	}
}

// Equal copies of a scalar are built independently from the originals.
func copies() []cell.I {
	return []cell.I{
		null.Nil,
		boolean.Bool(true), boolean.Bool(false),
		char.New('a'), char.New('b'),
		unsigned.New(0), unsigned.New(1),
		integer.New(0), integer.New(-1),
		float.New(0), float.New(1.5),
		str.New(""), str.New("a"),
		sym.New("a"), sym.New("longer-symbol"),
	}
}

func TestScalarEquality(t *testing.T) {
	a, b := scalars(), copies()

	for i := range a {
		if !a[i].Equal(a[i]) {
			t.Errorf("%d: not reflexive", i)
		}

		if !a[i].Equal(b[i]) || !b[i].Equal(a[i]) {
			t.Errorf("%d: not symmetric", i)
		}

		for j := range a {
			if i == j {
				continue
			}

			if a[i].Equal(a[j]) {
				t.Errorf("%d and %d: distinct values are equal", i, j)
			}

			// Transitivity: a[i] = b[i] and b[i] = b[j] implies a[i] = b[j].
			if b[i].Equal(b[j]) && !a[i].Equal(b[j]) {
				t.Errorf("%d and %d: not transitive", i, j)
			}
		}
	}
}

func TestNoCoercion(t *testing.T) {
	if integer.New(1).Equal(unsigned.New(1)) || integer.New(1).Equal(float.New(1)) {
		t.Errorf("numbers of different kinds should not be equal")
	}

	if str.New("a").Equal(sym.New("a")) || str.New("a").Equal(char.New('a')) {
		t.Errorf("text of different kinds should not be equal")
	}

	if _, ok := ordered.Compare(integer.New(1), float.New(2)); ok {
		t.Errorf("numbers of different kinds should be unordered")
	}
}

func TestOrdering(t *testing.T) {
	less := [][2]cell.I{
		{boolean.False, boolean.True},
		{char.New('a'), char.New('b')},
		{unsigned.New(1), unsigned.New(2)},
		{integer.New(-1), integer.New(0)},
		{float.New(0.5), float.New(1.5)},
		{str.New("a"), str.New("b")},
		{sym.New("a"), sym.New("b")},
		{vec.New(integer.New(1)), vec.New(integer.New(2))},
	}

	for _, p := range less {
		if !ordered.Less(p[0], p[1]) || ordered.Less(p[1], p[0]) {
			t.Errorf("expected %s < %s", p[0].Name(), p[1].Name())
		}
	}

	if n, ok := ordered.Compare(null.Nil, null.Nil); !ok || n != 0 {
		t.Errorf("nil should be equal to and not less than nil")
	}

	unordered := [][2]cell.I{
		{null.Nil, integer.New(0)},
		{list.New(integer.New(1)), list.New(integer.New(1))},
		{dict.New(), dict.New()},
		{str.New("a"), sym.New("a")},
	}

	for _, p := range unordered {
		if _, ok := ordered.Compare(p[0], p[1]); ok {
			t.Errorf("expected %s and %s to be unordered", p[0].Name(), p[1].Name())
		}
	}
}
