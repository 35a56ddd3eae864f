// Released under an MIT license. See LICENSE.

package literal_test

import (
	"testing"

	"github.com/brine-lang/brine/internal/common/interface/literal"
	"github.com/brine-lang/brine/internal/common/type/boolean"
	"github.com/brine-lang/brine/internal/common/type/char"
	"github.com/brine-lang/brine/internal/common/type/dict"
	"github.com/brine-lang/brine/internal/common/type/float"
	"github.com/brine-lang/brine/internal/common/type/integer"
	"github.com/brine-lang/brine/internal/common/type/list"
	"github.com/brine-lang/brine/internal/common/type/null"
	"github.com/brine-lang/brine/internal/common/type/str"
	"github.com/brine-lang/brine/internal/common/type/sym"
	"github.com/brine-lang/brine/internal/common/type/unsigned"
	"github.com/brine-lang/brine/internal/common/type/vec"
)

func TestScalars(t *testing.T) {
	cases := []struct {
		expected string
		actual   string
	}{
		{"nil", literal.String(null.Nil)},
		{"true", literal.String(boolean.True)},
		{"false", literal.String(boolean.False)},
		{`(char "a")`, literal.String(char.New('a'))},
		{"42", literal.String(unsigned.New(42))},
		{"-7", literal.String(integer.New(-7))},
		{"1.5", literal.String(float.New(1.5))},
		{"2", literal.String(float.New(2))},
		{"1000000000000000000000", literal.String(float.New(1e21))},
		{"0.0000001", literal.String(float.New(1e-7))},
		{`"a"`, literal.String(str.New("a"))},
		{`"say \"hi\""`, literal.String(str.New(`say "hi"`))},
		{"abc", literal.String(sym.New("abc"))},
	}

	for _, c := range cases {
		if c.actual != c.expected {
			t.Errorf("expected %s, got %s", c.expected, c.actual)
		}
	}
}

func TestNested(t *testing.T) {
	d := dict.New()
	d.Set("v", vec.New(integer.New(1), list.New(integer.New(2), integer.New(3))))

	expected := `(dict '("v" . (vec 1 '(2 3))))`
	if actual := literal.String(d); actual != expected {
		t.Errorf("expected %s, got %s", expected, actual)
	}
}

func TestCycle(t *testing.T) {
	v := vec.New(integer.New(1))
	v.Append(list.New(v))

	expected := "(vec 1 '(...))"
	if actual := literal.String(v); actual != expected {
		t.Errorf("expected %s, got %s", expected, actual)
	}
}

func TestRepeatedIsNotCycle(t *testing.T) {
	inner := vec.New(integer.New(1))
	outer := vec.New(inner, inner)

	expected := "(vec (vec 1) (vec 1))"
	if actual := literal.String(outer); actual != expected {
		t.Errorf("expected %s, got %s", expected, actual)
	}
}
