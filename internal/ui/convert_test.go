// Released under an MIT license. See LICENSE.

package ui

import (
	"reflect"
	"testing"

	"github.com/brine-lang/brine/internal/common/interface/cell"
	"github.com/brine-lang/brine/internal/common/type/boolean"
	"github.com/brine-lang/brine/internal/common/type/char"
	"github.com/brine-lang/brine/internal/common/type/float"
	"github.com/brine-lang/brine/internal/common/type/integer"
	"github.com/brine-lang/brine/internal/common/type/null"
	"github.com/brine-lang/brine/internal/common/type/str"
	"github.com/brine-lang/brine/internal/common/type/sym"
	"github.com/brine-lang/brine/internal/common/type/unsigned"
	"github.com/brine-lang/brine/internal/engine"
)

func TestConvert(t *testing.T) {
	cases := map[string]cell.I{
		"nil":     null.Nil,
		"true":    boolean.True,
		"false":   boolean.False,
		"42":      integer.New(42),
		"-7":      integer.New(-7),
		"7u":      unsigned.New(7),
		"1.5":     float.New(1.5),
		`#\a`:     char.New('a'),
		`"a b"`:   str.New("a b"),
		`$'a\tb'`: str.New("a\tb"),
		"abc":     sym.New("abc"),
		"-":       sym.New("-"),
		"1x":      sym.New("1x"),
		"raw-and": sym.New("raw-and"),
	}

	for token, expected := range cases {
		actual, err := Convert(token)
		if err != nil {
			t.Errorf("%s: %v", token, err)

			continue
		}

		if !actual.Equal(expected) {
			t.Errorf("%s: expected %s, got %s", token, expected.Name(), actual.Name())
		}
	}

	for _, token := range []string{`#\ab`, `"unterminated`, `$'x`, "-1u"} {
		if _, err := Convert(token); err == nil {
			t.Errorf("%s: expected an error", token)
		}
	}
}

func TestFields(t *testing.T) {
	fields, err := Fields(`raw-and true "x y"  $'a b' `)
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{"raw-and", "true", `"x y"`, `$'a b'`}
	if !reflect.DeepEqual(fields, expected) {
		t.Errorf("expected %q, got %q", expected, fields)
	}

	cases := map[string][]string{
		"symbol don't":    {"symbol", "don't"},
		`display #\  #\a`: {"display", `#\ `, `#\a`},
		`a $'b c' d'e`:    {"a", `$'b c'`, "d'e"},
	}

	for line, expected := range cases {
		actual, err := Fields(line)
		if err != nil {
			t.Errorf("%s: %v", line, err)

			continue
		}

		if !reflect.DeepEqual(actual, expected) {
			t.Errorf("%s: expected %q, got %q", line, expected, actual)
		}
	}

	if _, err := Fields(`"open`); err == nil {
		t.Errorf("expected an error")
	}
}

func TestLine(t *testing.T) {
	e := engine.New()

	cases := map[string]string{
		"not true":          "false",
		"raw-or false true": "true",
		"":                  "",
		`display "a"`:       `"\"a\""`,
	}

	for line, expected := range cases {
		actual, err := Line(e, line)
		if err != nil {
			t.Errorf("%s: %v", line, err)

			continue
		}

		if actual != expected {
			t.Errorf("%s: expected %s, got %s", line, expected, actual)
		}
	}

	if s, err := Line(e, "type-of don't"); err != nil || s != "sym" {
		t.Errorf("expected sym, got %s, %v", s, err)
	}

	if s, err := Line(e, `type-of #\ `); err != nil || s != "char" {
		t.Errorf("expected char, got %s, %v", s, err)
	}

	if _, err := Line(e, `raw-and true "x"`); err == nil {
		t.Errorf("expected a type error")
	}

	if _, err := Line(e, "not"); err == nil {
		t.Errorf("expected an arity error")
	}
}
