// Released under an MIT license. See LICENSE.

package ui

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/adapted"

	"github.com/brine-lang/brine/internal/common/interface/cell"
	"github.com/brine-lang/brine/internal/common/type/boolean"
	"github.com/brine-lang/brine/internal/common/type/char"
	"github.com/brine-lang/brine/internal/common/type/float"
	"github.com/brine-lang/brine/internal/common/type/integer"
	"github.com/brine-lang/brine/internal/common/type/null"
	"github.com/brine-lang/brine/internal/common/type/str"
	"github.com/brine-lang/brine/internal/common/type/sym"
	"github.com/brine-lang/brine/internal/common/type/unsigned"
)

var errUnterminated = errors.New("unterminated string")

// Convert returns the value written as the token s.
func Convert(s string) (cell.I, error) {
	switch s {
	case "nil":
		return null.Nil, nil
	case "true", "false":
		return boolean.New(s), nil
	}

	switch {
	case strings.HasPrefix(s, `#\`):
		r, n := utf8.DecodeRuneInString(s[2:])
		if n == 0 || n != len(s)-2 {
			return nil, errors.New(s + " is not a single character")
		}

		return char.New(r), nil

	case strings.HasPrefix(s, `"`):
		v, err := strconv.Unquote(s)
		if err != nil {
			return nil, err
		}

		return str.New(v), nil

	case strings.HasPrefix(s, `$'`):
		if len(s) < 3 || s[len(s)-1] != '\'' {
			return nil, errUnterminated
		}

		v, err := adapted.ActualBytes(s[2 : len(s)-1])
		if err != nil {
			return nil, err
		}

		return str.New(v), nil
	}

	if !numeric(s) {
		return sym.New(s), nil
	}

	if u, ok := strings.CutSuffix(s, "u"); ok {
		v, err := strconv.ParseUint(u, 10, 64)
		if err != nil {
			return nil, err
		}

		return unsigned.New(v), nil
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return integer.New(i), nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return sym.New(s), nil //nolint:nilerr
	}

	return float.New(f), nil
}

// Fields splits line into tokens at white space outside of quotes.
// Double quotes may open anywhere. A single quote only opens a quote
// directly after a leading $.
func Fields(line string) ([]string, error) {
	var (
		fields []string
		quote  rune
		token  strings.Builder
	)

	flush := func() {
		if token.Len() > 0 {
			fields = append(fields, token.String())
			token.Reset()
		}
	}

	escaped := false

	for _, r := range line {
		switch {
		case escaped:
			escaped = false
		case quote != 0 && r == '\\':
			escaped = true
		case quote != 0 && r == quote:
			quote = 0
		case quote != 0:
			// Quoted.
		case token.String() == `#\`:
			// The character after #\ is taken as is, even if it is a space.
		case r == '"', r == '\'' && token.String() == "$":
			quote = r
		case unicode.IsSpace(r):
			flush()

			continue
		}

		token.WriteRune(r)
	}

	if quote != 0 {
		return nil, errUnterminated
	}

	flush()

	return fields, nil
}

func numeric(s string) bool {
	if s == "" {
		return false
	}

	s = strings.TrimLeft(s, "+-")

	return s != "" && (s[0] == '.' || (s[0] >= '0' && s[0] <= '9'))
}
