// Released under an MIT license. See LICENSE.

package prelude

import (
	"github.com/brine-lang/brine/internal/common/interface/cell"
	"github.com/brine-lang/brine/internal/common/interface/ordered"
	"github.com/brine-lang/brine/internal/common/kind"
	"github.com/brine-lang/brine/internal/common/type/boolean"
	"github.com/brine-lang/brine/internal/common/validate"
)

func eq(args []cell.I) (cell.I, error) {
	return boolean.Bool(args[0].Equal(args[1])), nil
}

// Values that are unordered relative to each other cannot be compared.
func lt(args []cell.I) (cell.I, error) {
	n, ok := ordered.Compare(args[0], args[1])
	if !ok {
		return nil, &validate.TypeError{
			Name:     "lt",
			Position: 2,
			Expected: kind.Of(args[0]),
			Actual:   args[1],
		}
	}

	return boolean.Bool(n < 0), nil
}
