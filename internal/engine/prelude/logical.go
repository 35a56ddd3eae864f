// Released under an MIT license. See LICENSE.

package prelude

import (
	"github.com/brine-lang/brine/internal/common/interface/cell"
	"github.com/brine-lang/brine/internal/common/type/boolean"
)

func not(args []cell.I) (cell.I, error) {
	return boolean.Bool(!boolean.Value(args[0])), nil
}

func rawAnd(args []cell.I) (cell.I, error) {
	return boolean.Bool(boolean.Value(args[0]) && boolean.Value(args[1])), nil
}

func rawOr(args []cell.I) (cell.I, error) {
	return boolean.Bool(boolean.Value(args[0]) || boolean.Value(args[1])), nil
}
