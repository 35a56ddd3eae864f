// Released under an MIT license. See LICENSE.

package prelude

import (
	"github.com/brine-lang/brine/internal/common/interface/cell"
	"github.com/brine-lang/brine/internal/common/type/boolean"
	"github.com/brine-lang/brine/internal/common/type/null"
	"github.com/brine-lang/brine/internal/common/type/pair"
)

func car(args []cell.I) (cell.I, error) {
	return pair.Car(args[0]), nil
}

func cdr(args []cell.I) (cell.I, error) {
	return pair.Cdr(args[0]), nil
}

func cons(args []cell.I) (cell.I, error) {
	return pair.Cons(args[0], args[1]), nil
}

func isPair(args []cell.I) (cell.I, error) {
	return boolean.Bool(pair.Is(args[0])), nil
}

func isNil(args []cell.I) (cell.I, error) {
	return boolean.Bool(null.Is(args[0])), nil
}
