// Released under an MIT license. See LICENSE.

package prelude

import (
	"github.com/brine-lang/brine/internal/common/interface/cell"
	"github.com/brine-lang/brine/internal/common/type/integer"
	"github.com/brine-lang/brine/internal/common/type/vec"
	"github.com/brine-lang/brine/internal/common/validate"
)

func vecGet(args []cell.I) (cell.I, error) {
	v := vec.To(args[0])
	i := integer.Value(args[1])

	c, ok := v.Get(index(i))
	if !ok {
		return nil, &validate.RangeError{Name: "vec-get", Index: i, Length: v.Len()}
	}

	return c, nil
}

func vecLen(args []cell.I) (cell.I, error) {
	return integer.New(int64(vec.To(args[0]).Len())), nil
}

func vecPush(args []cell.I) (cell.I, error) {
	vec.To(args[0]).Append(args[1])

	return args[0], nil
}

func vecSet(args []cell.I) (cell.I, error) {
	v := vec.To(args[0])
	i := integer.Value(args[1])

	if !v.Set(index(i), args[2]) {
		return nil, &validate.RangeError{Name: "vec-set!", Index: i, Length: v.Len()}
	}

	return args[2], nil
}

// index converts i to an int, mapping values that do not fit to -1.
func index(i int64) int {
	if i < 0 || int64(int(i)) != i {
		return -1
	}

	return int(i)
}
