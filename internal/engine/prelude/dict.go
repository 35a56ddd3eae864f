// Released under an MIT license. See LICENSE.

package prelude

import (
	"github.com/brine-lang/brine/internal/common"
	"github.com/brine-lang/brine/internal/common/interface/cell"
	"github.com/brine-lang/brine/internal/common/type/boolean"
	"github.com/brine-lang/brine/internal/common/type/dict"
	"github.com/brine-lang/brine/internal/common/type/null"
)

func dictDel(args []cell.I) (cell.I, error) {
	return boolean.Bool(dict.To(args[0]).Del(common.String(args[1]))), nil
}

func dictGet(args []cell.I) (cell.I, error) {
	v, ok := dict.To(args[0]).Get(common.String(args[1]))
	if !ok {
		return null.Nil, nil
	}

	return v, nil
}

func dictSet(args []cell.I) (cell.I, error) {
	dict.To(args[0]).Set(common.String(args[1]), args[2])

	return args[2], nil
}
