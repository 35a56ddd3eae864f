// Released under an MIT license. See LICENSE.

package prelude

import (
	"github.com/brine-lang/brine/internal/common/interface/cell"
	"github.com/brine-lang/brine/internal/common/interface/literal"
	"github.com/brine-lang/brine/internal/common/type/str"
)

func display(args []cell.I) (cell.I, error) {
	return str.New(literal.String(args[0])), nil
}
