// Released under an MIT license. See LICENSE.

package prelude

import (
	"github.com/brine-lang/brine/internal/common"
	"github.com/brine-lang/brine/internal/common/interface/cell"
	"github.com/brine-lang/brine/internal/common/kind"
	"github.com/brine-lang/brine/internal/common/type/sym"
)

func makeSymbol(args []cell.I) (cell.I, error) {
	return sym.New(common.String(args[0])), nil
}

func typeOf(args []cell.I) (cell.I, error) {
	return sym.New(kind.Of(args[0]).String()), nil
}
