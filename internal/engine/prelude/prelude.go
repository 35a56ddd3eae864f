// Released under an MIT license. See LICENSE.

// Package prelude provides brine's built-in native functions.
package prelude

import (
	"github.com/brine-lang/brine/internal/common/kind"
	"github.com/brine-lang/brine/internal/common/struct/loc"
	"github.com/brine-lang/brine/internal/common/type/native"
	"github.com/brine-lang/brine/internal/engine/registry"
)

type binding struct {
	fn     native.Func
	params []kind.T
	source loc.T
}

func here(fn native.Func, params ...kind.T) binding {
	return binding{fn: fn, params: params, source: loc.Here(1)}
}

// functions returns the prelude's natives, by name.
func functions() map[string]binding {
	return map[string]binding{
		"car":       here(car, kind.Pair),
		"cdr":       here(cdr, kind.Pair),
		"cons":      here(cons, kind.Any, kind.Any),
		"dict-del!": here(dictDel, kind.Dict, kind.Str),
		"dict-get":  here(dictGet, kind.Dict, kind.Str),
		"dict-set!": here(dictSet, kind.Dict, kind.Str, kind.Any),
		"display":   here(display, kind.Any),
		"eq":        here(eq, kind.Any, kind.Any),
		"is-nil":    here(isNil, kind.Any),
		"is-pair":   here(isPair, kind.Any),
		"lt":        here(lt, kind.Any, kind.Any),
		"not":       here(not, kind.Bool),
		"raw-and":   here(rawAnd, kind.Bool, kind.Bool),
		"raw-or":    here(rawOr, kind.Bool, kind.Bool),
		"symbol":    here(makeSymbol, kind.Str),
		"type-of":   here(typeOf, kind.Any),
		"vec-get":   here(vecGet, kind.Vec, kind.Int),
		"vec-len":   here(vecLen, kind.Vec),
		"vec-push!": here(vecPush, kind.Vec, kind.Any),
		"vec-set!":  here(vecSet, kind.Vec, kind.Int, kind.Any),
	}
}

// Register binds each of the prelude's natives in the registry r.
func Register(r *registry.T) {
	for name, b := range functions() {
		r.Bind(b.fn, name, b.source, b.params...)
	}
}

func init() { //nolint:gochecknoinits
	Register(registry.Default)
}
