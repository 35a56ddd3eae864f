/*
Brine provides the values and native functions of a small Lisp.

The brine command lists and calls the registered native functions:

	brine list
	brine list 'vec-*'
	brine call not true
	brine call raw-and true '"x"'

With no command and a terminal on stdin, brine prompts for lines of the
form NAME ARGUMENTS... and prints each result.

Brine is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/brine-lang/brine/internal/engine"
	"github.com/brine-lang/brine/internal/engine/registry"
	"github.com/brine-lang/brine/internal/system/options"
	"github.com/brine-lang/brine/internal/ui"
)

func main() {
	options.Parse()

	e := engine.New()

	switch options.Command() {
	case "call":
		line := append([]string{options.Name()}, options.Args()...)

		s, err := ui.Line(e, quote(line))
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		fmt.Println(s)

	case "list":
		names, err := registry.Default.Names(options.Pattern())
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		for _, name := range names {
			n, _ := registry.Lookup(name)

			params := make([]string, len(n.Params()))
			for i, k := range n.Params() {
				params[i] = k.String()
			}

			fmt.Printf("%-12s (%s) %s\n", name, strings.Join(params, " "), n.Source())
		}

	default:
		if !options.Interactive() {
			os.Exit(0)
		}

		names, _ := registry.Default.Names("")

		ui.Run(e, names)
	}
}

// quote rejoins command-line arguments so that ui.Line splits them back
// into the same tokens.
func quote(args []string) string {
	for i, a := range args {
		if strings.ContainsAny(a, " \t\n") && !strings.HasPrefix(a, `"`) && !strings.HasPrefix(a, `$'`) {
			args[i] = fmt.Sprintf("%q", a)
		}
	}

	return strings.Join(args, " ")
}
