// Released under an MIT license. See LICENSE.

// Package options parses brine's command-line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is the version reported by -v.
const Version = "brine 0.1.0"

//nolint:gochecknoglobals
var (
	args        []string
	command     string
	interactive bool
	name        string
	pattern     string
	usage       = `brine

Usage:
  brine call NAME [ARGUMENTS...]
  brine list [PATTERN]
  brine [-i]
  brine -h
  brine -v

Arguments:
  NAME       Name of the native function to call.
  ARGUMENTS  Arguments passed to the native function.
  PATTERN    Only list natives whose names match this glob pattern.

Options:
  -i, --interactive  Invert interactive mode.
  -h, --help         Display this help.
  -v, --version      Print brine version.

Arguments are read as nil, true, false, integers, unsigned integers with
a u suffix (7u), floats, characters (#\a), double quoted or $'' quoted
strings, or otherwise symbols.

If brine's stdin is a TTY, and brine was invoked with no command,
interactive mode is enabled. Otherwise, it is disabled.
`
)

// Args returns the arguments to pass to the native being called.
func Args() []string {
	return args
}

// Command returns the command brine was invoked with: call, list or "".
func Command() string {
	return command
}

// Interactive returns true if brine should prompt for input.
func Interactive() bool {
	return interactive
}

// Name returns the name of the native to call.
func Name() string {
	return name
}

// Parse parses the command-line.
func Parse() {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], Version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	command = ""

	switch {
	case isTrue(opts, "call"):
		command = "call"
	case isTrue(opts, "list"):
		command = "list"
	default:
		interactive = isatty.IsTerminal(os.Stdin.Fd()) ||
			isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	name, _ = opts.String("NAME")
	pattern, _ = opts.String("PATTERN")
	args, _ = opts["ARGUMENTS"].([]string)

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive
}

// Pattern returns the glob pattern used to filter listed natives.
func Pattern() string {
	return pattern
}

func isTrue(opts docopt.Opts, key string) bool {
	b, _ := opts.Bool(key)

	return b
}
