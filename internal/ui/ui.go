// Released under an MIT license. See LICENSE.

// Package ui provides an interactive command-line interface for calling
// brine's natives.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/brine-lang/brine/internal/common/interface/cell"
	"github.com/brine-lang/brine/internal/common/interface/literal"
)

// Caller is the interface for things that can call natives by name.
type Caller interface {
	Call(name string, args ...cell.I) (cell.I, error)
}

// Line calls the native named by the first token in line with the rest
// of the tokens as arguments. It returns the literal representation of
// the result.
func Line(c Caller, line string) (string, error) {
	fields, err := Fields(line)
	if err != nil {
		return "", err
	}

	if len(fields) == 0 {
		return "", nil
	}

	args := make([]cell.I, 0, len(fields)-1)

	for _, f := range fields[1:] {
		v, err := Convert(f)
		if err != nil {
			return "", err
		}

		args = append(args, v)
	}

	r, err := c.Call(fields[0], args...)
	if err != nil {
		return "", err
	}

	return literal.String(r), nil
}

// Run prompts for lines and sends them to the Caller until end of input.
// Names are offered as completions for the first token on a line.
func Run(c Caller, names []string) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	cli.SetCompleter(func(line string) (cs []string) {
		if strings.ContainsAny(line, " \t") {
			return nil
		}

		for _, n := range names {
			if strings.HasPrefix(n, line) {
				cs = append(cs, n)
			}
		}

		return cs
	})

	for {
		line, err := cli.Prompt("brine> ")

		switch err {
		case nil:
			cli.AppendHistory(line)
		case liner.ErrPromptAborted:
			continue
		case io.EOF:
			fmt.Println()

			return
		default:
			println(err.Error())
			os.Exit(1)
		}

		s, err := Line(c, line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())

			continue
		}

		if s != "" {
			fmt.Println(s)
		}
	}
}
