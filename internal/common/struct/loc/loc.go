// Released under an MIT license. See LICENSE.

// Package loc provides the type used to tag native functions with the
// place they were defined, for diagnostics.
package loc

import (
	"runtime"
	"strconv"
)

// T (loc) is a source location.
type T struct {
	Char int    // Character position (column).
	Line int    // Line number (row).
	Name string // Label for the source.
}

type loc = T

// Here returns the location of the caller, or of a frame skip levels above it.
func Here(skip int) T {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return T{Name: "unknown"}
	}

	return T{Line: line, Name: file}
}

// Label creates a location that has a name only.
func Label(name string) T {
	return T{Name: name}
}

func (l T) String() string {
	if l.Line == 0 {
		return l.Name
	}

	return l.Name + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Char)
}
