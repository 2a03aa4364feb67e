package maincmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/mna/lox/lang/interp"
)

// printRuntimeError prints a *interp.RuntimeError: the standard
// `[line N] Error ...: MESSAGE` line, followed by the offending token's
// line number on a second line (the line number only, not the source
// text).
func printRuntimeError(w io.Writer, err error) {
	fmt.Fprintln(w, err.Error())

	rerr, ok := err.(*interp.RuntimeError)
	if !ok {
		return
	}
	fmt.Fprintln(w, strconv.Itoa(rerr.Pos.Line()))
}
