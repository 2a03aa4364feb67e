package interp

import (
	"fmt"

	"github.com/mna/lox/lang/token"
)

// RuntimeError is a runtime failure carrying the offending token's position
// for line reporting. Every RuntimeError propagates out of statement
// execution to the top level, which prints it and exits; it is never
// recovered from mid-evaluation.
type RuntimeError struct {
	Pos token.Pos
	Msg string
}

func (e *RuntimeError) Error() string {
	return (&token.Error{Pos: e.Pos, Msg: e.Msg}).Error()
}

func newRuntimeError(pos token.Pos, format string, args ...any) *RuntimeError {
	return &RuntimeError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}
