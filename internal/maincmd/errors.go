package maincmd

import "github.com/mna/mainer"

// exitErr wraps an error with its documented exit status (65 for a
// lex/parse/resolve failure, 70 for a runtime failure), so Cmd.Main's
// generic error handling can recover the right code via the exitCoder
// interface.
type exitErr struct {
	err  error
	code mainer.ExitCode
}

func (e *exitErr) Error() string            { return e.err.Error() }
func (e *exitErr) Unwrap() error            { return e.err }
func (e *exitErr) ExitCode() mainer.ExitCode { return e.code }

const (
	exitDataErr    mainer.ExitCode = 65
	exitRuntimeErr mainer.ExitCode = 70
)

func dataErr(err error) error {
	if err == nil {
		return nil
	}
	return &exitErr{err: err, code: exitDataErr}
}

func runtimeErr(err error) error {
	if err == nil {
		return nil
	}
	return &exitErr{err: err, code: exitRuntimeErr}
}
