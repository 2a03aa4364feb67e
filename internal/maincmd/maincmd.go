// Package maincmd wires the `tokenize`, `parse`, `evaluate` and `run` CLI
// commands through github.com/mna/mainer, dispatching commands by
// reflecting over Cmd's methods.
package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mna/mainer"
)

const binName = "lox"

var (
	shortUsage = fmt.Sprintf(`
usage: %s <command> <path>
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s <command> <path>
       %[1]s -h|--help
       %[1]s -v|--version

Tree-walking interpreter for the Lox programming language.

The <command> can be one of:
       tokenize                  Lex <path> and print one token per line.
       parse                     Lex and parse a single expression in
                                 <path> and print its parenthesized form.
       evaluate                  Lex, parse and evaluate a single
                                 expression in <path> and print its value.
       run                       Lex, parse, resolve and execute the
                                 program in <path>.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
`, binName)
)

// Cmd is the CLI entry point's flag-tagged argument struct, parsed by
// mainer.Parser.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	args  []string
	cmdFn func(context.Context, mainer.Stdio, []string) error
}

func (c *Cmd) SetArgs(args []string)          { c.args = args }
func (c *Cmd) SetFlags(_ map[string]bool)     {}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}
	if len(c.args) == 0 {
		return errors.New("no command specified")
	}

	cmdName := c.args[0]
	commands := buildCmds(c)
	c.cmdFn = commands[cmdName]
	if c.cmdFn == nil {
		return fmt.Errorf("unknown command: %s", cmdName)
	}
	if len(c.args[1:]) != 1 {
		return fmt.Errorf("%s: expected exactly one source file path", cmdName)
	}
	return nil
}

// Main parses args and dispatches to the requested command, returning the
// documented exit code (0, 65 or 70), mainer.InvalidArgs for bad
// arguments, or mainer.Failure for any other command error.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvPrefix: strings.ToUpper(binName) + "_"}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := c.cmdFn(ctx, stdio, c.args[1:]); err != nil {
		if ec, ok := err.(exitCoder); ok {
			return ec.ExitCode()
		}
		return mainer.Failure
	}
	return mainer.Success
}

// exitCoder lets a command's error carry the documented 65/70 exit status
// through Main's generic error handling.
type exitCoder interface {
	ExitCode() mainer.ExitCode
}

// valid commands take a context, a mainer.Stdio and a single-element slice
// of strings (the source path) and return an error.
func buildCmds(v any) map[string]func(context.Context, mainer.Stdio, []string) error {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) error)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type
		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}
		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		cmds[strings.ToLower(m.Name)] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) error)
	}
	return cmds
}
