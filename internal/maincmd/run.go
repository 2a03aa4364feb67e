package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/lox/lang/interp"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/mainer"
)

// Run implements the `run` CLI command: lex, parse, resolve and execute
// the full program in the file at args[0].
func (c *Cmd) Run(_ context.Context, stdio mainer.Stdio, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	stmts, perr := parser.Parse(src)
	if perr != nil {
		printSourceError(stdio.Stderr, perr)
		return dataErr(perr)
	}

	table, rerr := resolver.Resolve(stmts)
	if rerr != nil {
		fmt.Fprintln(stdio.Stderr, rerr.Error())
		return dataErr(rerr)
	}

	it := interp.New(table, stdio.Stdout)
	if err := it.Interpret(stmts); err != nil {
		printRuntimeError(stdio.Stderr, err)
		return runtimeErr(err)
	}
	return nil
}
