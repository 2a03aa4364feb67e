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

// Evaluate implements the `evaluate` CLI command: lex, parse and evaluate
// a single expression from the file at args[0] and print its value. Unlike
// `run`, there is no program to resolve, so every variable reference falls
// back to the global environment via an empty resolver.Table.
func (c *Cmd) Evaluate(_ context.Context, stdio mainer.Stdio, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	expr, perr := parser.ParseExpr(src)
	if perr != nil {
		printSourceError(stdio.Stderr, perr)
		return dataErr(perr)
	}

	it := interp.New(resolver.Table{}, stdio.Stdout)
	v, rerr := it.Eval(expr)
	if rerr != nil {
		printRuntimeError(stdio.Stderr, rerr)
		return runtimeErr(rerr)
	}

	fmt.Fprintln(stdio.Stdout, v.String())
	return nil
}
