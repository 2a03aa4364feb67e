package maincmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/mainer"
)

// Parse implements the `parse` CLI command: lex and parse a single
// expression from the file at args[0] and print its parenthesized form.
func (c *Cmd) Parse(_ context.Context, stdio mainer.Stdio, args []string) error {
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

	var p ast.Printer
	fmt.Fprintln(stdio.Stdout, p.Print(expr))
	return nil
}
