package maincmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mna/lox/lang/scanner"
	"github.com/mna/lox/lang/token"
	"github.com/mna/mainer"
)

// Tokenize implements the `tokenize` CLI command: lex the file at args[0]
// and print one token per line as `TYPE LEXEME LITERAL`, then a trailing
// `EOF  null` line.
func (c *Cmd) Tokenize(_ context.Context, stdio mainer.Stdio, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(stdio.Stderr, err)
		return err
	}

	toks, scanErr := scanner.ScanAll(src)
	for _, tv := range toks {
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", tv.Token.CLIName(), tv.Value.Lexeme, tv.Token.Literal(tv.Value))
	}

	if scanErr != nil {
		printSourceError(stdio.Stderr, scanErr)
		return dataErr(scanErr)
	}
	return nil
}

func printSourceError(w io.Writer, err error) {
	if el, ok := err.(token.ErrorList); ok {
		for _, e := range el {
			fmt.Fprintln(w, e.Error())
		}
		return
	}
	fmt.Fprintln(w, err.Error())
}
