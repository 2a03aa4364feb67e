package ast_test

import (
	"testing"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	expr, err := parser.ParseExpr([]byte(src))
	require.NoError(t, err)
	return expr
}

func TestPrinter(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"1 + 2", "(+ 1.0 2.0)"},
		{"(1 + 2)", "(group (+ 1.0 2.0))"},
		{"1.25 * 2", "(* 1.25 2.0)"},
		{"-x", "(- (var x))"},
		{"!true", "(! true)"},
		{"nil", "nil"},
		{"a = 1", "(assign a 1.0)"},
		{"a.b", "(get (var a).b)"},
		{"a.b = 1", "(set (var a).b 1.0)"},
		{"f(1, 2)", "(call (var f) 1.0 2.0)"},
		{"this", "(this)"},
	}
	var p ast.Printer
	for _, c := range cases {
		assert.Equal(t, c.want, p.Print(mustParseExpr(t, c.src)), c.src)
	}
}
