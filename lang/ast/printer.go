package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Printer renders an expression tree as a fully-parenthesized s-expression,
// the form the `parse` CLI command prints: `(+ 1.0 2.0)`,
// `(group (+ 1.0 2.0))`, `(var x)`, etc. Number literals always carry at
// least one fractional digit, so `1 + 2` prints as `(+ 1.0 2.0)`.
//
// Like the resolver and evaluator, it walks the tree with a direct type
// switch rather than double-dispatch visitor machinery.
type Printer struct {
	sb strings.Builder
}

// Print returns the parenthesized representation of expr.
func (p *Printer) Print(expr Expr) string {
	p.sb.Reset()
	p.print(expr)
	return p.sb.String()
}

func (p *Printer) print(expr Expr) {
	switch e := expr.(type) {
	case *AssignExpr:
		p.sb.WriteString("(assign ")
		p.sb.WriteString(e.Name.Name)
		p.sb.WriteByte(' ')
		p.print(e.Value)
		p.sb.WriteByte(')')

	case *BinaryExpr:
		p.parenthesize(e.Op.String(), e.Left, e.Right)

	case *GroupingExpr:
		p.parenthesize("group", e.Expr)

	case *LiteralExpr:
		p.sb.WriteString(formatLiteral(e))

	case *LogicalExpr:
		p.parenthesize(e.Op.String(), e.Left, e.Right)

	case *UnaryExpr:
		p.parenthesize(e.Op.String(), e.Right)

	case *VariableExpr:
		p.sb.WriteString("(var ")
		p.sb.WriteString(e.Name.Name)
		p.sb.WriteByte(')')

	case *ThisExpr:
		p.sb.WriteString("(this)")

	case *SuperExpr:
		p.sb.WriteString("(super ")
		p.sb.WriteString(e.Method.Name)
		p.sb.WriteByte(')')

	case *CallExpr:
		p.sb.WriteString("(call ")
		p.print(e.Callee)
		for _, a := range e.Args {
			p.sb.WriteByte(' ')
			p.print(a)
		}
		p.sb.WriteByte(')')

	case *GetExpr:
		p.sb.WriteString("(get ")
		p.print(e.Object)
		p.sb.WriteByte('.')
		p.sb.WriteString(e.Name.Name)
		p.sb.WriteByte(')')

	case *SetExpr:
		p.sb.WriteString("(set ")
		p.print(e.Object)
		p.sb.WriteByte('.')
		p.sb.WriteString(e.Name.Name)
		p.sb.WriteByte(' ')
		p.print(e.Value)
		p.sb.WriteByte(')')

	default:
		panic(fmt.Sprintf("ast.Printer: unexpected expr %T", expr))
	}
}

func (p *Printer) parenthesize(name string, exprs ...Expr) {
	p.sb.WriteByte('(')
	p.sb.WriteString(name)
	for _, e := range exprs {
		p.sb.WriteByte(' ')
		p.print(e)
	}
	p.sb.WriteByte(')')
}

func formatLiteral(e *LiteralExpr) string {
	switch e.Kind {
	case LitNil:
		return "nil"
	case LitBool:
		if e.Bool {
			return "true"
		}
		return "false"
	case LitNumber:
		s := strconv.FormatFloat(e.Number, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	case LitString:
		return e.Str
	default:
		return "nil"
	}
}
