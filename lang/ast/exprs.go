package ast

import "github.com/mna/lox/lang/token"

// LitKind distinguishes the kinds of literal an expression can hold,
// keeping the AST free of any dependency on the runtime value model in
// lang/interp.
type LitKind uint8

const (
	LitNil LitKind = iota
	LitBool
	LitNumber
	LitString
)

type (
	// AssignExpr represents `name = value`. The resolver annotates the
	// expression itself (by identity) with the depth at which Name resolves.
	AssignExpr struct {
		Name  Ident
		Value Expr
	}

	// BinaryExpr represents a binary arithmetic or comparison expression.
	BinaryExpr struct {
		Left  Expr
		Op    token.Token
		OpPos token.Pos
		Right Expr
	}

	// GroupingExpr represents a parenthesized expression, e.g. `(1 + 2)`.
	GroupingExpr struct {
		LParen token.Pos
		Expr   Expr
	}

	// LiteralExpr represents a literal nil/bool/number/string value.
	LiteralExpr struct {
		Pos    token.Pos
		Kind   LitKind
		Bool   bool
		Number float64
		Str    string
	}

	// LogicalExpr represents `and`/`or`, which short-circuit and therefore
	// cannot be modeled as an ordinary BinaryExpr.
	LogicalExpr struct {
		Left  Expr
		Op    token.Token
		OpPos token.Pos
		Right Expr
	}

	// UnaryExpr represents `-x` or `!x`.
	UnaryExpr struct {
		Op    token.Token
		OpPos token.Pos
		Right Expr
	}

	// VariableExpr represents a bare identifier used as an expression. The
	// resolver annotates this node (by identity) with a depth, or leaves it
	// unannotated to mean "global".
	VariableExpr struct {
		Name Ident
	}

	// ThisExpr represents a `this` expression inside a method body. Resolved
	// the same way as VariableExpr.
	ThisExpr struct {
		Keyword Ident
	}

	// SuperExpr represents `super.method`. Resolved the same way as
	// VariableExpr; Method is a property lookup, not itself resolved.
	SuperExpr struct {
		Keyword Ident
		Method  Ident
	}

	// CallExpr represents a function or method call `callee(args...)`.
	CallExpr struct {
		Callee Expr
		Paren  token.Pos // position of the closing ')', used for error reporting
		Args   []Expr
	}

	// GetExpr represents a property read `object.name`.
	GetExpr struct {
		Object Expr
		Name   Ident
	}

	// SetExpr represents a property write `object.name = value`.
	SetExpr struct {
		Object Expr
		Name   Ident
		Value  Expr
	}
)

func (n *AssignExpr) Span() token.Pos   { return n.Name.Pos }
func (n *BinaryExpr) Span() token.Pos   { return n.Left.Span() }
func (n *GroupingExpr) Span() token.Pos { return n.LParen }
func (n *LiteralExpr) Span() token.Pos  { return n.Pos }
func (n *LogicalExpr) Span() token.Pos  { return n.Left.Span() }
func (n *UnaryExpr) Span() token.Pos    { return n.OpPos }
func (n *VariableExpr) Span() token.Pos { return n.Name.Pos }
func (n *ThisExpr) Span() token.Pos     { return n.Keyword.Pos }
func (n *SuperExpr) Span() token.Pos    { return n.Keyword.Pos }
func (n *CallExpr) Span() token.Pos     { return n.Callee.Span() }
func (n *GetExpr) Span() token.Pos      { return n.Object.Span() }
func (n *SetExpr) Span() token.Pos      { return n.Object.Span() }

func (*AssignExpr) exprNode()   {}
func (*BinaryExpr) exprNode()   {}
func (*GroupingExpr) exprNode() {}
func (*LiteralExpr) exprNode()  {}
func (*LogicalExpr) exprNode()  {}
func (*UnaryExpr) exprNode()    {}
func (*VariableExpr) exprNode() {}
func (*ThisExpr) exprNode()     {}
func (*SuperExpr) exprNode()    {}
func (*CallExpr) exprNode()     {}
func (*GetExpr) exprNode()      {}
func (*SetExpr) exprNode()      {}
