package ast

import "github.com/mna/lox/lang/token"

type (
	// BlockStmt represents a `{ ... }` block: its own lexical scope.
	BlockStmt struct {
		LBrace token.Pos
		Stmts  []Stmt
	}

	// ClassStmt represents a class declaration, optionally with a single
	// superclass.
	ClassStmt struct {
		Name       Ident
		Superclass *VariableExpr // nil if the class has no superclass
		Methods    []*FunctionStmt
	}

	// ExpressionStmt represents an expression evaluated for its side effect.
	ExpressionStmt struct {
		Expr Expr
	}

	// FunctionStmt represents a function or method declaration. Used both as
	// a top-level/local statement and, inside ClassStmt.Methods, as a method.
	FunctionStmt struct {
		Name   Ident
		Params []Ident
		Body   []Stmt
	}

	// IfStmt represents `if (cond) then [else else]`.
	IfStmt struct {
		If   token.Pos
		Cond Expr
		Then Stmt
		Else Stmt // nil if there is no else branch
	}

	// PrintStmt represents `print expr;`.
	PrintStmt struct {
		Keyword token.Pos
		Expr    Expr
	}

	// ReturnStmt represents `return [expr];`.
	ReturnStmt struct {
		Keyword token.Pos
		Value   Expr // nil if no value was given
	}

	// VarStmt represents `var name [= init];`.
	VarStmt struct {
		Name Ident
		Init Expr // nil if no initializer was given
	}

	// WhileStmt represents `while (cond) body`. A desugared `for` loop is a
	// BlockStmt wrapping a WhileStmt; there is no dedicated For node.
	WhileStmt struct {
		While token.Pos
		Cond  Expr
		Body  Stmt
	}
)

func (n *BlockStmt) Span() token.Pos      { return n.LBrace }
func (n *ClassStmt) Span() token.Pos      { return n.Name.Pos }
func (n *ExpressionStmt) Span() token.Pos { return n.Expr.Span() }
func (n *FunctionStmt) Span() token.Pos   { return n.Name.Pos }
func (n *IfStmt) Span() token.Pos         { return n.If }
func (n *PrintStmt) Span() token.Pos      { return n.Keyword }
func (n *ReturnStmt) Span() token.Pos     { return n.Keyword }
func (n *VarStmt) Span() token.Pos        { return n.Name.Pos }
func (n *WhileStmt) Span() token.Pos      { return n.While }

func (*BlockStmt) stmtNode()      {}
func (*ClassStmt) stmtNode()      {}
func (*ExpressionStmt) stmtNode() {}
func (*FunctionStmt) stmtNode()   {}
func (*IfStmt) stmtNode()         {}
func (*PrintStmt) stmtNode()      {}
func (*ReturnStmt) stmtNode()     {}
func (*VarStmt) stmtNode()        {}
func (*WhileStmt) stmtNode()      {}
