// Package ast defines the Lox abstract syntax tree: the statement and
// expression node variants the parser produces and the resolver and
// evaluator walk.
//
// Nodes are plain structs reached through pointers, so that a node's
// identity (its pointer value) is stable across passes: the resolver's
// side-table keys off exactly that identity (see lang/resolver).
package ast

import "github.com/mna/lox/lang/token"

// Node is implemented by every statement and expression node; it exposes
// only what the resolver and evaluator need for diagnostics: the position
// of the construct in the source.
type Node interface {
	Span() token.Pos
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Ident names an identifier occurrence: a variable reference or target, a
// parameter, a function/class name, or a property name in a Get/Set/Super
// expression.
type Ident struct {
	Name string
	Pos  token.Pos
}

func (id Ident) Span() token.Pos { return id.Pos }
