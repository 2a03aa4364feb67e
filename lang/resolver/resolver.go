// Package resolver implements the static pass that assigns every local
// variable reference a lexical depth and validates class and function
// context (`this`, `super`, `return`, self-inheritance).
//
// The pass is a single type-switch walk over the statement list,
// maintaining a stack of scope maps pushed on Block/function/class entry
// and popped on exit.
package resolver

import (
	"fmt"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

// Kind names one of the resolver's distinct failure modes.
type Kind string

const (
	KindReadInOwnInitializer       Kind = "ReadInOwnInitializer"
	KindDuplicateDeclaration       Kind = "DuplicateDeclaration"
	KindSelfInheritance            Kind = "SelfInheritance"
	KindReturnFromTopLevel         Kind = "ReturnFromTopLevel"
	KindReturnValueFromInitializer Kind = "ReturnValueFromInitializer"
	KindThisOutsideClass           Kind = "ThisOutsideClass"
	KindSuperOutsideClass          Kind = "SuperOutsideClass"
	KindSuperInBaseClass           Kind = "SuperInBaseClass"
)

// Error is a resolve-phase failure. Resolution stops at the first error.
type Error struct {
	Kind Kind
	Pos  token.Pos
	Msg  string
}

func (e *Error) Error() string {
	return (&token.Error{Pos: e.Pos, Msg: e.Msg}).Error()
}

// Table maps a local-reference expression node, keyed by identity, to the
// lexical depth computed for it by Resolve. An expression absent from the
// table is a reference to the global environment.
type Table map[ast.Expr]int

type functionType int

const (
	funcNone functionType = iota
	funcFunction
	funcMethod
	funcInitializer
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

type resolver struct {
	scopes          []map[string]bool
	table           Table
	currentFunction functionType
	currentClass    classType
	err             *Error
}

// Resolve runs the resolver over a parsed program and returns the depth
// side-table. If the program fails resolution, the returned error is a
// non-nil *Error and the table is only partially populated.
func Resolve(stmts []ast.Stmt) (Table, error) {
	r := &resolver{table: make(Table)}
	r.resolveStmts(stmts)
	if r.err != nil {
		return r.table, r.err
	}
	return r.table, nil
}

func (r *resolver) fail(kind Kind, pos token.Pos, format string, args ...any) {
	if r.err != nil {
		return // stop at the first error
	}
	r.err = &Error{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func (r *resolver) failed() bool { return r.err != nil }

func (r *resolver) beginScope() { r.scopes = append(r.scopes, make(map[string]bool)) }
func (r *resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *resolver) declare(name ast.Ident) {
	if r.failed() || len(r.scopes) == 0 {
		return // global scope: redeclaration is always permitted
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Name]; ok {
		r.fail(KindDuplicateDeclaration, name.Pos,
			"Already a variable with this name in this scope.")
		return
	}
	scope[name.Name] = false
}

func (r *resolver) define(name ast.Ident) {
	if r.failed() || len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Name] = true
}

// resolveLocal walks the scope stack from innermost out, recording the
// depth of the first scope containing name. If no scope contains it, expr
// is left unannotated and treated as a global reference.
func (r *resolver) resolveLocal(expr ast.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.table[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		if r.failed() {
			return
		}
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(stmt ast.Stmt) {
	if r.failed() {
		return
	}
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Stmts)
		r.endScope()

	case *ast.ClassStmt:
		r.resolveClass(s)

	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expr)

	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, funcFunction, false)

	case *ast.IfStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.PrintStmt:
		r.resolveExpr(s.Expr)

	case *ast.ReturnStmt:
		if r.currentFunction == funcNone {
			r.fail(KindReturnFromTopLevel, s.Keyword, "Can't return from top-level code.")
			return
		}
		if s.Value != nil {
			if r.currentFunction == funcInitializer {
				r.fail(KindReturnValueFromInitializer, s.Keyword,
					"Can't return a value from an initializer.")
				return
			}
			r.resolveExpr(s.Value)
		}

	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Init != nil {
			r.resolveExpr(s.Init)
		}
		r.define(s.Name)

	case *ast.WhileStmt:
		r.resolveExpr(s.Cond)
		r.resolveStmt(s.Body)

	default:
		panic(fmt.Sprintf("resolver: unexpected stmt %T", stmt))
	}
}

func (r *resolver) resolveClass(s *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Name == s.Name.Name {
			r.fail(KindSelfInheritance, s.Superclass.Name.Pos, "A class can't inherit from itself.")
			return
		}
		r.currentClass = classSubclass
		r.resolveLocal(s.Superclass, s.Superclass.Name.Name)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	for _, m := range s.Methods {
		ft := funcMethod
		if m.Name.Name == "init" {
			ft = funcInitializer
		}
		r.resolveFunction(m, ft, true)
		if r.failed() {
			break
		}
	}

	if s.Superclass != nil {
		r.endScope() // super
	}

	r.currentClass = enclosingClass
}

// resolveFunction resolves a function or method body. A method's `this` is
// declared in the very same scope as its parameters (matching the single
// call-time environment the evaluator builds for a bound call, see
// lang/interp), not in a separate enclosing scope: from directly inside a
// method body `this` resolves to depth 0, exactly like a parameter.
func (r *resolver) resolveFunction(fn *ast.FunctionStmt, ft functionType, injectThis bool) {
	enclosingFunction := r.currentFunction
	r.currentFunction = ft

	r.beginScope()
	if injectThis {
		r.scopes[len(r.scopes)-1]["this"] = true
	}
	for _, p := range fn.Params {
		r.declare(p)
		r.define(p)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *resolver) resolveExpr(expr ast.Expr) {
	if r.failed() {
		return
	}
	switch e := expr.(type) {
	case *ast.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name.Name)

	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.GroupingExpr:
		r.resolveExpr(e.Expr)

	case *ast.LiteralExpr:
		// nothing to do

	case *ast.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.UnaryExpr:
		r.resolveExpr(e.Right)

	case *ast.VariableExpr:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Name]; ok && !defined {
				r.fail(KindReadInOwnInitializer, e.Name.Pos,
					"Can't read local variable in its own initializer.")
				return
			}
		}
		r.resolveLocal(e, e.Name.Name)

	case *ast.ThisExpr:
		if r.currentClass == classNone {
			r.fail(KindThisOutsideClass, e.Keyword.Pos, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, "this")

	case *ast.SuperExpr:
		switch r.currentClass {
		case classNone:
			r.fail(KindSuperOutsideClass, e.Keyword.Pos, "Can't use 'super' outside of a class.")
			return
		case classClass:
			r.fail(KindSuperInBaseClass, e.Keyword.Pos,
				"Can't use 'super' in a class with no superclass.")
			return
		}
		r.resolveLocal(e, "super")

	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, a := range e.Args {
			r.resolveExpr(a)
			if r.failed() {
				return
			}
		}

	case *ast.GetExpr:
		r.resolveExpr(e.Object)

	case *ast.SetExpr:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	default:
		panic(fmt.Sprintf("resolver: unexpected expr %T", expr))
	}
}
