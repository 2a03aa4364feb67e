package resolver_test

import (
	"testing"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	stmts, err := parser.Parse([]byte(src))
	require.NoError(t, err)
	return stmts
}

func TestResolve_LocalDepth(t *testing.T) {
	stmts := mustParse(t, `{ var a = 1; { var b = 2; print a + b; } }`)
	table, err := resolver.Resolve(stmts)
	require.NoError(t, err)

	// inner block: print a + b -- a is one block up (depth 1), b is in the
	// same block (depth 0).
	printStmt := stmts[0].(*ast.BlockStmt).Stmts[1].(*ast.BlockStmt).Stmts[1].(*ast.PrintStmt)
	bin := printStmt.Expr.(*ast.BinaryExpr)
	assert.Equal(t, 1, table[bin.Left])
	assert.Equal(t, 0, table[bin.Right])
}

func TestResolve_GlobalReferenceUnannotated(t *testing.T) {
	stmts := mustParse(t, `var g = 1; print g;`)
	table, err := resolver.Resolve(stmts)
	require.NoError(t, err)

	printStmt := stmts[1].(*ast.PrintStmt)
	_, ok := table[printStmt.Expr]
	assert.False(t, ok, "a reference to a global should be left unannotated")
}

func TestResolve_ReadInOwnInitializer(t *testing.T) {
	stmts := mustParse(t, `{ var a = a; }`)
	_, err := resolver.Resolve(stmts)
	require.Error(t, err)
	assert.Equal(t, resolver.KindReadInOwnInitializer, err.(*resolver.Error).Kind)
}

func TestResolve_DuplicateDeclaration(t *testing.T) {
	stmts := mustParse(t, `{ var a = 1; var a = 2; }`)
	_, err := resolver.Resolve(stmts)
	require.Error(t, err)
	assert.Equal(t, resolver.KindDuplicateDeclaration, err.(*resolver.Error).Kind)
}

func TestResolve_ReturnFromTopLevel(t *testing.T) {
	_, err := resolver.Resolve(mustParse(t, `return 1;`))
	require.Error(t, err)
	assert.Equal(t, resolver.KindReturnFromTopLevel, err.(*resolver.Error).Kind)
}

func TestResolve_ReturnValueFromInitializer(t *testing.T) {
	_, err := resolver.Resolve(mustParse(t, `class P { init() { return 1; } }`))
	require.Error(t, err)
	assert.Equal(t, resolver.KindReturnValueFromInitializer, err.(*resolver.Error).Kind)
}

func TestResolve_BareReturnFromInitializerIsFine(t *testing.T) {
	_, err := resolver.Resolve(mustParse(t, `class P { init() { return; } }`))
	require.NoError(t, err)
}

func TestResolve_SelfInheritance(t *testing.T) {
	_, err := resolver.Resolve(mustParse(t, `class A < A {}`))
	require.Error(t, err)
	assert.Equal(t, resolver.KindSelfInheritance, err.(*resolver.Error).Kind)
}

func TestResolve_ThisOutsideClass(t *testing.T) {
	_, err := resolver.Resolve(mustParse(t, `print this;`))
	require.Error(t, err)
	assert.Equal(t, resolver.KindThisOutsideClass, err.(*resolver.Error).Kind)
}

func TestResolve_SuperOutsideClass(t *testing.T) {
	_, err := resolver.Resolve(mustParse(t, `print super.x;`))
	require.Error(t, err)
	assert.Equal(t, resolver.KindSuperOutsideClass, err.(*resolver.Error).Kind)
}

func TestResolve_SuperInBaseClass(t *testing.T) {
	_, err := resolver.Resolve(mustParse(t, `class A { m() { return super.m(); } }`))
	require.Error(t, err)
	assert.Equal(t, resolver.KindSuperInBaseClass, err.(*resolver.Error).Kind)
}

func TestResolve_ThisInMethodIsDepthZero(t *testing.T) {
	stmts := mustParse(t, `class T { m() { return this; } }`)
	table, err := resolver.Resolve(stmts)
	require.NoError(t, err)

	cls := stmts[0].(*ast.ClassStmt)
	method := cls.Methods[0]
	ret := method.Body[0].(*ast.ReturnStmt)
	assert.Equal(t, 0, table[ret.Value])
}

func TestResolve_SuperDepthTwoInsideNestedClosure(t *testing.T) {
	stmts := mustParse(t, `
class A { greet() { return "A"; } }
class B < A { greet() { fun inner() { return super.greet(); } return inner(); } }
`)
	table, err := resolver.Resolve(stmts)
	require.NoError(t, err)

	classB := stmts[1].(*ast.ClassStmt)
	greet := classB.Methods[0]
	innerFn := greet.Body[0].(*ast.FunctionStmt)
	ret := innerFn.Body[0].(*ast.ReturnStmt)
	call := ret.Value.(*ast.CallExpr)
	superExpr := call.Callee.(*ast.SuperExpr)

	// from inside inner(), walking out: inner's own scope, then greet's
	// scope (holding `this`), then the class-declaration scope holding
	// `super` -- two scopes out.
	assert.Equal(t, 2, table[superExpr])
}
