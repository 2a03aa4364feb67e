package interp

import (
	"fmt"
	"io"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/resolver"
)

// Interpreter is the evaluator: it holds the single mutable "current
// environment" pointer, the permanent global environment, and a read-only
// view of the resolver's depth side-table.
type Interpreter struct {
	Globals *Environment
	env     *Environment
	table   resolver.Table
	out     io.Writer
}

// New returns an Interpreter ready to run a program resolved against
// table, printing `print` statement output to out.
func New(table resolver.Table, out io.Writer) *Interpreter {
	g := NewGlobal()
	defineGlobals(g)
	return &Interpreter{Globals: g, env: g, table: table, out: out}
}

// Interpret executes every statement in stmts in order. It stops and
// returns the first *RuntimeError encountered; runtime errors propagate to
// the top level, which is the caller here.
func (it *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := it.execStmt(s); err != nil {
			return err
		}
	}
	return nil
}

// Eval evaluates a single expression, for the `evaluate` CLI command.
func (it *Interpreter) Eval(expr ast.Expr) (Value, error) {
	return it.eval(expr)
}

func (it *Interpreter) execStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.BlockStmt:
		return it.execBlock(s.Stmts, NewChild(it.env))

	case *ast.ClassStmt:
		return it.execClassStmt(s)

	case *ast.ExpressionStmt:
		_, err := it.eval(s.Expr)
		return err

	case *ast.FunctionStmt:
		fn := &Function{Decl: s, Closure: it.env}
		it.env.Define(s.Name.Name, fn)
		return nil

	case *ast.IfStmt:
		cond, err := it.eval(s.Cond)
		if err != nil {
			return err
		}
		switch {
		case Truthy(cond):
			return it.execStmt(s.Then)
		case s.Else != nil:
			return it.execStmt(s.Else)
		}
		return nil

	case *ast.PrintStmt:
		v, err := it.eval(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(it.out, v.String())
		return nil

	case *ast.ReturnStmt:
		v := Value(Nil)
		if s.Value != nil {
			var err error
			if v, err = it.eval(s.Value); err != nil {
				return err
			}
		}
		panic(returnSignal{Value: v})

	case *ast.VarStmt:
		v := Value(Nil)
		if s.Init != nil {
			var err error
			if v, err = it.eval(s.Init); err != nil {
				return err
			}
		}
		it.env.Define(s.Name.Name, v)
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := it.eval(s.Cond)
			if err != nil {
				return err
			}
			if !Truthy(cond) {
				return nil
			}
			if err := it.execStmt(s.Body); err != nil {
				return err
			}
		}

	default:
		panic(fmt.Sprintf("interp: unexpected stmt %T", stmt))
	}
}

// execBlock runs stmts with env installed as the current environment,
// restoring the previous one on every exit path (normal completion, an
// error, or a return's non-local exit via panic(returnSignal{})), since
// the restore happens in a defer rather than after a return statement.
func (it *Interpreter) execBlock(stmts []ast.Stmt, env *Environment) error {
	previous := it.env
	it.env = env
	defer func() { it.env = previous }()

	for _, s := range stmts {
		if err := it.execStmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) execClassStmt(s *ast.ClassStmt) error {
	var super *Class
	if s.Superclass != nil {
		v, err := it.lookupVariable(s.Superclass, s.Superclass.Name)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return newRuntimeError(s.Superclass.Span(), "Superclass must be a class.")
		}
		super = sc
	}

	it.env.Define(s.Name.Name, Nil)

	methodEnv := it.env
	if super != nil {
		methodEnv = NewChild(it.env)
		methodEnv.Define("super", super)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Name] = &Function{
			Decl:    m,
			Closure: methodEnv,
			IsInit:  m.Name.Name == "init",
		}
	}

	class := &Class{Name: s.Name.Name, Superclass: super, Methods: methods}
	it.env.Assign(s.Name.Name, class)
	return nil
}
