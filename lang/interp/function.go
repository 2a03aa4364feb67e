package interp

import "github.com/mna/lox/lang/ast"

// Function is a user-defined function or method value. It owns a reference
// to its declaration, its captured closure environment, whether it is a
// class initializer, and an optional bound instance.
//
// Two Functions sharing a declaration but differing in Bound are distinct
// values; Bind always allocates a fresh *Function rather than mutating
// the original, so rebinding never nests: Bind reads f.Decl/f.Closure/
// f.IsInit from the unbound original even if f is itself already bound,
// which is automatic here since Bind never reassigns those fields on its
// receiver.
type Function struct {
	Decl    *ast.FunctionStmt
	Closure *Environment
	IsInit  bool
	Bound   *Instance // nil if unbound
}

func (f *Function) String() string { return "<fn " + f.Decl.Name.Name + ">" }
func (f *Function) Type() string   { return "function" }
func (f *Function) Arity() int     { return len(f.Decl.Params) }

// Bind returns a fresh function sharing f's declaration and is-initializer
// flag, with inst recorded as the bound instance. f's own closure is left
// untouched: the closure never contains `this`, only the per-call
// environment does, which keeps the class/method/instance graph free of a
// closure-held back-reference and makes rebinding uniform.
func (f *Function) Bind(inst *Instance) *Function {
	return &Function{Decl: f.Decl, Closure: f.Closure, IsInit: f.IsInit, Bound: inst}
}

// Call executes f: a fresh environment child of the closure holds `this`
// (if bound) and the parameters together, the body executes against it,
// and a `return` unwinds through exactly this call via returnSignal. An
// initializer always yields the bound instance, even on a bare `return;`.
func (f *Function) Call(it *Interpreter, args []Value) (result Value, err error) {
	env := NewChild(f.Closure)
	if f.Bound != nil {
		env.Define("this", f.Bound)
	}
	for i, p := range f.Decl.Params {
		env.Define(p.Name, args[i])
	}

	defer func() {
		if r := recover(); r != nil {
			rs, ok := r.(returnSignal)
			if !ok {
				panic(r)
			}
			if f.IsInit {
				result, err = f.Bound, nil
				return
			}
			result, err = rs.Value, nil
		}
	}()

	if berr := it.execBlock(f.Decl.Body, env); berr != nil {
		return nil, berr
	}
	if f.IsInit {
		return f.Bound, nil
	}
	return Nil, nil
}
