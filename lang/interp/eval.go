package interp

import (
	"fmt"

	"github.com/mna/lox/lang/ast"
	"github.com/mna/lox/lang/token"
)

func (it *Interpreter) eval(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.AssignExpr:
		return it.evalAssign(e)
	case *ast.BinaryExpr:
		return it.evalBinary(e)
	case *ast.GroupingExpr:
		return it.eval(e.Expr)
	case *ast.LiteralExpr:
		return literalValue(e), nil
	case *ast.LogicalExpr:
		return it.evalLogical(e)
	case *ast.UnaryExpr:
		return it.evalUnary(e)
	case *ast.VariableExpr:
		return it.lookupVariable(e, e.Name)
	case *ast.ThisExpr:
		return it.lookupVariable(e, e.Keyword)
	case *ast.SuperExpr:
		return it.evalSuper(e)
	case *ast.CallExpr:
		return it.evalCall(e)
	case *ast.GetExpr:
		return it.evalGet(e)
	case *ast.SetExpr:
		return it.evalSet(e)
	default:
		panic(fmt.Sprintf("interp: unexpected expr %T", expr))
	}
}

func literalValue(e *ast.LiteralExpr) Value {
	switch e.Kind {
	case ast.LitNil:
		return Nil
	case ast.LitBool:
		return Bool(e.Bool)
	case ast.LitNumber:
		return Number(e.Number)
	case ast.LitString:
		return String(e.Str)
	default:
		panic(fmt.Sprintf("interp: unexpected literal kind %v", e.Kind))
	}
}

// lookupVariable resolves a Variable/this/super read: consult the
// resolver's depth side-table and read via GetAt if present, otherwise
// fall back to the global environment. expr is the node
// the resolver keyed the depth on (the VariableExpr/ThisExpr/SuperExpr
// itself); name is the identifier to read.
func (it *Interpreter) lookupVariable(expr ast.Expr, name ast.Ident) (Value, error) {
	if depth, ok := it.table[expr]; ok {
		return it.env.GetAt(depth, name.Name), nil
	}
	v, ok := it.Globals.Get(name.Name)
	if !ok {
		return nil, newRuntimeError(name.Pos, "Undefined variable '%s'.", name.Name)
	}
	return v, nil
}

func (it *Interpreter) evalAssign(e *ast.AssignExpr) (Value, error) {
	v, err := it.eval(e.Value)
	if err != nil {
		return nil, err
	}
	if depth, ok := it.table[e]; ok {
		it.env.AssignAt(depth, e.Name.Name, v)
		return v, nil
	}
	if !it.Globals.Assign(e.Name.Name, v) {
		return nil, newRuntimeError(e.Name.Pos, "Undefined variable '%s'.", e.Name.Name)
	}
	return v, nil
}

// evalLogical implements short-circuit `and`/`or`: the left operand is
// returned unchanged (not coerced to bool) when its truthiness already
// decides the result.
func (it *Interpreter) evalLogical(e *ast.LogicalExpr) (Value, error) {
	left, err := it.eval(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op == token.OR {
		if Truthy(left) {
			return left, nil
		}
	} else if !Truthy(left) {
		return left, nil
	}
	return it.eval(e.Right)
}

func (it *Interpreter) evalUnary(e *ast.UnaryExpr) (Value, error) {
	right, err := it.eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case token.MINUS:
		n, ok := right.(Number)
		if !ok {
			return nil, newRuntimeError(e.OpPos, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return Bool(!Truthy(right)), nil
	default:
		panic(fmt.Sprintf("interp: unexpected unary operator %#v", e.Op))
	}
}

func (it *Interpreter) evalBinary(e *ast.BinaryExpr) (Value, error) {
	left, err := it.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case token.PLUS:
		if ln, ok := left.(Number); ok {
			if rn, ok := right.(Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(String); ok {
			if rs, ok := right.(String); ok {
				return ls + rs, nil
			}
		}
		return nil, newRuntimeError(e.OpPos, "Operands must be two numbers or two strings.")

	case token.MINUS, token.SLASH, token.STAR,
		token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL:
		ln, lok := left.(Number)
		rn, rok := right.(Number)
		if !lok || !rok {
			return nil, newRuntimeError(e.OpPos, "Operands must be numbers.")
		}
		switch e.Op {
		case token.MINUS:
			return ln - rn, nil
		case token.SLASH:
			return ln / rn, nil
		case token.STAR:
			return ln * rn, nil
		case token.GREATER:
			return Bool(ln > rn), nil
		case token.GREATER_EQUAL:
			return Bool(ln >= rn), nil
		case token.LESS:
			return Bool(ln < rn), nil
		default:
			return Bool(ln <= rn), nil
		}

	case token.BANG_EQUAL:
		return Bool(!Equal(left, right)), nil
	case token.EQUAL_EQUAL:
		return Bool(Equal(left, right)), nil

	default:
		panic(fmt.Sprintf("interp: unexpected binary operator %#v", e.Op))
	}
}

func (it *Interpreter) evalCall(e *ast.CallExpr) (Value, error) {
	callee, err := it.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		v, err := it.eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, newRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, newRuntimeError(e.Paren, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	return fn.Call(it, args)
}

func (it *Interpreter) evalGet(e *ast.GetExpr) (Value, error) {
	obj, err := it.eval(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*Instance)
	if !ok {
		return nil, newRuntimeError(e.Name.Pos, "Only instances have properties.")
	}
	v, ok := inst.Get(e.Name.Name)
	if !ok {
		return nil, newRuntimeError(e.Name.Pos, "Undefined property '%s'.", e.Name.Name)
	}
	return v, nil
}

func (it *Interpreter) evalSet(e *ast.SetExpr) (Value, error) {
	obj, err := it.eval(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*Instance)
	if !ok {
		return nil, newRuntimeError(e.Name.Pos, "Only instances have fields.")
	}
	v, err := it.eval(e.Value)
	if err != nil {
		return nil, err
	}
	inst.Set(e.Name.Name, v)
	return v, nil
}

// evalSuper dispatches a `super.method` access: `super` is looked up at
// its resolved depth d, and `this` is looked up at depth d-1, since the `this`
// scope is always one inside the `super` scope (true whether that `this`
// shares a frame with a method's own parameters, or is found through
// however many intervening function frames a closure created inside the
// method body adds; the relative distance of one is what the resolver and
// the call-time environment chain both preserve).
func (it *Interpreter) evalSuper(e *ast.SuperExpr) (Value, error) {
	depth, ok := it.table[e]
	if !ok {
		panic("interp: unresolved super expression")
	}
	super, ok := it.env.GetAt(depth, "super").(*Class)
	if !ok {
		panic("interp: resolver/evaluator mismatch: 'super' is not a class")
	}
	inst, ok := it.env.GetAt(depth-1, "this").(*Instance)
	if !ok {
		panic("interp: resolver/evaluator mismatch: 'this' is not an instance")
	}

	m := super.FindMethod(e.Method.Name)
	if m == nil {
		return nil, newRuntimeError(e.Method.Pos, "Undefined property '%s'.", e.Method.Name)
	}
	return m.Bind(inst), nil
}
