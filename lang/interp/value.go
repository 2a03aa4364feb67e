// Package interp implements the tree-walking evaluator: the runtime value
// model, the lexically scoped Environment, and the statement/expression
// dispatch that executes a resolved program.
//
// Value, Environment, the callable/instance object graph and the evaluator
// are kept in one package rather than split across several: the three are
// tightly coupled (a function's closure is an *Environment, a class's
// methods are *Function, a call both reads and extends the environment
// chain) and splitting them apart would only introduce an import cycle
// between otherwise inseparable pieces.
package interp

import "strconv"

// Value is the tagged union of runtime value kinds: Nil, Bool, Number,
// String, Callable, Instance are the only implementations ever produced.
type Value interface {
	// String returns the value's printed representation.
	String() string
	// Type names the value's kind, used in error messages.
	Type() string
}

// NilType is the type of the single Nil value.
type NilType struct{}

// Nil is the Value representing the absence of a value.
var Nil = NilType{}

func (NilType) String() string { return "nil" }
func (NilType) Type() string   { return "nil" }

// Bool is a boolean value.
type Bool bool

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (Bool) Type() string { return "bool" }

// Number is a double-precision Lox number.
type Number float64

// String formats n with no decimal point for an integer-valued number,
// otherwise as the shortest unambiguous decimal.
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}
func (Number) Type() string { return "number" }

// String is a Lox string value. Its Value.String prints the raw text (no
// surrounding quotes), matching the `print` statement's output.
type String string

func (s String) String() string { return string(s) }
func (String) Type() string     { return "string" }

// Truthy implements Lox's truthiness rule: nil and false are falsy,
// every other value (including 0 and "") is truthy.
func Truthy(v Value) bool {
	switch vv := v.(type) {
	case NilType:
		return false
	case Bool:
		return bool(vv)
	default:
		return true
	}
}

// Equal implements Lox's equality rule: Nil only equals Nil; Bool,
// Number and String compare by content; Callable and Instance compare by
// identity; mixed kinds are never equal. Since every Callable/Instance
// implementation here is a pointer type, ordinary interface comparison
// already gives identity semantics for the default case.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case NilType:
		_, ok := b.(NilType)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	default:
		return a == b
	}
}
