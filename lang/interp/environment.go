package interp

import (
	"github.com/dolthub/swiss"
	"golang.org/x/exp/slices"
)

// Environment is a lexically scoped name->value frame with an optional
// parent pointer. The global frame is backed by a swiss-table map:
// globals are unbounded and long-lived, so they get the hash map. Every
// other frame (block and function/method call frames) is small and
// short-lived, so it stays a plain parallel-slice frame: appending a
// handful of names is cheaper than hashing for the sizes these frames
// actually reach.
type Environment struct {
	parent *Environment

	names  []string
	values []Value

	// global is non-nil only for the root frame; when set, it backs this
	// frame's bindings instead of names/values.
	global *swiss.Map[string, Value]
}

// NewGlobal returns a fresh root environment with no parent.
func NewGlobal() *Environment {
	return &Environment{global: swiss.NewMap[string, Value](64)}
}

// NewChild returns a fresh environment whose parent is parent.
func NewChild(parent *Environment) *Environment {
	return &Environment{parent: parent}
}

// Define installs or overwrites a binding in the current (head) frame. It
// never fails.
func (e *Environment) Define(name string, v Value) {
	if e.global != nil {
		e.global.Put(name, v)
		return
	}
	if i, ok := e.indexOf(name); ok {
		e.values[i] = v
		return
	}
	e.names = append(e.names, name)
	e.values = append(e.values, v)
}

func (e *Environment) indexOf(name string) (int, bool) {
	i := slices.Index(e.names, name)
	if i < 0 {
		return 0, false
	}
	return i, true
}

// Get returns the value bound to name in the nearest enclosing frame that
// holds it, reporting false if no frame (including the global one) does.
func (e *Environment) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if env.global != nil {
			if v, ok := env.global.Get(name); ok {
				return v, true
			}
			continue
		}
		if i, ok := env.indexOf(name); ok {
			return env.values[i], true
		}
	}
	return nil, false
}

// Assign overwrites the binding for name in the nearest enclosing frame
// that holds it. It never creates a new binding; it reports false if no
// frame holds name.
func (e *Environment) Assign(name string, v Value) bool {
	for env := e; env != nil; env = env.parent {
		if env.global != nil {
			if _, ok := env.global.Get(name); ok {
				env.global.Put(name, v)
				return true
			}
			continue
		}
		if i, ok := env.indexOf(name); ok {
			env.values[i] = v
			return true
		}
	}
	return false
}

func (e *Environment) ancestor(depth int) *Environment {
	env := e
	for i := 0; i < depth; i++ {
		env = env.parent
	}
	return env
}

// GetAt walks exactly depth parent links (0 = the current frame), then
// reads name without further search. A miss indicates a resolver/evaluator
// mismatch, an internal bug rather than a user-facing runtime error, so it
// panics.
func (e *Environment) GetAt(depth int, name string) Value {
	env := e.ancestor(depth)
	if env.global != nil {
		v, ok := env.global.Get(name)
		if !ok {
			panic("interp: resolver/evaluator mismatch: global '" + name + "' not found")
		}
		return v
	}
	i, ok := env.indexOf(name)
	if !ok {
		panic("interp: resolver/evaluator mismatch: '" + name + "' not found at resolved depth")
	}
	return env.values[i]
}

// AssignAt is the write counterpart of GetAt.
func (e *Environment) AssignAt(depth int, name string, v Value) {
	env := e.ancestor(depth)
	if env.global != nil {
		env.global.Put(name, v)
		return
	}
	i, ok := env.indexOf(name)
	if !ok {
		panic("interp: resolver/evaluator mismatch: '" + name + "' not found at resolved depth")
	}
	env.values[i] = v
}
