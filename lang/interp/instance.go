package interp

import "github.com/dolthub/swiss"

// Instance is a live Lox object: a class reference plus a field map. Like
// the global environment, the field map is swiss-table backed: an
// instance's fields are an open-ended, potentially large, long-lived
// dynamic map.
type Instance struct {
	Class  *Class
	fields *swiss.Map[string, Value]
}

// NewInstance returns a fresh instance of c with no fields set.
func NewInstance(c *Class) *Instance {
	return &Instance{Class: c, fields: swiss.NewMap[string, Value](0)}
}

func (i *Instance) String() string { return i.Class.Name + " instance" }
func (i *Instance) Type() string   { return "instance" }

// Get reads the property name on i: fields shadow methods, and a method
// found by walking the class chain is bound to i before being returned.
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.fields.Get(name); ok {
		return v, true
	}
	if m := i.Class.FindMethod(name); m != nil {
		return m.Bind(i), true
	}
	return nil, false
}

// Set writes directly to the instance's field map.
func (i *Instance) Set(name string, v Value) {
	i.fields.Put(name, v)
}
