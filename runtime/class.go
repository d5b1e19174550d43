package runtime

// MethodBody is the structural interface a method's statement body must
// satisfy. It deliberately matches ast.Statement's Execute signature so
// the runtime package never has to import ast (which itself imports
// runtime) — Go's structural typing does the wiring for us.
type MethodBody interface {
	Execute(closure *Closure, ctx *Context) (ObjectHolder, error)
}

// Method is a named, fixed-arity callable bound to a Class: a
// constructor, a dunder operator method, or an ordinary method. If
// Params[0] == "self" the receiver is bound automatically by Call.
type Method struct {
	Name   string
	Params []string
	Body   MethodBody
}

// EffectiveArity is len(Params) minus one if the first formal is self,
// else len(Params).
func (m *Method) EffectiveArity() int {
	if len(m.Params) > 0 && m.Params[0] == "self" {
		return len(m.Params) - 1
	}
	return len(m.Params)
}

// Class is a named, ordered list of methods with an optional parent for
// single inheritance. The parent pointer is non-owning: the program
// driver that builds the class graph is responsible for keeping every
// Class referenced by a Parent pointer alive.
type Class struct {
	Name    string
	Methods []Method
	Parent  *Class
}

// NewClass builds a class with the given methods and optional parent.
func NewClass(name string, methods []Method, parent *Class) *Class {
	return &Class{Name: name, Methods: methods, Parent: parent}
}

// Print renders the class itself (not an instance of it).
func (c *Class) Print(*Context) (string, error) {
	return "Class " + c.Name, nil
}

// GetMethod walks from c up through Parent, returning the first method
// whose name matches and whose effective arity equals argc.
func (c *Class) GetMethod(name string, argc int) (*Method, bool) {
	for cur := c; cur != nil; cur = cur.Parent {
		for i := range cur.Methods {
			m := &cur.Methods[i]
			if m.Name == name && m.EffectiveArity() == argc {
				return m, true
			}
		}
	}
	return nil, false
}

// HasMethod mirrors GetMethod's predicate.
func (c *Class) HasMethod(name string, argc int) bool {
	_, ok := c.GetMethod(name, argc)
	return ok
}
