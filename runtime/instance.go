package runtime

import "fmt"

// instanceSeq stamps each ClassInstance with a monotonically increasing
// id at construction, used only as the print fallback when a class
// defines no __str__. The evaluator is single-threaded end to end (see
// the Concurrency section of the spec this runtime implements), so a
// bare counter is sufficient — there is no concurrent NewInstance call
// to race against.
var instanceSeq uint64

// ClassInstance is a live object: a class pointer plus its own field
// closure. Fields are resolved only on the instance itself — there is
// no field inheritance walk, only method inheritance via Class.Parent.
type ClassInstance struct {
	Class  *Class
	fields *Closure
	id     uint64
}

// NewInstance allocates a bare instance of class with no fields set.
// Fields come into existence the first time __init__ (or any method)
// assigns one; there is no declared field list to pre-populate.
func NewInstance(class *Class) *ClassInstance {
	instanceSeq++
	return &ClassInstance{Class: class, fields: NewClosure(), id: instanceSeq}
}

// Fields exposes the instance's field closure for direct field
// access/assignment (obj.field reads and obj.field = ... writes).
func (i *ClassInstance) Fields() *Closure {
	return i.fields
}

// HasMethod mirrors Class.HasMethod for this instance's class.
func (i *ClassInstance) HasMethod(name string, argc int) bool {
	return i.Class.HasMethod(name, argc)
}

// Call resolves name/argc against the instance's class, binds self plus
// the positional actuals into a fresh closure, and executes the method
// body. Returns a *RuntimeError if no method of that name and arity
// exists.
func (i *ClassInstance) Call(name string, actuals []ObjectHolder, ctx *Context) (ObjectHolder, error) {
	method, ok := i.Class.GetMethod(name, len(actuals))
	if !ok {
		return NoneHolder(), Errorf(0, "%s has no method %q taking %d argument(s)", i.Class.Name, name, len(actuals))
	}
	ctx.Logger.Debug("resolved method", "class", i.Class.Name, "method", name, "argc", len(actuals))

	if err := ctx.enterCall(); err != nil {
		return NoneHolder(), err
	}
	defer ctx.exitCall()

	closure := NewClosure()
	formals := method.Params
	start := 0
	if len(formals) > 0 && formals[0] == "self" {
		start = 1
	}
	for idx, actual := range actuals {
		closure.Set(formals[start+idx], actual)
	}
	if !closure.Has("self") {
		closure.Set("self", Share(i))
	}

	return method.Body.Execute(closure, ctx)
}

// Print delegates to __str__ when the class defines a zero-argument
// one, else falls back to an address-like placeholder. C++'s
// counterpart prints the instance's raw `this` pointer (os << this);
// Go offers no equivalent stable, printable address for a value a
// moving GC may relocate, so a per-instance sequence number stands in
// for it.
func (i *ClassInstance) Print(ctx *Context) (string, error) {
	if i.HasMethod("__str__", 0) {
		result, err := i.Call("__str__", nil, ctx)
		if err != nil {
			return "", err
		}
		return Print(result, ctx)
	}
	return fmt.Sprintf("<instance 0x%x>", i.id), nil
}
