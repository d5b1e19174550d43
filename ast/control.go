package ast

import "github.com/mavmi/mython-interpreter/runtime"

// IfElse evaluates Condition and runs Then if it is truthy, Else
// otherwise. Else may be nil, in which case a false condition
// evaluates to None. The condition is tested with runtime.IsTrue
// directly rather than stringified and compared against literal
// "True"/"1" text — see DESIGN.md's Open Questions entry for why.
type IfElse struct {
	Condition Statement
	Then      *Compound
	Else      *Compound
}

func (i *IfElse) Execute(closure *runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	cond, err := i.Condition.Execute(closure, ctx)
	if err != nil {
		return runtime.NoneHolder(), err
	}
	if runtime.IsTrue(cond) {
		return i.Then.Execute(closure, ctx)
	}
	if i.Else == nil {
		return runtime.NoneHolder(), nil
	}
	return i.Else.Execute(closure, ctx)
}

// MethodDef is one method entry inside a ClassDefinition, carrying its
// own body tree rather than a runtime.Method directly so the class's
// Execute can build fresh runtime.Method values bound to this
// ClassDefinition's own *Compound bodies each time it runs.
type MethodDef struct {
	Name   string
	Params []string
	Body   *Compound
}

// ClassDefinition builds a runtime.Class from Name/Parent/Methods and
// registers it in ctx's global class table. Parent, if non-empty, must
// already be registered — classes cannot forward-reference a subclass
// defined later in the same program. It evaluates to the class itself.
type ClassDefinition struct {
	Name    string
	Parent  string
	Methods []MethodDef
	Line    int
}

func (c *ClassDefinition) Execute(closure *runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	var parent *runtime.Class
	if c.Parent != "" {
		p, ok := ctx.LookupClass(c.Parent)
		if !ok {
			return runtime.NoneHolder(), runtime.Errorf(c.Line, "unknown parent class %q", c.Parent)
		}
		parent = p
	}

	methods := make([]runtime.Method, len(c.Methods))
	for i, m := range c.Methods {
		methods[i] = runtime.Method{
			Name:   m.Name,
			Params: m.Params,
			Body:   &MethodBody{Body: m.Body},
		}
	}

	ctx.Logger.Debug("defined class", "name", c.Name, "parent", c.Parent, "methods", len(methods))
	class := runtime.NewClass(c.Name, methods, parent)
	ctx.DefineClass(class)
	return runtime.Own(class), nil
}
