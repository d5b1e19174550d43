package ast

import "github.com/mavmi/mython-interpreter/runtime"

// NewInstance allocates an instance of ClassName, looked up in ctx's
// global class table, then calls its __init__ with Args (if __init__
// of that arity exists — a class with no matching __init__ simply
// skips construction-time initialization). It evaluates to the new
// instance.
type NewInstance struct {
	ClassName string
	Args      []Statement
	Line      int
}

func (n *NewInstance) Execute(closure *runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	class, ok := ctx.LookupClass(n.ClassName)
	if !ok {
		return runtime.NoneHolder(), runtime.Errorf(n.Line, "unknown class %q", n.ClassName)
	}

	actuals, err := evalArgs(n.Args, closure, ctx)
	if err != nil {
		return runtime.NoneHolder(), err
	}

	inst := runtime.NewInstance(class)
	ctx.Logger.Debug("constructed instance", "class", n.ClassName, "argc", len(actuals))
	if inst.HasMethod("__init__", len(actuals)) {
		if _, err := inst.Call("__init__", actuals, ctx); err != nil {
			return runtime.NoneHolder(), err
		}
	}
	return runtime.Own(inst), nil
}

// MethodCall evaluates Object; if it is a ClassInstance with a method
// matching Method/arity, calls it with Args. Otherwise — a non-instance
// receiver, or no method of that name and arity — it evaluates to an
// empty holder rather than erroring.
type MethodCall struct {
	Object Statement
	Method string
	Args   []Statement
	Line   int
}

func (m *MethodCall) Execute(closure *runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	recv, err := m.Object.Execute(closure, ctx)
	if err != nil {
		return runtime.NoneHolder(), err
	}
	inst, ok := runtime.TryAs[*runtime.ClassInstance](recv)
	if !ok {
		return runtime.NoneHolder(), nil
	}

	actuals, err := evalArgs(m.Args, closure, ctx)
	if err != nil {
		return runtime.NoneHolder(), err
	}
	if !inst.HasMethod(m.Method, len(actuals)) {
		return runtime.NoneHolder(), nil
	}

	return inst.Call(m.Method, actuals, ctx)
}

func evalArgs(args []Statement, closure *runtime.Closure, ctx *runtime.Context) ([]runtime.ObjectHolder, error) {
	actuals := make([]runtime.ObjectHolder, len(args))
	for i, arg := range args {
		v, err := arg.Execute(closure, ctx)
		if err != nil {
			return nil, err
		}
		actuals[i] = v
	}
	return actuals, nil
}
