package ast

import (
	"strings"

	"github.com/mavmi/mython-interpreter/runtime"
)

// Compound executes a sequence of statements in order and always
// evaluates to an empty holder, regardless of what its last statement
// produced. It is the body of every if/else branch, every class method,
// and the top-level program itself; a method body only ever yields a
// non-empty value by hitting Return (§4.6).
type Compound struct {
	Statements []Statement
}

func (c *Compound) Execute(closure *runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	for _, stmt := range c.Statements {
		if _, err := stmt.Execute(closure, ctx); err != nil {
			return runtime.NoneHolder(), err
		}
	}
	return runtime.NoneHolder(), nil
}

// Print evaluates each argument left to right, renders it with
// runtime.Print, and writes the space-joined results followed by a
// newline to ctx.Output. It evaluates to None.
type Print struct {
	Args []Statement
}

func (p *Print) Execute(closure *runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	parts := make([]string, len(p.Args))
	for i, arg := range p.Args {
		v, err := arg.Execute(closure, ctx)
		if err != nil {
			return runtime.NoneHolder(), err
		}
		rendered, err := runtime.Print(v, ctx)
		if err != nil {
			return runtime.NoneHolder(), err
		}
		parts[i] = rendered
	}
	if _, err := ctx.Output.Write([]byte(strings.Join(parts, " ") + "\n")); err != nil {
		return runtime.NoneHolder(), err
	}
	return runtime.NoneHolder(), nil
}

// Return evaluates Value and unwinds to its enclosing MethodBody via a
// panic, since an arbitrarily deep stack of nested If/Compound frames
// may sit between this node and the method call that must receive the
// value. MethodBody.Execute is the only recover site — a Return reached
// outside of one is a programming error in the tree that built it, not
// a recoverable script-level failure.
type Return struct {
	Value Statement
}

func (r *Return) Execute(closure *runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	v, err := r.Value.Execute(closure, ctx)
	if err != nil {
		return runtime.NoneHolder(), err
	}
	panic(returnSignal{value: v})
}

// MethodBody wraps a Compound as a class method's body, catching the
// returnSignal a nested Return panics with and turning it back into a
// normal (ObjectHolder, error) result. A body that runs off the end
// without hitting Return evaluates to the Compound's own result, same
// as any other sequence.
type MethodBody struct {
	Body *Compound
}

func (m *MethodBody) Execute(closure *runtime.Closure, ctx *runtime.Context) (result runtime.ObjectHolder, err error) {
	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(returnSignal)
			if !ok {
				panic(r)
			}
			result, err = sig.value, nil
		}
	}()
	return m.Body.Execute(closure, ctx)
}
