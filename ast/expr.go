package ast

import "github.com/mavmi/mython-interpreter/runtime"

// NumberLiteral evaluates to a constant Number.
type NumberLiteral struct {
	Value int
}

func (n *NumberLiteral) Execute(*runtime.Closure, *runtime.Context) (runtime.ObjectHolder, error) {
	return runtime.Own(runtime.Number(n.Value)), nil
}

// StringLiteral evaluates to a constant String.
type StringLiteral struct {
	Value string
}

func (s *StringLiteral) Execute(*runtime.Closure, *runtime.Context) (runtime.ObjectHolder, error) {
	return runtime.Own(runtime.String(s.Value)), nil
}

// BoolLiteral evaluates to a constant Bool.
type BoolLiteral struct {
	Value bool
}

func (b *BoolLiteral) Execute(*runtime.Closure, *runtime.Context) (runtime.ObjectHolder, error) {
	return runtime.Own(runtime.Bool(b.Value)), nil
}

// NoneLiteral evaluates to the empty holder.
type NoneLiteral struct{}

func (NoneLiteral) Execute(*runtime.Closure, *runtime.Context) (runtime.ObjectHolder, error) {
	return runtime.NoneHolder(), nil
}

// VariableValue looks up Name in the active closure.
type VariableValue struct {
	Name string
	Line int
}

func (v *VariableValue) Execute(closure *runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	h, ok := closure.Get(v.Name)
	if !ok {
		return runtime.NoneHolder(), runtime.Errorf(v.Line, "undefined variable %q", v.Name)
	}
	return h, nil
}

// FieldAccess evaluates Object then reads Field off the resulting
// ClassInstance.
type FieldAccess struct {
	Object Statement
	Field  string
	Line   int
}

func (f *FieldAccess) Execute(closure *runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	recv, err := f.Object.Execute(closure, ctx)
	if err != nil {
		return runtime.NoneHolder(), err
	}
	inst, ok := runtime.TryAs[*runtime.ClassInstance](recv)
	if !ok {
		return runtime.NoneHolder(), runtime.Errorf(f.Line, "cannot access field %q of a non-instance value", f.Field)
	}
	h, ok := inst.Fields().Get(f.Field)
	if !ok {
		return runtime.NoneHolder(), runtime.Errorf(f.Line, "%s has no field %q", inst.Class.Name, f.Field)
	}
	return h, nil
}

// Assignment evaluates Value and binds it to Name in the active
// closure, creating the binding if it doesn't already exist. It
// evaluates to the assigned value.
type Assignment struct {
	Name  string
	Value Statement
}

func (a *Assignment) Execute(closure *runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	h, err := a.Value.Execute(closure, ctx)
	if err != nil {
		return runtime.NoneHolder(), err
	}
	closure.Set(a.Name, h)
	return h, nil
}

// FieldAssignment evaluates Object and Value, then stores Value into
// Object's Field. It evaluates to the assigned value.
type FieldAssignment struct {
	Object Statement
	Field  string
	Value  Statement
	Line   int
}

func (f *FieldAssignment) Execute(closure *runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	recv, err := f.Object.Execute(closure, ctx)
	if err != nil {
		return runtime.NoneHolder(), err
	}
	inst, ok := runtime.TryAs[*runtime.ClassInstance](recv)
	if !ok {
		return runtime.NoneHolder(), runtime.Errorf(f.Line, "cannot set field %q of a non-instance value", f.Field)
	}
	val, err := f.Value.Execute(closure, ctx)
	if err != nil {
		return runtime.NoneHolder(), err
	}
	inst.Fields().Set(f.Field, val)
	return val, nil
}

// binop is the shared shape of every two-operand arithmetic node.
type binop struct {
	Lhs, Rhs Statement
	op       func(a, b runtime.ObjectHolder, ctx *runtime.Context) (runtime.ObjectHolder, error)
}

func (b *binop) eval(closure *runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	lv, err := b.Lhs.Execute(closure, ctx)
	if err != nil {
		return runtime.NoneHolder(), err
	}
	rv, err := b.Rhs.Execute(closure, ctx)
	if err != nil {
		return runtime.NoneHolder(), err
	}
	return b.op(lv, rv, ctx)
}

// Add evaluates Lhs + Rhs.
type Add struct{ Lhs, Rhs Statement }

func (n *Add) Execute(closure *runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	return (&binop{n.Lhs, n.Rhs, runtime.Add}).eval(closure, ctx)
}

// Sub evaluates Lhs - Rhs.
type Sub struct{ Lhs, Rhs Statement }

func (n *Sub) Execute(closure *runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	return (&binop{n.Lhs, n.Rhs, runtime.Sub}).eval(closure, ctx)
}

// Mult evaluates Lhs * Rhs.
type Mult struct{ Lhs, Rhs Statement }

func (n *Mult) Execute(closure *runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	return (&binop{n.Lhs, n.Rhs, runtime.Mul}).eval(closure, ctx)
}

// Div evaluates Lhs / Rhs.
type Div struct{ Lhs, Rhs Statement }

func (n *Div) Execute(closure *runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	return (&binop{n.Lhs, n.Rhs, runtime.Div}).eval(closure, ctx)
}

// CompareOp names the comparison a Comparison node performs.
type CompareOp uint8

const (
	CmpEq CompareOp = iota
	CmpNotEq
	CmpLess
	CmpGreater
	CmpLessEq
	CmpGreaterEq
)

var compareFuncs = map[CompareOp]func(a, b runtime.ObjectHolder, ctx *runtime.Context) (runtime.ObjectHolder, error){
	CmpEq:        runtime.Equal,
	CmpNotEq:     runtime.NotEqual,
	CmpLess:      runtime.Less,
	CmpGreater:   runtime.Greater,
	CmpLessEq:    runtime.LessOrEqual,
	CmpGreaterEq: runtime.GreaterOrEqual,
}

// Comparison evaluates Lhs Op Rhs, dispatching through runtime's
// polymorphic comparison functions.
type Comparison struct {
	Op       CompareOp
	Lhs, Rhs Statement
}

func (c *Comparison) Execute(closure *runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	return (&binop{c.Lhs, c.Rhs, compareFuncs[c.Op]}).eval(closure, ctx)
}

// isTrueBool reports whether h holds a Bool that is true — unlike
// IsTrue, a non-zero Number or non-empty String does not count. Or/And
// test their operands this way, not with general truthiness.
func isTrueBool(h runtime.ObjectHolder) bool {
	b, ok := runtime.TryAs[runtime.Bool](h)
	return ok && bool(b)
}

// Or evaluates Lhs then Rhs unconditionally (no short-circuiting — a
// deliberately preserved infelicity, see DESIGN.md) and evaluates to
// true if either side is a true Bool.
type Or struct{ Lhs, Rhs Statement }

func (n *Or) Execute(closure *runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	lv, err := n.Lhs.Execute(closure, ctx)
	if err != nil {
		return runtime.NoneHolder(), err
	}
	rv, err := n.Rhs.Execute(closure, ctx)
	if err != nil {
		return runtime.NoneHolder(), err
	}
	return runtime.Own(runtime.Bool(isTrueBool(lv) || isTrueBool(rv))), nil
}

// And evaluates Lhs then Rhs unconditionally (same eager semantics as
// Or) and evaluates to true only if both sides are a true Bool.
type And struct{ Lhs, Rhs Statement }

func (n *And) Execute(closure *runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	lv, err := n.Lhs.Execute(closure, ctx)
	if err != nil {
		return runtime.NoneHolder(), err
	}
	rv, err := n.Rhs.Execute(closure, ctx)
	if err != nil {
		return runtime.NoneHolder(), err
	}
	return runtime.Own(runtime.Bool(isTrueBool(lv) && isTrueBool(rv))), nil
}

// Not evaluates to the negation of Operand's truthiness.
type Not struct{ Operand Statement }

func (n *Not) Execute(closure *runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	v, err := n.Operand.Execute(closure, ctx)
	if err != nil {
		return runtime.NoneHolder(), err
	}
	return runtime.Own(runtime.Bool(!runtime.IsTrue(v))), nil
}

// Stringify renders Operand's current value to its string form, the
// same rendering Print uses for each argument, as an explicit str()
// conversion usable anywhere an expression is expected.
type Stringify struct{ Operand Statement }

func (s *Stringify) Execute(closure *runtime.Closure, ctx *runtime.Context) (runtime.ObjectHolder, error) {
	v, err := s.Operand.Execute(closure, ctx)
	if err != nil {
		return runtime.NoneHolder(), err
	}
	rendered, err := runtime.Print(v, ctx)
	if err != nil {
		return runtime.NoneHolder(), err
	}
	return runtime.Own(runtime.String(rendered)), nil
}
