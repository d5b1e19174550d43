package runtime

// This file implements the polymorphic dispatch every binary operator
// in the language funnels through, transcribed from
// original_source/runtime.cpp's Equal/Less/Add et al.: same-variant
// primitive pairs are handled directly, an operation whose left operand
// is a ClassInstance is handed to that instance's relevant dunder method
// when one exists, and everything else is a *RuntimeError — there is no
// silent false/zero fallback. A primitive left operand paired with a
// ClassInstance right operand is never delegated.

// Equal implements ==. Number/String/Bool compare by value when both
// sides are the same variant. A ClassInstance receiver with a
// one-argument __eq__ delegates to it. Any other pairing is an error.
func Equal(a, b ObjectHolder, ctx *Context) (ObjectHolder, error) {
	switch av := a.Get().(type) {
	case Number:
		if bv, ok := TryAs[Number](b); ok {
			return Own(Bool(av == bv)), nil
		}
	case String:
		if bv, ok := TryAs[String](b); ok {
			return Own(Bool(av == bv)), nil
		}
	case Bool:
		if bv, ok := TryAs[Bool](b); ok {
			return Own(Bool(av == bv)), nil
		}
	case *ClassInstance:
		if av.HasMethod("__eq__", 1) {
			return av.Call("__eq__", []ObjectHolder{b}, ctx)
		}
	}
	return NoneHolder(), Errorf(0, "cannot compare %s with %s using ==", describe(a), describe(b))
}

// NotEqual is the negation of Equal.
func NotEqual(a, b ObjectHolder, ctx *Context) (ObjectHolder, error) {
	eq, err := Equal(a, b, ctx)
	if err != nil {
		return NoneHolder(), err
	}
	return Own(Bool(!IsTrue(eq))), nil
}

// Less implements <. Number/String compare by value; Bool orders False
// before True. A ClassInstance receiver with a one-argument __lt__
// delegates to it.
func Less(a, b ObjectHolder, ctx *Context) (ObjectHolder, error) {
	switch av := a.Get().(type) {
	case Number:
		if bv, ok := TryAs[Number](b); ok {
			return Own(Bool(av < bv)), nil
		}
	case String:
		if bv, ok := TryAs[String](b); ok {
			return Own(Bool(av < bv)), nil
		}
	case Bool:
		if bv, ok := TryAs[Bool](b); ok {
			return Own(Bool(!bool(av) && bool(bv))), nil
		}
	case *ClassInstance:
		if av.HasMethod("__lt__", 1) {
			return av.Call("__lt__", []ObjectHolder{b}, ctx)
		}
	}
	return NoneHolder(), Errorf(0, "cannot compare %s with %s using <", describe(a), describe(b))
}

// Greater implements > as !Less(a,b) && !Equal(a,b), not the flip
// Less(b,a) — the flip would delegate __lt__ to b instead of a and
// never consult a.__eq__, diverging from dunder dispatch on
// ClassInstance operands.
func Greater(a, b ObjectHolder, ctx *Context) (ObjectHolder, error) {
	lt, err := Less(a, b, ctx)
	if err != nil {
		return NoneHolder(), err
	}
	if IsTrue(lt) {
		return Own(Bool(false)), nil
	}
	eq, err := Equal(a, b, ctx)
	if err != nil {
		return NoneHolder(), err
	}
	return Own(Bool(!IsTrue(eq))), nil
}

// LessOrEqual implements <= as Less(a,b) || Equal(a,b).
func LessOrEqual(a, b ObjectHolder, ctx *Context) (ObjectHolder, error) {
	lt, err := Less(a, b, ctx)
	if err != nil {
		return NoneHolder(), err
	}
	if IsTrue(lt) {
		return Own(Bool(true)), nil
	}
	return Equal(a, b, ctx)
}

// GreaterOrEqual implements >= as the negation of Less.
func GreaterOrEqual(a, b ObjectHolder, ctx *Context) (ObjectHolder, error) {
	lt, err := Less(a, b, ctx)
	if err != nil {
		return NoneHolder(), err
	}
	return Own(Bool(!IsTrue(lt))), nil
}

// Add implements +. Number+Number adds; String+String concatenates. A
// ClassInstance receiver with a one-argument __add__ delegates to it.
func Add(a, b ObjectHolder, ctx *Context) (ObjectHolder, error) {
	switch av := a.Get().(type) {
	case Number:
		if bv, ok := TryAs[Number](b); ok {
			return Own(av + bv), nil
		}
	case String:
		if bv, ok := TryAs[String](b); ok {
			return Own(av + bv), nil
		}
	case *ClassInstance:
		if av.HasMethod("__add__", 1) {
			return av.Call("__add__", []ObjectHolder{b}, ctx)
		}
	}
	return NoneHolder(), Errorf(0, "cannot add %s and %s", describe(a), describe(b))
}

// Sub implements -, Number only.
func Sub(a, b ObjectHolder, ctx *Context) (ObjectHolder, error) {
	av, aok := TryAs[Number](a)
	bv, bok := TryAs[Number](b)
	if !aok || !bok {
		return NoneHolder(), Errorf(0, "cannot subtract %s and %s", describe(a), describe(b))
	}
	return Own(av - bv), nil
}

// Mul implements *, Number only.
func Mul(a, b ObjectHolder, ctx *Context) (ObjectHolder, error) {
	av, aok := TryAs[Number](a)
	bv, bok := TryAs[Number](b)
	if !aok || !bok {
		return NoneHolder(), Errorf(0, "cannot multiply %s and %s", describe(a), describe(b))
	}
	return Own(av * bv), nil
}

// Div implements /, Number only. Division by zero is a *RuntimeError,
// not a panic — Go's own integer division traps with a runtime panic,
// which this dispatch deliberately avoids surfacing to script authors.
func Div(a, b ObjectHolder, ctx *Context) (ObjectHolder, error) {
	av, aok := TryAs[Number](a)
	bv, bok := TryAs[Number](b)
	if !aok || !bok {
		return NoneHolder(), Errorf(0, "cannot divide %s and %s", describe(a), describe(b))
	}
	if bv == 0 {
		return NoneHolder(), Errorf(0, "division by zero")
	}
	return Own(av / bv), nil
}

// describe names a holder's variant for error messages: "None" for an
// empty holder, "Number"/"String"/"Bool" for the primitives, "Class "
// plus the name for a class, the class name for an instance, else
// "value".
func describe(h ObjectHolder) string {
	switch v := h.Get().(type) {
	case nil:
		return "None"
	case Number:
		return "Number"
	case String:
		return "String"
	case Bool:
		return "Bool"
	case *Class:
		return "Class " + v.Name
	case *ClassInstance:
		return v.Class.Name
	default:
		return "value"
	}
}
