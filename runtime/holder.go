// Package runtime implements the mython value system: reference-semantic
// object handles, the built-in value variants, classes and instances,
// lexical closures, the output/logging Context, and the polymorphic
// comparison/arithmetic dispatch every binary operator funnels through.
package runtime

// Value is implemented by every runtime value variant: Number, String,
// Bool, *Class, *ClassInstance.
type Value interface {
	// Print renders the value to its string form. ClassInstance
	// overrides this to delegate to __str__ when the class defines one.
	Print(ctx *Context) (string, error)
}

// ObjectHolder is a reference handle to a Value with two construction
// modes, mirroring the ownership discipline the original implementation
// needs to avoid reference cycles: Own wraps a value this holder alone
// is responsible for; Share aliases a value owned elsewhere (used for
// self, so a method closure never pins its own receiver). Go's garbage
// collector reclaims cycles on its own, so the distinction carries no
// correctness weight here — it is kept because it documents which
// holders are meant to be the value's sole owner, matching the spec's
// ownership model one-for-one. A zero ObjectHolder is empty; the empty
// holder is also how the language-level None value is represented, and
// Print renders it as "None".
type ObjectHolder struct {
	obj   Value
	owned bool
}

// Own returns a holder that owns v exclusively.
func Own(v Value) ObjectHolder {
	return ObjectHolder{obj: v, owned: true}
}

// Share returns a holder that aliases v without owning it.
func Share(v Value) ObjectHolder {
	return ObjectHolder{obj: v, owned: false}
}

// NoneHolder returns an empty holder.
func NoneHolder() ObjectHolder {
	return ObjectHolder{}
}

// Get returns the held value, or nil if the holder is empty.
func (h ObjectHolder) Get() Value {
	return h.obj
}

// IsEmpty reports whether the holder has no referent.
func (h ObjectHolder) IsEmpty() bool {
	return h.obj == nil
}

// TryAs probes h for a value of type T, returning the zero T and false
// if the holder is empty or holds a different variant.
func TryAs[T Value](h ObjectHolder) (T, bool) {
	v, ok := h.obj.(T)
	return v, ok
}

// Print renders h: "None" for an empty holder, otherwise the held
// value's own rendering.
func Print(h ObjectHolder, ctx *Context) (string, error) {
	if h.IsEmpty() {
		return "None", nil
	}
	return h.obj.Print(ctx)
}

// IsTrue implements the language's truthiness rule: Number is true iff
// non-zero, Bool is true iff true, String is true iff non-empty; an
// empty holder, Class, or ClassInstance is always false.
func IsTrue(h ObjectHolder) bool {
	switch v := h.obj.(type) {
	case Number:
		return v != 0
	case Bool:
		return bool(v)
	case String:
		return v != ""
	default:
		return false
	}
}
