package runtime

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualSameVariant(t *testing.T) {
	ctx := NewContext(&bytes.Buffer{})
	h, err := Equal(Own(Number(3)), Own(Number(3)), ctx)
	require.NoError(t, err)
	assert.True(t, IsTrue(h))

	h, err = Equal(Own(String("a")), Own(String("b")), ctx)
	require.NoError(t, err)
	assert.False(t, IsTrue(h))
}

func TestEqualMismatchedKnownTypesErrors(t *testing.T) {
	ctx := NewContext(&bytes.Buffer{})
	_, err := Equal(Own(Number(3)), Own(String("3")), ctx)
	require.Error(t, err)
	var rtErr *RuntimeError
	assert.ErrorAs(t, err, &rtErr)
}

func TestEqualDelegatesToDunder(t *testing.T) {
	ctx := NewContext(&bytes.Buffer{})
	class := NewClass("Point", []Method{
		{Name: "__eq__", Params: []string{"self", "other"}, Body: constBodyFunc(Bool(true))},
	}, nil)
	a := NewInstance(class)
	b := NewInstance(class)

	h, err := Equal(Own(a), Own(b), ctx)
	require.NoError(t, err)
	assert.True(t, IsTrue(h))
}

func TestLessNumbersAndStrings(t *testing.T) {
	ctx := NewContext(&bytes.Buffer{})
	h, err := Less(Own(Number(1)), Own(Number(2)), ctx)
	require.NoError(t, err)
	assert.True(t, IsTrue(h))

	h, err = Less(Own(String("a")), Own(String("b")), ctx)
	require.NoError(t, err)
	assert.True(t, IsTrue(h))
}

func TestDerivedComparisons(t *testing.T) {
	ctx := NewContext(&bytes.Buffer{})

	h, err := Greater(Own(Number(2)), Own(Number(1)), ctx)
	require.NoError(t, err)
	assert.True(t, IsTrue(h))

	h, err = LessOrEqual(Own(Number(2)), Own(Number(2)), ctx)
	require.NoError(t, err)
	assert.True(t, IsTrue(h))

	h, err = GreaterOrEqual(Own(Number(1)), Own(Number(2)), ctx)
	require.NoError(t, err)
	assert.False(t, IsTrue(h))
}

func TestGreaterDispatchesToReceiversDunders(t *testing.T) {
	ctx := NewContext(&bytes.Buffer{})
	// a.__lt__ always says false and a.__eq__ always says false, so
	// a > b must come out true — Greater(a,b) = !Less(a,b) && !Equal(a,b).
	// A flip-based Greater(a,b) = Less(b,a) would instead ask b for
	// __lt__ and never consult a.__eq__ at all.
	class := NewClass("Always", []Method{
		{Name: "__lt__", Params: []string{"self", "other"}, Body: constBodyFunc(Bool(false))},
		{Name: "__eq__", Params: []string{"self", "other"}, Body: constBodyFunc(Bool(false))},
	}, nil)
	a := NewInstance(class)
	b := NewInstance(class)

	h, err := Greater(Own(a), Own(b), ctx)
	require.NoError(t, err)
	assert.True(t, IsTrue(h))
}

func TestAddNumbersStringsAndDunder(t *testing.T) {
	ctx := NewContext(&bytes.Buffer{})

	h, err := Add(Own(Number(1)), Own(Number(2)), ctx)
	require.NoError(t, err)
	assert.Equal(t, Number(3), h.Get())

	h, err = Add(Own(String("foo")), Own(String("bar")), ctx)
	require.NoError(t, err)
	assert.Equal(t, String("foobar"), h.Get())

	class := NewClass("Vec", []Method{
		{Name: "__add__", Params: []string{"self", "other"}, Body: constBodyFunc(Number(42))},
	}, nil)
	inst := NewInstance(class)
	h, err = Add(Own(inst), Own(Number(1)), ctx)
	require.NoError(t, err)
	assert.Equal(t, Number(42), h.Get())
}

func TestArithmeticTypeErrors(t *testing.T) {
	ctx := NewContext(&bytes.Buffer{})
	_, err := Sub(Own(String("a")), Own(Number(1)), ctx)
	require.Error(t, err)

	_, err = Mul(Own(Number(1)), Own(String("a")), ctx)
	require.Error(t, err)
}

func TestDivisionByZero(t *testing.T) {
	ctx := NewContext(&bytes.Buffer{})
	_, err := Div(Own(Number(1)), Own(Number(0)), ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "division by zero")
}

// constBody is a MethodBody that ignores the closure and always
// returns the same constant, used to stand in for a method body
// without pulling in the ast package (which would create an import
// cycle with runtime's own tests).
type constBody struct{ value Value }

func (b constBody) Execute(*Closure, *Context) (ObjectHolder, error) {
	return Own(b.value), nil
}

func constBodyFunc(v Value) MethodBody { return constBody{value: v} }
