package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualIgnoresLine(t *testing.T) {
	a := NewNumber(5, 1)
	b := NewNumber(5, 99)
	assert.True(t, Equal(a, b))
}

func TestEqualComparesPayload(t *testing.T) {
	assert.False(t, Equal(NewNumber(5, 1), NewNumber(6, 1)))
	assert.False(t, Equal(NewId("x", 1), NewId("y", 1)))
	assert.False(t, Equal(NewString("a", 1), NewString("b", 1)))
	assert.False(t, Equal(NewChar('+', 1), NewChar('-', 1)))
}

func TestEqualDifferentKinds(t *testing.T) {
	assert.False(t, Equal(New(Eof, 1), New(Newline, 1)))
}

func TestStringRendering(t *testing.T) {
	cases := map[string]Token{
		"Number{5}":    NewNumber(5, 1),
		`Id{foo}`:      NewId("foo", 1),
		`String{"hi"}`: NewString("hi", 1),
		"Char{+}":      NewChar('+', 1),
		"Eof":          New(Eof, 1),
	}
	for want, tok := range cases {
		assert.Equal(t, want, tok.String())
	}
}

func TestKeywordsAndOperatorsTables(t *testing.T) {
	assert.Equal(t, Class, Keywords["class"])
	assert.Equal(t, None, Keywords["None"])
	assert.Equal(t, Eq, Operators["=="])
	assert.Equal(t, GreaterOrEq, Operators[">="])
}
