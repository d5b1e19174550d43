package lexer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mavmi/mython-interpreter/token"
)

func tokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	l, err := New(strings.NewReader(src))
	require.NoError(t, err)
	var out []token.Token
	for {
		cur := l.Current()
		out = append(out, cur)
		if cur.Kind == token.Eof {
			break
		}
		l.Advance()
	}
	return out
}

func TestTokenizeSimpleAssignment(t *testing.T) {
	toks := tokenize(t, "x = 5\n")
	require.Len(t, toks, 5)
	assert.True(t, token.Equal(toks[0], token.NewId("x", 1)))
	assert.True(t, token.Equal(toks[1], token.NewChar('=', 1)))
	assert.True(t, token.Equal(toks[2], token.NewNumber(5, 1)))
	assert.Equal(t, token.Newline, toks[3].Kind)
	assert.Equal(t, token.Eof, toks[4].Kind)
}

func TestTokenizeIndentDedent(t *testing.T) {
	src := "if x:\n  print x\nprint x\n"
	toks := tokenize(t, src)

	var kinds []token.Kind
	for _, tk := range toks {
		kinds = append(kinds, tk.Kind)
	}
	assert.Contains(t, kinds, token.Indent)
	assert.Contains(t, kinds, token.Dedent)

	// Indent immediately follows the first line's Newline, Dedent
	// immediately precedes the final print's tokens.
	indentIdx := -1
	for i, k := range kinds {
		if k == token.Indent {
			indentIdx = i
			break
		}
	}
	require.NotEqual(t, -1, indentIdx)
	assert.Equal(t, token.Newline, kinds[indentIdx-1])

	dedentIdx := -1
	for i, k := range kinds {
		if k == token.Dedent {
			dedentIdx = i
			break
		}
	}
	require.NotEqual(t, -1, dedentIdx)
	assert.Equal(t, token.Print, kinds[dedentIdx+1])
}

func TestTokenizeMultiCharOperators(t *testing.T) {
	toks := tokenize(t, "x == y\n")
	assert.Equal(t, token.Eq, toks[1].Kind)
}

func TestTokenizeOperatorRunSplitsOnUnknown(t *testing.T) {
	// ".." is not a recognized multi-char operator, so it splits into
	// two Char('.') tokens rather than failing.
	toks := tokenize(t, "x..y\n")
	assert.Equal(t, token.Char, toks[1].Kind)
	assert.Equal(t, byte('.'), toks[1].Char)
	assert.Equal(t, token.Char, toks[2].Kind)
	assert.Equal(t, byte('.'), toks[2].Char)
}

func TestTokenizeKeyword(t *testing.T) {
	toks := tokenize(t, "class Foo:\n")
	assert.Equal(t, token.Class, toks[0].Kind)
}

func TestTokenizeStringLiteralWithEscapes(t *testing.T) {
	toks := tokenize(t, `x = "a\nb"` + "\n")
	require.Equal(t, token.String, toks[2].Kind)
	assert.Equal(t, "a\nb", toks[2].Text)
}

func TestTokenizeUnterminatedStringFails(t *testing.T) {
	_, err := New(strings.NewReader(`x = "unterminated` + "\n"))
	require.Error(t, err)
	var lexErr *LexerError
	assert.ErrorAs(t, err, &lexErr)
}

func TestTokenizeCommentStripped(t *testing.T) {
	toks := tokenize(t, "x = 1 # comment with \" quote\n")
	// comment consumed entirely, leaving just the assignment + newline + eof
	require.Len(t, toks, 5)
	assert.Equal(t, token.Number, toks[2].Kind)
}

func TestTokenizeCommentInsideStringNotStripped(t *testing.T) {
	toks := tokenize(t, `x = "a # b"` + "\n")
	require.Equal(t, token.String, toks[2].Kind)
	assert.Equal(t, "a # b", toks[2].Text)
}

func TestTokenizeUnrecognizedCharacterFails(t *testing.T) {
	_, err := New(strings.NewReader("x = @\n"))
	require.Error(t, err)
}

func TestTokenizeBlankLineDoesNotAffectIndent(t *testing.T) {
	toks := tokenize(t, "if x:\n\n  print x\n")
	var kinds []token.Kind
	for _, tk := range toks {
		kinds = append(kinds, tk.Kind)
	}
	assert.Contains(t, kinds, token.Indent)
}

func TestWithIndentUnitOverridesDefault(t *testing.T) {
	l, err := New(strings.NewReader("if x:\n    print x\n"), WithIndentUnit(4))
	require.NoError(t, err)

	var kinds []token.Kind
	for {
		cur := l.Current()
		kinds = append(kinds, cur.Kind)
		if cur.Kind == token.Eof {
			break
		}
		l.Advance()
	}
	assert.Contains(t, kinds, token.Indent)
}

func TestTokenizeMatchesExpectedStreamExactly(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []token.Token
	}{
		{
			name: "assignment",
			src:  "x = 5\n",
			want: []token.Token{
				token.NewId("x", 1),
				token.NewChar('=', 1),
				token.NewNumber(5, 1),
				token.New(token.Newline, 1),
				token.New(token.Eof, 1),
			},
		},
		{
			name: "comparison keyword and operator",
			src:  "if x <= 1:\n",
			want: []token.Token{
				token.New(token.If, 1),
				token.NewId("x", 1),
				token.New(token.LessOrEq, 1),
				token.NewNumber(1, 1),
				token.NewChar(':', 1),
				token.New(token.Newline, 1),
				token.New(token.Eof, 1),
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tokenize(t, tc.src)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("token stream mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAdvanceIsIdempotentAtEof(t *testing.T) {
	l, err := New(strings.NewReader("x\n"))
	require.NoError(t, err)
	for l.Current().Kind != token.Eof {
		l.Advance()
	}
	first := l.Advance()
	second := l.Advance()
	assert.Equal(t, token.Eof, first.Kind)
	assert.Equal(t, token.Eof, second.Kind)
}
