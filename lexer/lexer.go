// Package lexer converts mython source text into a token stream,
// including the synthetic INDENT/DEDENT tokens an indentation-structured
// grammar needs. It implements the token.Kind contract but never builds
// an AST — that is left to an external parser (see the TokenSource
// interface in this package's doc comment on Lexer).
package lexer

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mavmi/mython-interpreter/token"
)

// defaultIndentUnit is the number of leading spaces that make up one
// indentation level absent a WithIndentUnit override. Tabs are not
// recognized as indentation.
const defaultIndentUnit = 2

const operatorChars = ".,()><:=+-*/!?"

// Option configures a Lexer at construction time.
type Option func(*config)

type config struct {
	indentUnit int
}

// WithIndentUnit overrides the 2-space default indentation unit.
func WithIndentUnit(spaces int) Option {
	return func(c *config) {
		c.indentUnit = spaces
	}
}

// LexerError reports a malformed-input failure. The lexer never
// recovers from one: callers must discard the stream.
type LexerError struct {
	Message string
	Line    int
}

func (e *LexerError) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Line, e.Message)
}

func lexErrorf(line int, format string, args ...any) *LexerError {
	return &LexerError{Message: fmt.Sprintf(format, args...), Line: line}
}

// Lexer exposes a logical token sequence terminated by an Eof token.
// After Eof is reached, Advance returns Eof idempotently. This is the
// TokenSource contract an external parser consumes:
//
//	type TokenSource interface {
//	    Current() token.Token
//	    Advance() token.Token
//	    Expect(kind token.Kind) (token.Token, error)
//	    ExpectValue(kind token.Kind, payload any) (token.Token, error)
//	    AdvanceExpect(kind token.Kind) (token.Token, error)
//	    AdvanceExpectValue(kind token.Kind, payload any) (token.Token, error)
//	}
type Lexer struct {
	tokens []token.Token
	pos    int
}

// New reads r to completion and tokenizes it eagerly. Lines are split on
// LF. A malformed line aborts tokenization entirely and returns a
// *LexerError; the returned Lexer is nil in that case.
func New(r io.Reader, opts ...Option) (*Lexer, error) {
	cfg := config{indentUnit: defaultIndentUnit}
	for _, opt := range opts {
		opt(&cfg)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var tokens []token.Token
	prevIndent := 0
	line := 0

	for scanner.Scan() {
		line++
		lineTokens, indent, blank, err := tokenizeLine(scanner.Text(), line, prevIndent, cfg.indentUnit)
		if err != nil {
			return nil, err
		}
		if blank {
			continue
		}
		tokens = append(tokens, lineTokens...)
		prevIndent = indent
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for i := 0; i < prevIndent; i++ {
		tokens = append(tokens, token.New(token.Dedent, line))
	}
	tokens = append(tokens, token.New(token.Eof, line))

	return &Lexer{tokens: tokens}, nil
}

// Current returns the token the cursor rests on.
func (l *Lexer) Current() token.Token {
	return l.tokens[l.pos]
}

// Advance moves the cursor forward one token and returns the new
// current token. Once Eof is reached, Advance is a no-op that keeps
// returning Eof.
func (l *Lexer) Advance() token.Token {
	if l.tokens[l.pos].Kind != token.Eof {
		l.pos++
	}
	return l.Current()
}

// Expect fails unless the current token has the given kind.
func (l *Lexer) Expect(kind token.Kind) (token.Token, error) {
	cur := l.Current()
	if cur.Kind != kind {
		return token.Token{}, lexErrorf(cur.Line, "expected %v, got %v", kind, cur.Kind)
	}
	return cur, nil
}

// ExpectValue fails unless the current token has the given kind and
// payload. payload must be an int for Number, a string for Id/String,
// or a byte for Char.
func (l *Lexer) ExpectValue(kind token.Kind, payload any) (token.Token, error) {
	cur, err := l.Expect(kind)
	if err != nil {
		return cur, err
	}

	ok := false
	switch kind {
	case token.Number:
		v, isInt := payload.(int)
		ok = isInt && v == cur.Number
	case token.Id, token.String:
		v, isStr := payload.(string)
		ok = isStr && v == cur.Text
	case token.Char:
		v, isByte := payload.(byte)
		ok = isByte && v == cur.Char
	default:
		ok = true
	}
	if !ok {
		return token.Token{}, lexErrorf(cur.Line, "expected %v with value %v, got %v", kind, payload, cur)
	}
	return cur, nil
}

// AdvanceExpect advances then expects, in one call.
func (l *Lexer) AdvanceExpect(kind token.Kind) (token.Token, error) {
	l.Advance()
	return l.Expect(kind)
}

// AdvanceExpectValue advances then expects a valued match, in one call.
func (l *Lexer) AdvanceExpectValue(kind token.Kind, payload any) (token.Token, error) {
	l.Advance()
	return l.ExpectValue(kind, payload)
}

// tokenizeLine handles one physical line: comment stripping, blank-line
// detection, indentation delta, and left-to-right sub-scanning of the
// remainder. It never sees the newline character itself (the scanner
// already split it off).
func tokenizeLine(raw string, line, prevIndent, indentUnit int) (toks []token.Token, indent int, blank bool, err error) {
	stripped := stripComment(raw)
	if isBlank(stripped) {
		return nil, prevIndent, true, nil
	}

	i := 0
	spaces := 0
	for i < len(stripped) && stripped[i] == ' ' {
		spaces++
		i++
	}
	indent = spaces / indentUnit

	if indent > prevIndent {
		for n := 0; n < indent-prevIndent; n++ {
			toks = append(toks, token.New(token.Indent, line))
		}
	} else if indent < prevIndent {
		for n := 0; n < prevIndent-indent; n++ {
			toks = append(toks, token.New(token.Dedent, line))
		}
	}

	body, err := tokenizeBody(stripped, i, line)
	if err != nil {
		return nil, indent, false, err
	}
	toks = append(toks, body...)
	toks = append(toks, token.New(token.Newline, line))

	return toks, indent, false, nil
}

// stripComment truncates raw at the first '#' that lies outside both
// single- and double-quoted regions. Quotes toggle independently; a '
// inside "..." does not toggle, and vice versa.
func stripComment(raw string) string {
	inSingle, inDouble := false, false
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '\'':
			if !inDouble {
				inSingle = !inSingle
			}
		case '"':
			if !inSingle {
				inDouble = !inDouble
			}
		case '#':
			if !inSingle && !inDouble {
				return raw[:i]
			}
		}
	}
	return raw
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isOperatorChar(c byte) bool {
	return strings.IndexByte(operatorChars, c) != -1
}

// tokenizeBody scans line[start:] left to right, skipping single spaces
// between tokens, and returns every token found (not including the
// trailing Newline, which the caller appends).
func tokenizeBody(line string, start, lineNo int) ([]token.Token, error) {
	var toks []token.Token
	i := start
	n := len(line)

	for i < n {
		c := line[i]

		switch {
		case c == ' ':
			i++

		case c == '\\':
			toks = append(toks, token.NewChar('\\', lineNo))
			i++
			if i < n {
				follower := line[i]
				switch follower {
				case 'n', 't', 'r', '"', '\\':
					toks = append(toks, token.NewChar(follower, lineNo))
					i++
				}
			}

		case isOperatorChar(c):
			j := i
			for j < n && isOperatorChar(line[j]) {
				j++
			}
			run := line[i:j]
			if kind, ok := token.Operators[run]; ok {
				toks = append(toks, token.New(kind, lineNo))
			} else {
				for k := 0; k < len(run); k++ {
					toks = append(toks, token.NewChar(run[k], lineNo))
				}
			}
			i = j

		case isIdentStart(c):
			j := i
			for j < n && isIdentChar(line[j]) {
				j++
			}
			word := line[i:j]
			if kind, ok := token.Keywords[word]; ok {
				toks = append(toks, token.New(kind, lineNo))
			} else {
				toks = append(toks, token.NewId(word, lineNo))
			}
			i = j

		case c == '\'' || c == '"':
			tok, next, err := scanString(line, i, lineNo)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i = next

		case isDigit(c):
			j := i
			for j < n && isDigit(line[j]) {
				j++
			}
			value, convErr := strconv.Atoi(line[i:j])
			if convErr != nil {
				return nil, lexErrorf(lineNo, "invalid number literal %q", line[i:j])
			}
			toks = append(toks, token.NewNumber(value, lineNo))
			i = j

		default:
			return nil, lexErrorf(lineNo, "unrecognized character %q", c)
		}
	}

	return toks, nil
}

// scanString scans a quoted literal starting at line[start] (the opening
// quote) and returns the decoded String token plus the index just past
// the closing quote.
func scanString(line string, start, lineNo int) (token.Token, int, error) {
	quote := line[start]
	n := len(line)

	closeIdx := -1
	pos := start + 1
	for pos < n {
		idx := strings.IndexByte(line[pos:], quote)
		if idx == -1 {
			break
		}
		abs := pos + idx
		if line[abs-1] != '\\' {
			closeIdx = abs
			break
		}
		pos = abs + 1
	}
	if closeIdx == -1 {
		return token.Token{}, 0, lexErrorf(lineNo, "unterminated string literal")
	}

	inner := line[start+1 : closeIdx]
	decoded, err := decodeEscapes(inner, lineNo)
	if err != nil {
		return token.Token{}, 0, err
	}

	return token.NewString(decoded, lineNo), closeIdx + 1, nil
}

// decodeEscapes applies the string-literal escape set: \n \t \r \" \' \\.
func decodeEscapes(s string, lineNo int) (string, error) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\':
			if i == len(s)-1 {
				return "", lexErrorf(lineNo, "Unrecognized escape sequence")
			}
			i++
			switch s[i] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '"':
				b.WriteByte('"')
			case '\'':
				b.WriteByte('\'')
			case '\\':
				b.WriteByte('\\')
			default:
				return "", lexErrorf(lineNo, "Unrecognized escape sequence \\%c", s[i])
			}
		case c == '\n' || c == '\r':
			return "", lexErrorf(lineNo, "Unexpected end of line")
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}
