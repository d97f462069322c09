package lexer

import (
	"errors"
	"testing"

	"github.com/luthersystems/elps-reader/lisp"
	"github.com/luthersystems/elps-reader/parser/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lex(text string) *Lexer {
	return New(token.NewScanner("test", text))
}

func TestReadAtom(t *testing.T) {
	for _, test := range []struct {
		text string
		typ  token.Type
		want string
		rest string
	}{
		{"123", token.INT, "123", ""},
		{"  -7 8", token.INT, "-7", " 8"},
		{"+42)", token.INT, "+42", ")"},
		{"12;", token.INT, "12", ";"},
		{"12]", token.INT, "12", "]"},
		{"12}", token.INT, "12", "}"},
		{"12{", token.INT, "12", "{"},
		{"12\n", token.INT, "12", "\n"},
		{"123.456", token.FLOAT, "123.456", ""},
		{".5 x", token.FLOAT, ".5", " x"},
		{"-.5)", token.FLOAT, "-.5", ")"},
		{"+0.25]", token.FLOAT, "+0.25", "]"},
		{"abc", token.SYMBOL, "abc", ""},
		{"123abc", token.SYMBOL, "123abc", ""},
		{"1.2.3", token.SYMBOL, "1.2.3", ""},
		{"1.", token.SYMBOL, "1.", ""},
		{"1e10", token.SYMBOL, "1e10", ""},
		{"+", token.SYMBOL, "+", ""},
		{"- 1", token.SYMBOL, "-", " 1"},
		{".", token.SYMBOL, ".", ""},
		{"a-b?)", token.SYMBOL, "a-b?", ")"},
		{"x]", token.SYMBOL, "x", "]"},
		{":key", token.SYMBOL, ":key", ""},
		{"λ→x y", token.SYMBOL, "λ→x", " y"},
		{`a"b`, token.SYMBOL, `a"b`, ""},
		{`"hello" world`, token.STRING, "hello", " world"},
		{`""`, token.STRING, "", ""},
		{`"a(b)c"`, token.STRING, "a(b)c", ""},
		{`"\"ab\\nc\""`, token.STRING, `"ab\nc"`, ""},
		{`"ab\nc"`, token.STRING, "ab\nc", ""},
		{`"\t\r\\"`, token.STRING, "\t\r\\", ""},
		{"\"line\nbreak\"", token.STRING, "line\nbreak", ""},
	} {
		l := lex(test.text)
		tok, err := l.ReadAtom()
		require.NoError(t, err, "input: %q", test.text)
		assert.Equal(t, test.typ, tok.Type, "input: %q", test.text)
		assert.Equal(t, test.want, tok.Text, "input: %q", test.text)
		assert.Equal(t, test.rest, l.Scanner().Rest(), "input: %q", test.text)
	}
}

func TestReadAtomError(t *testing.T) {
	for _, test := range []struct {
		text string
		cond lisp.Condition
	}{
		{"", lisp.UnexpectedEOF},
		{"   ", lisp.UnexpectedEOF},
		{`"abc`, lisp.UnterminatedString},
		{`"`, lisp.UnterminatedString},
		{`"abc\"`, lisp.UnterminatedString},
		{`"abc\`, lisp.UnexpectedEOF},
		{`"a\qb"`, lisp.InvalidEscapeSequence},
		{`"\x41"`, lisp.InvalidEscapeSequence},
		{";", lisp.InvalidInput},
		{")", lisp.InvalidInput},
	} {
		_, err := lex(test.text).ReadAtom()
		require.Error(t, err, "input: %q", test.text)
		assert.True(t, errors.Is(err, test.cond), "input: %q: %v", test.text, err)
	}
}

func TestErrorLocation(t *testing.T) {
	_, err := lex("  \"ab\\q\"").ReadAtom()
	require.Error(t, err)
	assert.EqualError(t, err, `test:1:7: invalid-escape-sequence: invalid escape sequence \q`)

	_, err = lex("\n \"ab").ReadAtom()
	assert.EqualError(t, err, "test:2:2: unterminated-string: string literal is missing a closing quote")
}

func TestIsDelimiter(t *testing.T) {
	for _, c := range " \t\n\r();[]{}" {
		assert.True(t, IsDelimiter(c), "input: %q", c)
	}
	for _, c := range `ab1.+-#"':` {
		assert.False(t, IsDelimiter(c), "input: %q", c)
	}
}
