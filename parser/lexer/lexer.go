package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/luthersystems/elps-reader/lisp"
	"github.com/luthersystems/elps-reader/parser/token"
)

// delimiters terminate numeric literals and symbols, as does whitespace.
const delimiters = "();[]{}"

// Lexer scans atoms from the front of a Scanner.  Lexing is done on demand,
// one atom at a time, so anything the Lexer has not been asked for remains in
// the Scanner.
type Lexer struct {
	scanner *token.Scanner
}

// New returns a Lexer that consumes text from s.
func New(s *token.Scanner) *Lexer {
	return &Lexer{
		scanner: s,
	}
}

// Scanner returns the underlying Scanner.
func (lex *Lexer) Scanner() *token.Scanner {
	return lex.scanner
}

// SkipWhitespace consumes any whitespace at the front of the input.
func (lex *Lexer) SkipWhitespace() {
	for {
		c, ok := lex.scanner.Peek()
		if !ok || !unicode.IsSpace(c) {
			return
		}
		lex.scanner.ScanRune()
	}
}

// PeekRune returns the next rune in the input without consuming it.  PeekRune
// returns false at the end of input.
func (lex *Lexer) PeekRune() (rune, bool) {
	return lex.scanner.Peek()
}

// ReadAtom skips whitespace and scans a string, integer, float or symbol
// token.  The Text of a STRING token is its decoded content.
func (lex *Lexer) ReadAtom() (*token.Token, error) {
	lex.SkipWhitespace()
	c, ok := lex.PeekRune()
	if !ok {
		return nil, lex.errorf(lisp.UnexpectedEOF, "unexpected end of input")
	}
	if c == '"' {
		return lex.readString()
	}
	rest := lex.scanner.Rest()
	if n := matchInt(rest); n > 0 {
		return lex.emit(token.INT, n), nil
	}
	if n := matchFloat(rest); n > 0 {
		return lex.emit(token.FLOAT, n), nil
	}
	if n := matchSymbol(rest); n > 0 {
		return lex.emit(token.SYMBOL, n), nil
	}
	return nil, lex.errorf(lisp.InvalidInput, "unexpected text starting with %q", c)
}

func (lex *Lexer) emit(typ token.Type, n int) *token.Token {
	tok := &token.Token{
		Type:   typ,
		Text:   lex.scanner.Rest()[:n],
		Source: lex.scanner.Loc(),
	}
	lex.scanner.Advance(n)
	return tok
}

func (lex *Lexer) readString() (*token.Token, error) {
	loc := lex.scanner.Loc()
	lex.scanner.ScanRune() // opening quote
	var buf strings.Builder
	for {
		c, ok := lex.scanner.ScanRune()
		if !ok {
			return nil, lisp.ErrorConditionf(lisp.UnterminatedString, loc, "string literal is missing a closing quote")
		}
		switch c {
		case '"':
			return &token.Token{
				Type:   token.STRING,
				Text:   buf.String(),
				Source: loc,
			}, nil
		case '\\':
			escLoc := lex.scanner.Loc()
			e, ok := lex.scanner.ScanRune()
			if !ok {
				return nil, lisp.ErrorConditionf(lisp.UnexpectedEOF, escLoc, "unexpected end of input in escape sequence")
			}
			x, ok := unescape(e)
			if !ok {
				return nil, lisp.ErrorConditionf(lisp.InvalidEscapeSequence, escLoc, "invalid escape sequence \\%c", e)
			}
			buf.WriteRune(x)
		default:
			buf.WriteRune(c)
		}
	}
}

func unescape(c rune) (rune, bool) {
	switch c {
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case '"':
		return '"', true
	case '\\':
		return '\\', true
	}
	return 0, false
}

func (lex *Lexer) errorf(c lisp.Condition, format string, v ...interface{}) error {
	return lisp.ErrorConditionf(c, lex.scanner.Loc(), format, v...)
}

// matchInt returns the length of a [+-]?[0-9]+ prefix of s that is
// immediately followed by a delimiter or the end of s.  Zero is returned if
// there is no such prefix.
func matchInt(s string) int {
	i := matchSign(s)
	n := matchDigits(s[i:])
	if n == 0 {
		return 0
	}
	i += n
	if !endsNumber(s[i:]) {
		return 0
	}
	return i
}

// matchFloat returns the length of a [+-]?[0-9]*\.[0-9]+ prefix of s that is
// immediately followed by a delimiter or the end of s.  Zero is returned if
// there is no such prefix.
func matchFloat(s string) int {
	i := matchSign(s)
	i += matchDigits(s[i:])
	if i >= len(s) || s[i] != '.' {
		return 0
	}
	i++
	n := matchDigits(s[i:])
	if n == 0 {
		return 0
	}
	i += n
	if !endsNumber(s[i:]) {
		return 0
	}
	return i
}

// matchSymbol returns the length of the longest prefix of s which contains no
// delimiters.
func matchSymbol(s string) int {
	for i, c := range s {
		if IsDelimiter(c) {
			return i
		}
	}
	return len(s)
}

func matchSign(s string) int {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		return 1
	}
	return 0
}

func matchDigits(s string) int {
	i := 0
	for i < len(s) && isDigit(rune(s[i])) {
		i++
	}
	return i
}

func endsNumber(s string) bool {
	if s == "" {
		return true
	}
	c, _ := utf8.DecodeRuneInString(s)
	return IsDelimiter(c)
}

// IsDelimiter returns true if c terminates a symbol.
func IsDelimiter(c rune) bool {
	return unicode.IsSpace(c) || strings.ContainsRune(delimiters, c)
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}
