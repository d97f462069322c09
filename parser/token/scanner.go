package token

import (
	"unicode/utf8"
)

// Scanner is a cursor over an immutable in-memory text.  The cursor only
// moves forward.  Line and column numbers are tracked so that errors can
// reference the input.
type Scanner struct {
	file string
	text string
	pos  int // byte offset of the next unscanned rune
	line int
	col  int // column of the next unscanned rune
}

// NewScanner initializes and returns a new Scanner positioned at the start of
// text.
func NewScanner(file string, text string) *Scanner {
	return &Scanner{
		file: file,
		text: text,
		line: 1,
		col:  1,
	}
}

// File returns the name given to NewScanner.
func (s *Scanner) File() string {
	return s.file
}

// Pos returns the byte offset of the cursor.
func (s *Scanner) Pos() int {
	return s.pos
}

// Rest returns the unconsumed remainder of the input.  The returned string
// shares memory with the input text.
func (s *Scanner) Rest() string {
	return s.text[s.pos:]
}

// EOF returns true if all input has been consumed.
func (s *Scanner) EOF() bool {
	return s.pos >= len(s.text)
}

// Peek returns the next rune without consuming it.  Peek returns false when
// the input is exhausted.  Invalid utf-8 is reported as utf8.RuneError.
func (s *Scanner) Peek() (rune, bool) {
	if s.EOF() {
		return 0, false
	}
	c, _ := utf8.DecodeRuneInString(s.text[s.pos:])
	return c, true
}

// ScanRune consumes and returns the next rune.  ScanRune returns false when
// the input is exhausted.
func (s *Scanner) ScanRune() (rune, bool) {
	if s.EOF() {
		return 0, false
	}
	c, n := utf8.DecodeRuneInString(s.text[s.pos:])
	s.advance(c, n)
	return c, true
}

// Advance consumes n bytes of input.  Advance panics if n would move the
// cursor beyond the end of the input.
func (s *Scanner) Advance(n int) {
	end := s.pos + n
	if n < 0 || end > len(s.text) {
		panic("scanner advanced out of range")
	}
	for s.pos < end {
		c, size := utf8.DecodeRuneInString(s.text[s.pos:])
		s.advance(c, size)
	}
}

func (s *Scanner) advance(c rune, n int) {
	s.pos += n
	if c == '\n' {
		s.line++
		s.col = 1
		return
	}
	s.col++
}

// Loc returns a Location referencing the cursor.
func (s *Scanner) Loc() *Location {
	return &Location{
		File: s.file,
		Pos:  s.pos,
		Line: s.line,
		Col:  s.col,
	}
}
