package token

import "fmt"

// Token is a lexeme scanned from the front of the reader's input.
type Token struct {
	Type   Type
	Text   string
	Source *Location
}

// Type classifies a Token.
type Type uint

// Type constants used by the lexer and reader.
const (
	INVALID Type = iota
	EOF

	// Atomic expressions & literals
	SYMBOL
	INT
	FLOAT
	STRING

	// Reader macros
	HASH

	// Delimiters
	PAREN_L
	PAREN_R
	BRACKET_L
	BRACKET_R
	BRACE_L
	BRACE_R

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID:   "invalid",
		EOF:       "EOF",
		SYMBOL:    "symbol",
		INT:       "int",
		FLOAT:     "float",
		STRING:    "string",
		HASH:      "#",
		PAREN_L:   "(",
		PAREN_R:   ")",
		BRACKET_L: "[",
		BRACKET_R: "]",
		BRACE_L:   "{",
		BRACE_R:   "}",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

// Lookup returns the delimiter or reader macro Type for c.  Lookup returns
// INVALID if c does not begin a collection or close one.
func Lookup(c rune) Type {
	switch c {
	case '(':
		return PAREN_L
	case ')':
		return PAREN_R
	case '[':
		return BRACKET_L
	case ']':
		return BRACKET_R
	case '{':
		return BRACE_L
	case '}':
		return BRACE_R
	case '#':
		return HASH
	}
	return INVALID
}

// IsClose returns true if typ closes a collection.
func (typ Type) IsClose() bool {
	return typ == PAREN_R || typ == BRACKET_R || typ == BRACE_R
}

// Opener returns the text of the delimiter which is closed by typ.
func (typ Type) Opener() string {
	switch typ {
	case PAREN_R:
		return PAREN_L.String()
	case BRACKET_R:
		return BRACKET_L.String()
	case BRACE_R:
		return BRACE_L.String()
	}
	return typ.String()
}

// Location is a position in the reader's input.
type Location struct {
	File string
	Pos  int // byte offset
	Line int // line number (starting at 1 when tracked)
	Col  int // line column number (starting at 1 when tracked)
}

func (loc *Location) String() string {
	if loc == nil {
		return "<unknown>"
	}
	file := loc.File
	if file == "" {
		file = "<input>"
	}
	switch {
	case loc.Line == 0:
		return fmt.Sprintf("%s[%d]", file, loc.Pos)
	case loc.Col == 0:
		return fmt.Sprintf("%s:%d", file, loc.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", file, loc.Line, loc.Col)
	}
}
