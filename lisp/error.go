package lisp

import (
	"errors"
	"fmt"

	"github.com/luthersystems/elps-reader/parser/token"
)

// Condition identifies the kind of failure encountered while reading.  A
// Condition is itself an error so it can be used as the target of errors.Is.
type Condition uint

// Possible Condition values
const (
	CondNone Condition = iota
	// UnexpectedEOF means the input ended while a token, string, escape or
	// collection was incomplete.
	UnexpectedEOF
	// UnexpectedCloseDelimiter means ')', ']' or '}' appeared where an
	// expression was expected.
	UnexpectedCloseDelimiter
	// UnknownReaderMacro means '#' was followed by something other than '{'.
	UnknownReaderMacro
	// InvalidEscapeSequence means a backslash in a string literal was
	// followed by an unsupported character.
	InvalidEscapeSequence
	// UnterminatedString means a string literal had no closing quote.
	UnterminatedString
	// InvalidInput means the text could not be classified as any atom.
	InvalidInput
)

var conditionStrings = []string{
	CondNone:                 "none",
	UnexpectedEOF:            "unexpected-eof",
	UnexpectedCloseDelimiter: "unexpected-close-delimiter",
	UnknownReaderMacro:       "unknown-reader-macro",
	InvalidEscapeSequence:    "invalid-escape-sequence",
	UnterminatedString:       "unterminated-string",
	InvalidInput:             "invalid-input",
}

func (c Condition) String() string {
	if int(c) >= len(conditionStrings) {
		return conditionStrings[CondNone]
	}
	return conditionStrings[c]
}

// Error implements the error interface.
func (c Condition) Error() string {
	return c.String()
}

// ErrorVal is an error produced by the reader.  The condition is reported by
// Unwrap so errors.Is(err, UnterminatedString) works on wrapped errors.
type ErrorVal struct {
	Condition Condition
	Source    *token.Location
	Msg       string
}

// ErrorConditionf returns an ErrorVal with a formatted message.
func ErrorConditionf(c Condition, source *token.Location, format string, v ...interface{}) *ErrorVal {
	return &ErrorVal{
		Condition: c,
		Source:    source,
		Msg:       fmt.Sprintf(format, v...),
	}
}

// Error implements the error interface.
func (e *ErrorVal) Error() string {
	if e.Source == nil {
		return fmt.Sprintf("%v: %s", e.Condition, e.Msg)
	}
	return fmt.Sprintf("%v: %v: %s", e.Source, e.Condition, e.Msg)
}

// Unwrap returns the error's Condition.
func (e *ErrorVal) Unwrap() error {
	return e.Condition
}

// ConditionOf returns the Condition of err, if err is or wraps an ErrorVal or
// Condition.  CondNone is returned for any other error.
func ConditionOf(err error) Condition {
	var c Condition
	if errors.As(err, &c) {
		return c
	}
	return CondNone
}
