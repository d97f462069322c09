package repl

import (
	"github.com/luthersystems/elps-reader/lisp"
	"github.com/luthersystems/elps-reader/parser"
	"github.com/luthersystems/elps-reader/parser/rdparser"
)

// Read reads the first expression in text.  Any text following it is
// ignored.
func Read(text string, config ...rdparser.Config) (lisp.LVal, error) {
	v, _, err := parser.ReadString(text, config...)
	return v, err
}

// Eval evaluates v.
func Eval(v lisp.LVal) (lisp.LVal, error) {
	return lisp.Eval(v)
}

// Print returns the textual form of v.
func Print(v lisp.LVal) (string, error) {
	return v.String(), nil
}

// Rep reads, evaluates and prints the first expression in text.
func Rep(text string, config ...rdparser.Config) (string, error) {
	v, err := Read(text, config...)
	if err != nil {
		return "", err
	}
	v, err = Eval(v)
	if err != nil {
		return "", err
	}
	return Print(v)
}
