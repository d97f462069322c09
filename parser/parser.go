/*
Package parser reads expressions written in a lisp data notation.

	expr    := <list> | <vector> | <map> | <set> | <atom>
	list    := '(' <expr>* ')'
	vector  := '[' <expr>* ']'
	map     := '{' (<expr> <expr>)* '}'
	set     := '#{' <expr>* '}'
	atom    := <string> | <int> | <float> | <symbol>
	string  := '"' (/[^"\\]/ | '\' /[ntr"\\]/)* '"'
	int     := /[+-]?[0-9]+/ <delim>
	float   := /[+-]?[0-9]*[.][0-9]+/ <delim>
	symbol  := /[^[:space:]();\[\]{}]+/
	delim   := /[[:space:]();\[\]{}]/ | EOF

Numbers are recognized only when followed by a delimiter, so text like
123abc reads as a symbol.  Only one expression is read at a time; any text
following it is left for the next read.
*/
package parser

import (
	"github.com/luthersystems/elps-reader/lisp"
	"github.com/luthersystems/elps-reader/parser/rdparser"
)

// NewReader returns a Reader over text.
func NewReader(text string, config ...rdparser.Config) *rdparser.Reader {
	return rdparser.New(text, config...)
}

// ReadString reads a single expression from the front of text.  The text
// following the expression is returned along with it.
func ReadString(text string, config ...rdparser.Config) (lisp.LVal, string, error) {
	r := rdparser.New(text, config...)
	v, err := r.Read()
	if err != nil {
		return lisp.LVal{}, "", err
	}
	return v, r.Rest(), nil
}
