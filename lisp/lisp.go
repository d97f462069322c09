package lisp

import (
	"fmt"
	"strconv"
)

// LType is the type of an LVal
type LType uint

// Possible LType values
const (
	LInvalid LType = iota
	LAtom
	LList
	LVector
	LMap
	LSet
)

var ltypeStrings = []string{
	LInvalid: "INVALID",
	LAtom:    "atom",
	LList:    "list",
	LVector:  "vector",
	LMap:     "map",
	LSet:     "set",
}

func (t LType) String() string {
	if int(t) >= len(ltypeStrings) {
		return ltypeStrings[LInvalid]
	}
	return ltypeStrings[t]
}

// AtomType is the type of an Atom
type AtomType uint

// Possible AtomType values.  AKeyword and AChar are representable but the
// reader does not produce them yet.
const (
	ASymbol AtomType = iota
	AKeyword
	AInt
	AFloat
	AString
	AChar
)

var atomTypeStrings = []string{
	ASymbol:  "symbol",
	AKeyword: "keyword",
	AInt:     "int",
	AFloat:   "float",
	AString:  "string",
	AChar:    "char",
}

func (t AtomType) String() string {
	if int(t) >= len(atomTypeStrings) {
		return "INVALID"
	}
	return atomTypeStrings[t]
}

// Atom is a leaf value.  Only the field corresponding to Type is meaningful:
// Str holds symbol, keyword and string text.
type Atom struct {
	Type  AtomType
	Str   string
	Int   int64
	Float float64
	Char  rune
}

// Pair is a single key/value entry of a map.
type Pair struct {
	Key LVal
	Val LVal
}

// LVal is a parsed expression.  LAtom values store their contents in Atom.
// LList, LVector and LSet store their children in Cells.  LMap stores its
// entries in Pairs, in the order they were read.
//
// An LVal is not modified after it has been constructed and it owns its
// children exclusively.
type LVal struct {
	Type  LType
	Atom  Atom
	Cells []LVal
	Pairs []Pair
}

// Symbol returns an LVal representing the symbol s.
func Symbol(s string) LVal {
	return atom(Atom{Type: ASymbol, Str: s})
}

// Keyword returns an LVal representing the keyword :s.  The name s does not
// include the leading colon.
func Keyword(s string) LVal {
	return atom(Atom{Type: AKeyword, Str: s})
}

// Int returns an LVal representing the integer x.
func Int(x int64) LVal {
	return atom(Atom{Type: AInt, Int: x})
}

// Float returns an LVal representing the number x.
func Float(x float64) LVal {
	return atom(Atom{Type: AFloat, Float: x})
}

// String returns an LVal representing the (already decoded) string s.
func String(s string) LVal {
	return atom(Atom{Type: AString, Str: s})
}

// Char returns an LVal representing the character c.
func Char(c rune) LVal {
	return atom(Atom{Type: AChar, Char: c})
}

func atom(a Atom) LVal {
	return LVal{
		Type: LAtom,
		Atom: a,
	}
}

// List returns an LVal representing a parenthesized list.
func List(cells ...LVal) LVal {
	return LVal{Type: LList, Cells: cells}
}

// Vector returns an LVal representing a bracketed vector.
func Vector(cells ...LVal) LVal {
	return LVal{Type: LVector, Cells: cells}
}

// Set returns an LVal representing a #{...} set.  Duplicate elements are
// retained.
func Set(cells ...LVal) LVal {
	return LVal{Type: LSet, Cells: cells}
}

// Map returns an LVal representing a braced map.  Duplicate keys are
// retained.
func Map(pairs ...Pair) LVal {
	return LVal{Type: LMap, Pairs: pairs}
}

// KV returns a Pair, for use with Map.
func KV(key, val LVal) Pair {
	return Pair{Key: key, Val: val}
}

// IsAtom returns true if v is an atom of type typ.
func (v LVal) IsAtom(typ AtomType) bool {
	return v.Type == LAtom && v.Atom.Type == typ
}

// Len returns the number of children of a collection.  For maps the number
// of entries is returned.  Atoms have length 0.
func (v LVal) Len() int {
	if v.Type == LMap {
		return len(v.Pairs)
	}
	return len(v.Cells)
}

// Equal returns true if a and b are structurally identical.  A nil slice of
// children is equal to an empty one.
func Equal(a, b LVal) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case LAtom:
		return a.Atom == b.Atom
	case LList, LVector, LSet:
		if len(a.Cells) != len(b.Cells) {
			return false
		}
		for i := range a.Cells {
			if !Equal(a.Cells[i], b.Cells[i]) {
				return false
			}
		}
		return true
	case LMap:
		if len(a.Pairs) != len(b.Pairs) {
			return false
		}
		for i := range a.Pairs {
			if !Equal(a.Pairs[i].Key, b.Pairs[i].Key) {
				return false
			}
			if !Equal(a.Pairs[i].Val, b.Pairs[i].Val) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Eval evaluates v.  There are no evaluation rules yet so v is returned
// unchanged.
func Eval(v LVal) (LVal, error) {
	if v.Type == LInvalid {
		return LVal{}, fmt.Errorf("cannot evaluate %v value", v.Type)
	}
	return v, nil
}

// String returns the textual form of a.
func (a Atom) String() string {
	switch a.Type {
	case ASymbol:
		return a.Str
	case AKeyword:
		return ":" + a.Str
	case AInt:
		return strconv.FormatInt(a.Int, 10)
	case AFloat:
		return formatFloat(a.Float)
	case AString:
		// Interior characters are not escaped.
		return `"` + a.Str + `"`
	case AChar:
		return "'" + string(a.Char) + "'"
	default:
		return fmt.Sprintf("%#v", a)
	}
}

// formatFloat renders x in its shortest decimal form, always including a
// decimal point so the text reads back as a float.
func formatFloat(x float64) string {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.', 'N', 'I':
			// NaN and Inf have no readable form; leave them alone.
			return s
		}
	}
	return s + ".0"
}
