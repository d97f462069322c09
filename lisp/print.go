package lisp

import (
	"io"
	"strings"

	"github.com/luthersystems/elps-reader/internal/lfmt"
)

// Fprint writes the textual form of v to w and returns the number of bytes
// written.  Fprint is the inverse of the reader for atoms and flat
// collections, although spacing in the original text is not preserved.
func Fprint(w io.Writer, v LVal) (int, error) {
	lw := lfmt.NewWriter(w)
	writeLVal(lw, v)
	return lw.Result()
}

// String returns the textual form of v.
func (v LVal) String() string {
	var buf strings.Builder
	Fprint(&buf, v)
	return buf.String()
}

func writeLVal(w *lfmt.Writer, v LVal) {
	switch v.Type {
	case LAtom:
		w.WriteString(v.Atom.String())
	case LList:
		writeCells(w, v.Cells, "(", ")")
	case LVector:
		writeCells(w, v.Cells, "[", "]")
	case LSet:
		writeCells(w, v.Cells, "#{", "}")
	case LMap:
		w.WriteString("{")
		for i, p := range v.Pairs {
			if i > 0 {
				w.WriteString(" ")
			}
			writeLVal(w, p.Key)
			w.WriteString(" ")
			writeLVal(w, p.Val)
		}
		w.WriteString("}")
	default:
		w.WriteString("<" + v.Type.String() + ">")
	}
}

func writeCells(w *lfmt.Writer, cells []LVal, left string, right string) {
	w.WriteString(left)
	for i, c := range cells {
		if i > 0 {
			w.WriteString(" ")
		}
		writeLVal(w, c)
	}
	w.WriteString(right)
}
