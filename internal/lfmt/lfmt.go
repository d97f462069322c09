package lfmt

import (
	"io"
	"unicode/utf8"
)

// Writer is an io.Writer that tracks the total number of bytes written and
// remembers the first error encountered.  Once an error has occurred all
// subsequent writes are dropped, so a printer can emit a whole expression and
// check the error once at the end.
type Writer struct {
	w   io.Writer
	sw  io.StringWriter
	n   int
	err error
}

// NewWriter wraps w.  If w implements io.StringWriter its WriteString method
// is used to avoid copying strings.
func NewWriter(w io.Writer) *Writer {
	sw, _ := w.(io.StringWriter)
	return &Writer{w: w, sw: sw}
}

var _ io.Writer = (*Writer)(nil)
var _ io.StringWriter = (*Writer)(nil)

// N returns the total number of bytes written.
func (w *Writer) N() int {
	return w.n
}

// Err returns the first error returned by the underlying writer.
func (w *Writer) Err() error {
	return w.err
}

// Result returns N and Err for convenient returning from print functions.
func (w *Writer) Result() (int, error) {
	return w.n, w.err
}

func (w *Writer) count(n int, err error) (int, error) {
	w.n += n
	if err != nil && w.err == nil {
		w.err = err
	}
	return n, err
}

// Write implements io.Writer
func (w *Writer) Write(b []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	return w.count(w.w.Write(b))
}

// WriteString implements io.StringWriter
func (w *Writer) WriteString(s string) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	if w.sw != nil {
		return w.count(w.sw.WriteString(s))
	}
	return w.count(w.w.Write([]byte(s)))
}

// WriteRune writes the utf-8 encoding of c.
func (w *Writer) WriteRune(c rune) (int, error) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], c)
	return w.Write(buf[:n])
}
