package lisp

// Reader abstracts a parser implementation so that it may be implemented in a
// separate package as an optional/swappable component.
type Reader interface {
	// Read consumes one expression from the input and returns it.
	Read() (LVal, error)
	// Done returns true if the input holds nothing more to read.
	Done() bool
}
