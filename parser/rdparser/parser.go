package rdparser

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"

	"github.com/luthersystems/elps-reader/lisp"
	"github.com/luthersystems/elps-reader/parser/lexer"
	"github.com/luthersystems/elps-reader/parser/token"
)

// Reader reads expressions from the front of an in-memory text.  Each call to
// Read consumes exactly one expression and leaves the remaining text for the
// next call.  A Reader must not be used concurrently, and should be discarded
// after Read returns an error.
type Reader struct {
	lex      *lexer.Lexer
	log      *slog.Logger
	maxDepth int
	depth    int
}

// New initializes and returns a new Reader over text.
func New(text string, config ...Config) *Reader {
	opts := options{}
	for _, fn := range config {
		fn(&opts)
	}
	log := opts.logger
	if log == nil {
		log = slog.New(discardHandler{})
	}
	return &Reader{
		lex:      lexer.New(token.NewScanner(opts.file, text)),
		log:      log,
		maxDepth: opts.maxDepth,
	}
}

var _ lisp.Reader = (*Reader)(nil)

// NewFromReader reads all of src into memory and returns a Reader over it.
func NewFromReader(src io.Reader, config ...Config) (*Reader, error) {
	b, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return New(string(b), config...), nil
}

// Rest returns the text which has not been consumed.
func (r *Reader) Rest() string {
	return r.lex.Scanner().Rest()
}

// Done returns true if only whitespace remains to be read.
func (r *Reader) Done() bool {
	r.lex.SkipWhitespace()
	return r.lex.Scanner().EOF()
}

// Read consumes one complete expression from the input and returns it.
func (r *Reader) Read() (lisp.LVal, error) {
	r.lex.SkipWhitespace()
	c, ok := r.lex.PeekRune()
	if !ok {
		return lisp.LVal{}, r.errorf(lisp.UnexpectedEOF, "unexpected end of input")
	}
	switch typ := token.Lookup(c); typ {
	case token.PAREN_L:
		return r.readCollection(lisp.LList, token.PAREN_R)
	case token.BRACKET_L:
		return r.readCollection(lisp.LVector, token.BRACKET_R)
	case token.BRACE_L:
		return r.readCollection(lisp.LMap, token.BRACE_R)
	case token.HASH:
		return r.readDispatch()
	case token.PAREN_R, token.BRACKET_R, token.BRACE_R:
		return lisp.LVal{}, r.errorf(lisp.UnexpectedCloseDelimiter, "unexpected %s", typ)
	default:
		return r.readAtom()
	}
}

// readDispatch reads the expression following '#'.  Sets are the only
// supported reader macro.
func (r *Reader) readDispatch() (lisp.LVal, error) {
	s := r.lex.Scanner()
	s.ScanRune() // '#'
	c, ok := s.Peek()
	if !ok {
		return lisp.LVal{}, r.errorf(lisp.UnexpectedEOF, "unexpected end of input following #")
	}
	if token.Lookup(c) != token.BRACE_L {
		return lisp.LVal{}, r.errorf(lisp.UnknownReaderMacro, "unknown reader macro #%c", c)
	}
	return r.readCollection(lisp.LSet, token.BRACE_R)
}

func (r *Reader) readAtom() (lisp.LVal, error) {
	tok, err := r.lex.ReadAtom()
	if err != nil {
		return lisp.LVal{}, err
	}
	switch tok.Type {
	case token.INT:
		x, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return lisp.LVal{}, numberError(tok, err, "integer literal overflows int64: %s")
		}
		return lisp.Int(x), nil
	case token.FLOAT:
		x, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return lisp.LVal{}, numberError(tok, err, "float literal out of range: %s")
		}
		return lisp.Float(x), nil
	case token.STRING:
		return lisp.String(tok.Text), nil
	case token.SYMBOL:
		return lisp.Symbol(tok.Text), nil
	default:
		return lisp.LVal{}, lisp.ErrorConditionf(lisp.InvalidInput, tok.Source, "unexpected %s token", tok.Type)
	}
}

func numberError(tok *token.Token, err error, format string) error {
	if !errors.Is(err, strconv.ErrRange) {
		format = "invalid numeric literal: %s"
	}
	return lisp.ErrorConditionf(lisp.InvalidInput, tok.Source, format, tok.Text)
}

// readCollection reads the elements of a list, vector, map or set.  The
// opening delimiter has not been consumed.  Map elements are read as
// alternating keys and values.
func (r *Reader) readCollection(typ lisp.LType, closer token.Type) (lisp.LVal, error) {
	s := r.lex.Scanner()
	open := s.Loc()
	s.ScanRune()
	if r.maxDepth > 0 && r.depth >= r.maxDepth {
		return lisp.LVal{}, lisp.ErrorConditionf(lisp.InvalidInput, open, "%v nesting exceeds maximum depth %d", typ, r.maxDepth)
	}
	r.depth++
	defer func() { r.depth-- }()

	var cells []lisp.LVal
	var pairs []lisp.Pair
	for {
		r.lex.SkipWhitespace()
		c, ok := r.lex.PeekRune()
		if !ok {
			return lisp.LVal{}, lisp.ErrorConditionf(lisp.UnexpectedEOF, open, "unmatched %s", closer.Opener())
		}
		if token.Lookup(c) == closer {
			s.ScanRune()
			break
		}
		r.trace("read element", typ, len(cells)+len(pairs))
		x, err := r.Read()
		if err != nil {
			return lisp.LVal{}, err
		}
		if typ != lisp.LMap {
			cells = append(cells, x)
			continue
		}
		val, err := r.readMapValue(open, closer)
		if err != nil {
			return lisp.LVal{}, err
		}
		pairs = append(pairs, lisp.KV(x, val))
	}
	r.trace("read complete", typ, len(cells)+len(pairs))

	switch typ {
	case lisp.LList:
		return lisp.List(cells...), nil
	case lisp.LVector:
		return lisp.Vector(cells...), nil
	case lisp.LSet:
		return lisp.Set(cells...), nil
	default:
		return lisp.Map(pairs...), nil
	}
}

// readMapValue reads the value paired with a map key.  The input ending, or
// the map closing, before the value is present is an unexpected EOF.
func (r *Reader) readMapValue(open *token.Location, closer token.Type) (lisp.LVal, error) {
	r.lex.SkipWhitespace()
	c, ok := r.lex.PeekRune()
	if !ok || token.Lookup(c) == closer {
		return lisp.LVal{}, lisp.ErrorConditionf(lisp.UnexpectedEOF, open, "map literal has a key with no value")
	}
	return r.Read()
}

func (r *Reader) trace(msg string, typ lisp.LType, index int) {
	if !r.log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	loc := r.lex.Scanner().Loc()
	r.log.Debug(msg,
		slog.String("collection", typ.String()),
		slog.Int("index", index),
		slog.Int("depth", r.depth),
		slog.String("pos", loc.String()))
}

func (r *Reader) errorf(c lisp.Condition, format string, v ...interface{}) error {
	return lisp.ErrorConditionf(c, r.lex.Scanner().Loc(), format, v...)
}
