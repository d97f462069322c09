package lisp

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValue(t *testing.T) {
	var v LVal
	assert.Equal(t, LInvalid, v.Type)
	assert.Equal(t, "<INVALID>", v.String())
	_, err := Eval(v)
	assert.Error(t, err)
}

func TestTypeStrings(t *testing.T) {
	assert.Equal(t, "vector", LVector.String())
	assert.Equal(t, "INVALID", LType(100).String())
	assert.Equal(t, "keyword", AKeyword.String())
	assert.Equal(t, "INVALID", AtomType(100).String())
}

func TestAtomString(t *testing.T) {
	for _, test := range []struct {
		v    LVal
		want string
	}{
		{Symbol("abc"), "abc"},
		{Symbol("123abc"), "123abc"},
		{Keyword("key"), ":key"},
		{Int(0), "0"},
		{Int(-42), "-42"},
		{Int(math.MaxInt64), "9223372036854775807"},
		{Int(math.MinInt64), "-9223372036854775808"},
		{Float(1.5), "1.5"},
		{Float(-0.25), "-0.25"},
		{Float(1), "1.0"},
		{Float(1e21), "1000000000000000000000.0"},
		{Float(0.000001), "0.000001"},
		{Float(math.Inf(1)), "+Inf"},
		{String("hello"), `"hello"`},
		{String("ab\nc"), "\"ab\nc\""},
		{String(""), `""`},
		{Char('x'), "'x'"},
	} {
		require.Equal(t, LAtom, test.v.Type, "input: %v", test.want)
		assert.Equal(t, test.want, test.v.String(), "input: %#v", test.v)
		assert.Equal(t, test.want, test.v.Atom.String(), "input: %#v", test.v)
	}
}

func TestCollectionString(t *testing.T) {
	a, b := Symbol("a"), Int(1)
	for _, test := range []struct {
		v    LVal
		want string
	}{
		{List(), "()"},
		{Vector(), "[]"},
		{Map(), "{}"},
		{Set(), "#{}"},
		{List(a, b), "(a 1)"},
		{Vector(a, b), "[a 1]"},
		{Set(a, b, a), "#{a 1 a}"},
		{Map(KV(a, b), KV(a, String("x"))), `{a 1 a "x"}`},
		{List(Int(123), List(Int(456), Int(789)), Int(100)), "(123 (456 789) 100)"},
		{Vector(Map(KV(Keyword("k"), Set(Float(2.5)))), List()), "[{:k #{2.5}} ()]"},
	} {
		assert.Equal(t, test.want, test.v.String())
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Int(1), Int(1)))
	assert.False(t, Equal(Int(1), Float(1)))
	assert.False(t, Equal(Symbol("a"), String("a")))
	assert.False(t, Equal(Symbol("a"), Keyword("a")))
	assert.True(t, Equal(List(), LVal{Type: LList, Cells: []LVal{}}))
	assert.False(t, Equal(List(), Vector()))
	assert.False(t, Equal(List(Int(1)), List(Int(1), Int(2))))
	assert.False(t, Equal(List(Int(1)), List(Int(2))))
	assert.True(t, Equal(
		Map(KV(Symbol("a"), List(Int(1)))),
		Map(KV(Symbol("a"), List(Int(1))))))
	assert.False(t, Equal(
		Map(KV(Symbol("a"), Int(1))),
		Map(KV(Symbol("a"), Int(2)))))
	assert.False(t, Equal(
		Map(KV(Symbol("a"), Int(1))),
		Map(KV(Symbol("b"), Int(1)))))
	// entry order is significant
	assert.False(t, Equal(
		Map(KV(Symbol("a"), Int(1)), KV(Symbol("b"), Int(2))),
		Map(KV(Symbol("b"), Int(2)), KV(Symbol("a"), Int(1)))))
	assert.False(t, Equal(Set(Int(1)), Set(Int(1), Int(1))))
}

func TestLen(t *testing.T) {
	assert.Equal(t, 0, Int(1).Len())
	assert.Equal(t, 2, Set(Int(1), Int(1)).Len())
	assert.Equal(t, 1, Map(KV(Int(1), Int(2))).Len())
	assert.True(t, Int(1).IsAtom(AInt))
	assert.False(t, Int(1).IsAtom(AFloat))
	assert.False(t, List().IsAtom(ASymbol))
}

func TestEval(t *testing.T) {
	for _, v := range []LVal{
		Int(3),
		List(Symbol("+"), Int(1), Int(2)),
		Map(KV(String("k"), Vector())),
	} {
		x, err := Eval(v)
		require.NoError(t, err, "input: %v", v)
		assert.True(t, Equal(v, x), "input: %v", v)
	}
}

type failWriter struct {
	limit int
}

func (w *failWriter) Write(b []byte) (int, error) {
	if len(b) > w.limit {
		n := w.limit
		w.limit = 0
		return n, errors.New("short write")
	}
	w.limit -= len(b)
	return len(b), nil
}

func TestFprint(t *testing.T) {
	v := Vector(Int(1), Int(2))
	n, err := Fprint(&failWriter{limit: 100}, v)
	assert.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = Fprint(&failWriter{limit: 2}, v)
	assert.EqualError(t, err, "short write")
	assert.Equal(t, 2, n)
}
