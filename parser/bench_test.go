package parser_test

import (
	"strings"
	"testing"

	"github.com/luthersystems/elps-reader/parser"
)

func BenchmarkParser(b *testing.B) {
	for _, bench := range []struct {
		name string
		text string
	}{
		{"atom", `hello-world`},
		{"string", `"hello\nworld \"quoted\""`},
		{"flat", `(1 2.5 three "four" [5 6] {a 7} #{8})`},
		{"nested", strings.Repeat("(", 100) + "x" + strings.Repeat(")", 100)},
		{"wide", "[" + strings.Repeat("123 4.5 sym ", 1000) + "]"},
	} {
		b.Run(bench.name, func(b *testing.B) {
			b.SetBytes(int64(len(bench.text)))
			for i := 0; i < b.N; i++ {
				_, _, err := parser.ReadString(bench.text)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
