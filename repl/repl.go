package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/luthersystems/elps-reader/parser/rdparser"
)

// LineReader reads one line of input at a time.  *readline.Instance is a
// LineReader.
type LineReader interface {
	Readline() (string, error)
}

// Run reads lines from lines until it returns io.EOF.  The first expression
// on each line is read, evaluated and printed to stdout.  Errors are printed
// to stderr and do not stop the loop.  A readline.ErrInterrupt discards the
// current line.
func Run(lines LineReader, stdout io.Writer, stderr io.Writer, config ...rdparser.Config) error {
	for {
		line, err := lines.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		out, err := Rep(line, config...)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			continue
		}
		fmt.Fprintln(stdout, out)
	}
}

// RunRepl runs an interactive repl on the terminal.  If historyFile is not
// empty input history is persisted there.
func RunRepl(prompt string, historyFile string, config ...rdparser.Config) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		HistoryFile: historyFile,
	})
	if err != nil {
		errln(err)
		return
	}
	defer rl.Close()

	fmt.Fprintln(rl.Stdout(), "Welcome to elps-reader!")
	err = Run(rl, rl.Stdout(), rl.Stderr(), config...)
	if err != nil {
		errln(err)
		return
	}
	errln("done")
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
