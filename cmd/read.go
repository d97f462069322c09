package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/luthersystems/elps-reader/lisp"
	"github.com/luthersystems/elps-reader/parser"
	"github.com/spf13/cobra"
)

var (
	readExpression bool
	readDump       bool
)

// readCmd represents the read command
var readCmd = &cobra.Command{
	Use:   "read [flags] source...",
	Short: "Read and print expressions",
	Long: `Read expressions from files or from the command line and print each
expression in canonical form.  A source of "-" reads standard input.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sources, err := readSources(cmd, args)
		if err != nil {
			return err
		}
		for _, src := range sources {
			r := parser.NewReader(src.text, readerConfig(cmd, src.name)...)
			err := readPrint(cmd.OutOrStdout(), r)
			if err != nil {
				return err
			}
		}
		return nil
	},
}

// readPrint reads expressions from r until it is exhausted, printing each
// expression to w.
func readPrint(w io.Writer, r lisp.Reader) error {
	for !r.Done() {
		v, err := r.Read()
		if err != nil {
			return err
		}
		v, err = lisp.Eval(v)
		if err != nil {
			return err
		}
		if readDump {
			fmt.Fprint(w, spew.Sdump(v))
			continue
		}
		fmt.Fprintln(w, v)
	}
	return nil
}

type readSource struct {
	name string
	text string
}

func readSources(cmd *cobra.Command, args []string) ([]readSource, error) {
	sources := make([]readSource, len(args))
	if readExpression {
		for i := range args {
			sources[i] = readSource{
				name: fmt.Sprintf("<arg %d>", i+1),
				text: args[i],
			}
		}
		return sources, nil
	}
	for i, path := range args {
		if path == "-" {
			b, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return nil, fmt.Errorf("unable to read stdin: %w", err)
			}
			sources[i] = readSource{name: "<stdin>", text: string(b)}
			continue
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read source: %w", err)
		}
		sources[i] = readSource{name: path, text: string(b)}
	}
	return sources, nil
}

func init() {
	rootCmd.AddCommand(readCmd)

	readCmd.Flags().BoolVarP(&readExpression, "expression", "e", false,
		"Interpret arguments as expressions instead of file paths")
	readCmd.Flags().BoolVar(&readDump, "dump", false,
		"Print the Go structure of each expression")
}
