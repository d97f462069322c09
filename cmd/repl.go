package cmd

import (
	"github.com/luthersystems/elps-reader/repl"
	"github.com/spf13/cobra"
)

var (
	replPrompt  string
	replHistory string
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read expressions interactively",
	Long: `Read expressions one line at a time, printing each expression or
the error encountered while reading it.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		repl.RunRepl(replPrompt, replHistory, readerConfig(cmd, "<stdin>")...)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVar(&replPrompt, "prompt", "> ",
		"Prompt displayed when reading input")
	replCmd.Flags().StringVar(&replHistory, "history", "",
		"File used to persist input history")
}
