package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/luthersystems/elps-reader/parser/rdparser"
	"github.com/spf13/cobra"
)

var (
	rootTrace    bool
	rootMaxDepth int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "elps-reader",
	Short: "Read lisp data notation",
	Long: `Read expressions written in a lisp data notation and print them in
canonical form.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// readerConfig returns the reader configuration selected by global flags.
func readerConfig(cmd *cobra.Command, file string) []rdparser.Config {
	config := []rdparser.Config{
		rdparser.WithFile(file),
		rdparser.WithMaxDepth(rootMaxDepth),
	}
	if rootTrace {
		handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		config = append(config, rdparser.WithLogger(slog.New(handler)))
	}
	return config
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&rootTrace, "trace", false,
		"Log reader activity to stderr")
	rootCmd.PersistentFlags().IntVar(&rootMaxDepth, "max-depth", 0,
		"Maximum collection nesting depth (0 for no limit)")
}
