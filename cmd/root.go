package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/garbagetrash/risp/lisp"
	"github.com/garbagetrash/risp/lisp/lisplib"
)

// rootCmd represents the base command; without a subcommand risp starts
// the interactive session.
var rootCmd = &cobra.Command{
	Use:   "risp",
	Short: "risp is a small lisp interpreter",
	Long: `risp is a small lisp interpreter with numeric, comparison, and
control-flow builtins, dynamically scoped lambdas, and an experimental
hook into a signal-processing graph.`,
	Run: func(cmd *cobra.Command, args []string) {
		runRepl()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newEnv builds the environment shared by the CLI commands: the standard
// builtins plus the standard library.
func newEnv() *lisp.LEnv {
	env, err := lisp.StandardEnv(lisp.WithLibrary(lisplib.LoadLibrary))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return env
}
