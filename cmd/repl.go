package cmd

import (
	"github.com/spf13/cobra"

	"github.com/garbagetrash/risp/repl"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long:  `Read expressions from the terminal and print each result.`,
	Run: func(cmd *cobra.Command, args []string) {
		runRepl()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl() {
	repl.RunRepl(newEnv(), "risp > ")
}
