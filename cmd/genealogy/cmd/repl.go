package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/outofforest/genealogy/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Reads commands from the prompt",
	Long: `Reads commands line by line from standard input and prints
the responses. Type "exit" or "quit" to leave.`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	s, err := newSession(false)
	if err != nil {
		printError("setup failed", err)
		return err
	}
	defer s.close()

	return repl.Run(os.Stdin, cmd.OutOrStdout(), s.interp, repl.Config{Prompt: s.cfg.Prompt})
}
