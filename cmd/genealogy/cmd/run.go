package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/outofforest/genealogy/repl"
)

var runCmd = &cobra.Command{
	Use:   "run FILE...",
	Short: "Executes command scripts",
	Long: `Executes commands stored in files, one per line, echoing every command
followed by its response. All the files operate on the same tree.
Blank lines and lines starting with '#' are skipped. Use "-" to read from standard input.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScripts,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runScripts(cmd *cobra.Command, args []string) error {
	s, err := newSession(false)
	if err != nil {
		printError("setup failed", err)
		return err
	}
	defer s.close()

	for _, path := range args {
		if err := runScript(path, cmd.OutOrStdout(), s); err != nil {
			printError("script failed", err)
			return err
		}
	}
	return nil
}

func runScript(path string, out io.Writer, s *session) error {
	in := io.Reader(os.Stdin)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrapf(err, "opening script %q failed", path)
		}
		defer f.Close()
		in = f
	}

	s.log.Debugw("Running script", "path", path)
	return repl.Run(in, out, s.interp, repl.Config{Script: true})
}
