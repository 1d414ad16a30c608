package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/outofforest/genealogy/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Starts the interactive terminal UI",
	Long: `Starts the terminal window with an output area, an input field
and an Execute button.

Keys:
  Enter       - execute the command
  Ctrl+L      - clear the output
  PgUp/PgDn   - scroll the output
  Esc, Ctrl+C - quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	s, err := newSession(true)
	if err != nil {
		printError("setup failed", err)
		return err
	}
	defer s.close()

	p := tea.NewProgram(
		tui.New(s.interp, s.cfg.Title),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		printError("terminal UI failed", err)
		return err
	}

	return nil
}
