package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/outofforest/genealogy"
	"github.com/outofforest/genealogy/config"
	"github.com/outofforest/genealogy/interpreter"
	"github.com/outofforest/genealogy/logger"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "genealogy",
	Short: "Binary genealogy tree explorer",
	Long: `genealogy keeps a binary tree of named persons and answers
descendant and ancestor queries.

Every person has at most two children, placed in the left or right slot.
Commands:
  root name              - create the root person
  left parent child      - add child in the left slot
  right parent child     - add child in the right slot
  descendants person     - list the person and everyone below
  ancestors person       - list parents up to the root
  people [prefix]        - list registered names
  show [person]          - draw the tree
  clear                  - clear the output

Without a subcommand the terminal UI is started.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.env, .yaml, .toml or .json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// session is everything a host needs to talk to the genealogy tree.
type session struct {
	cfg    *config.Config
	log    *zap.SugaredLogger
	interp *interpreter.Interpreter
}

// newSession loads config, creates logger and an interpreter over an empty store.
// When screen is true, logging to the terminal is disabled so it doesn't corrupt the UI.
func newSession(screen bool) (*session, error) {
	cfg, err := config.Setup(cfgFile)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	log := logger.Nop()
	if cfg.LogOutput != "" && !(screen && isTerminalOutput(cfg.LogOutput)) {
		log, err = logger.New(cfg.LogLevel, cfg.LogOutput)
		if err != nil {
			return nil, err
		}
	}

	log.Debugw("Session started", "config", cfgFile, "logLevel", cfg.LogLevel)
	return &session{
		cfg:    cfg,
		log:    log,
		interp: interpreter.New(genealogy.New(), log),
	}, nil
}

func (s *session) close() {
	_ = s.log.Sync()
}

func isTerminalOutput(output string) bool {
	return output == "stdout" || output == "stderr"
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
