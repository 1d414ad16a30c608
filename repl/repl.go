// Package repl runs the interpreter over line-oriented input: an interactive prompt or a command script.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/outofforest/genealogy/interpreter"
)

// clearScreen moves the cursor home and erases the terminal.
const clearScreen = "\x1b[H\x1b[2J"

// Interpreter executes commands.
type Interpreter interface {
	Submit(line string) interpreter.Response
	WelcomeBanner() string
}

// Config configures the loop.
type Config struct {
	// Prompt is printed before reading each line in interactive mode.
	Prompt string

	// Script switches to batch mode: no banner, no prompt, blank lines and lines starting with '#' are skipped,
	// every command is echoed before its response.
	Script bool
}

// Run reads commands from in until EOF or "exit"/"quit" and writes responses to out.
func Run(in io.Reader, out io.Writer, interp Interpreter, cfg Config) error {
	w := bufio.NewWriter(out)
	defer w.Flush()

	if !cfg.Script {
		if _, err := fmt.Fprintln(w, interp.WelcomeBanner()); err != nil {
			return errors.WithStack(err)
		}
	}

	scanner := bufio.NewScanner(in)
	for {
		if !cfg.Script {
			if _, err := w.WriteString(cfg.Prompt); err != nil {
				return errors.WithStack(err)
			}
		}
		if err := w.Flush(); err != nil {
			return errors.WithStack(err)
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return errors.Wrap(err, "reading commands failed")
			}
			if !cfg.Script {
				_, _ = fmt.Fprintln(w)
			}
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" && !cfg.Script:
			continue
		case cfg.Script && (line == "" || strings.HasPrefix(line, "#")):
			continue
		case line == "exit" || line == "quit":
			return nil
		}

		if cfg.Script {
			if _, err := fmt.Fprintf(w, "> %s\n", line); err != nil {
				return errors.WithStack(err)
			}
		}

		resp := interp.Submit(line)
		if resp.Clear {
			if _, err := w.WriteString(clearScreen); err != nil {
				return errors.WithStack(err)
			}
		}
		if resp.Text != "" {
			if _, err := fmt.Fprintln(w, resp.Text); err != nil {
				return errors.WithStack(err)
			}
		}
	}
}
