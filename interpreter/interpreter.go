// Package interpreter turns command lines into operations on the genealogy store
// and formats the results as human-readable text.
package interpreter

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/outofforest/genealogy"
)

const (
	msgInvalidCommand = "Invalid command. Please enter a valid command."
	msgRootCreated    = "Root created. Command executed successfully"
	msgChildCreated   = "%s child created. Command executed successfully"
	msgRootExists     = "Root node already exists. Cannot add another root."
	msgNotFound       = "No node named '%s' found."
	msgSlotOccupied   = "Node '%s' already has a %s child."
	msgNameTaken      = "Node named '%s' already exists."
	msgNoRoot         = "The tree is empty. Create the root first."
)

// Response is the outcome of a single command.
type Response struct {
	// Text is the message to present to the user, might be multi-line.
	Text string

	// Clear asks the host to wipe the output accumulated so far before presenting Text.
	Clear bool
}

type command struct {
	minArgs int
	maxArgs int
	run     func(i *Interpreter, args []string) Response
}

var commands = map[string]command{
	"root":        {minArgs: 1, maxArgs: 1, run: (*Interpreter).createRoot},
	"left":        {minArgs: 2, maxArgs: 2, run: addChild(genealogy.Left)},
	"right":       {minArgs: 2, maxArgs: 2, run: addChild(genealogy.Right)},
	"descendants": {minArgs: 1, maxArgs: 1, run: (*Interpreter).descendants},
	"ancestors":   {minArgs: 1, maxArgs: 1, run: (*Interpreter).ancestors},
	"people":      {minArgs: 0, maxArgs: 1, run: (*Interpreter).people},
	"show":        {minArgs: 0, maxArgs: 1, run: (*Interpreter).show},
	"help":        {run: (*Interpreter).help},
	"clear":       {run: (*Interpreter).clear},
}

// New creates new interpreter operating on the store.
func New(store *genealogy.Store, log *zap.SugaredLogger) *Interpreter {
	return &Interpreter{
		store: store,
		log:   log,
	}
}

// Interpreter executes command lines against the store.
// Each line is processed completely before Submit returns.
type Interpreter struct {
	store *genealogy.Store
	log   *zap.SugaredLogger
}

// WelcomeBanner returns the help text listing available commands.
func (i *Interpreter) WelcomeBanner() string {
	return `Available commands:
root name
left parent child
right parent child
descendants person
ancestors person
people [prefix]
show [person]
help
clear (Clears the text area)`
}

// Submit executes one command line and returns the response to present.
func (i *Interpreter) Submit(line string) Response {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		i.log.Infow("Empty command rejected")
		return Response{Text: msgInvalidCommand}
	}

	name := strings.ToLower(tokens[0])
	args := tokens[1:]
	cmd, exists := commands[name]
	if !exists || len(args) < cmd.minArgs || len(args) > cmd.maxArgs {
		i.log.Infow("Invalid command rejected", "command", name, "args", args)
		return Response{Text: msgInvalidCommand}
	}

	i.log.Debugw("Executing command", "command", name, "args", args)
	return cmd.run(i, args)
}

func (i *Interpreter) createRoot(args []string) Response {
	err := i.update(func(txn *genealogy.Txn) error {
		_, err := txn.CreateRoot(args[0])
		return err
	})
	if err != nil {
		return i.failure(err, args[0], "", "")
	}
	return Response{Text: msgRootCreated}
}

func addChild(side genealogy.Side) func(i *Interpreter, args []string) Response {
	return func(i *Interpreter, args []string) Response {
		parent, child := args[0], args[1]
		err := i.update(func(txn *genealogy.Txn) error {
			_, err := txn.AddChild(parent, side, child)
			return err
		})
		if err != nil {
			return i.failure(err, parent, side.String(), child)
		}
		return Response{Text: fmt.Sprintf(msgChildCreated, capitalize(side.String()))}
	}
}

func (i *Interpreter) descendants(args []string) Response {
	person := args[0]
	descendants, err := i.store.Txn(false).Descendants(person)
	return i.listing(err, person, fmt.Sprintf("Descendants of '%s': %s", person, formatList(descendants)))
}

func (i *Interpreter) ancestors(args []string) Response {
	person := args[0]
	ancestors, err := i.store.Txn(false).Ancestors(person)
	return i.listing(err, person, fmt.Sprintf("Ancestors of '%s': %s", person, formatList(ancestors)))
}

func (i *Interpreter) people(args []string) Response {
	var prefix string
	if len(args) > 0 {
		prefix = args[0]
	}
	return Response{Text: "People: " + formatList(i.store.Txn(false).Names(prefix))}
}

func (i *Interpreter) show(args []string) Response {
	txn := i.store.Txn(false)

	var top genealogy.Person
	if len(args) > 0 {
		p, exists := txn.Lookup(args[0])
		if !exists {
			return i.failure(errors.Wrapf(genealogy.ErrNotFound, "person %q", args[0]), args[0], "", "")
		}
		top = p
	} else {
		root, exists := txn.Root()
		if !exists {
			return Response{Text: msgNoRoot}
		}
		top = root
	}
	return Response{Text: renderTree(txn, top)}
}

func (i *Interpreter) help([]string) Response {
	return Response{Text: i.WelcomeBanner()}
}

func (i *Interpreter) clear([]string) Response {
	return Response{Clear: true}
}

// update runs fn in a write transaction committed only if fn succeeds.
func (i *Interpreter) update(fn func(txn *genealogy.Txn) error) error {
	txn := i.store.Txn(true)
	defer txn.Abort()

	if err := fn(txn); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

// listing prefixes the query result with the error message if the query failed.
func (i *Interpreter) listing(err error, person, result string) Response {
	if err == nil {
		return Response{Text: result}
	}
	failure := i.failure(err, person, "", "")
	return Response{Text: failure.Text + "\n" + result}
}

// failure translates store errors into user messages. Subject is the person the operation was about,
// side and child are set for operations adding children.
func (i *Interpreter) failure(err error, subject, side, child string) Response {
	i.log.Infow("Command failed", "subject", subject, zap.Error(err))

	switch {
	case errors.Is(err, genealogy.ErrRootExists):
		return Response{Text: msgRootExists}
	case errors.Is(err, genealogy.ErrNotFound):
		return Response{Text: fmt.Sprintf(msgNotFound, subject)}
	case errors.Is(err, genealogy.ErrSlotOccupied):
		return Response{Text: fmt.Sprintf(msgSlotOccupied, subject, side)}
	case errors.Is(err, genealogy.ErrNameTaken):
		return Response{Text: fmt.Sprintf(msgNameTaken, child)}
	default:
		return Response{Text: msgInvalidCommand}
	}
}

func formatList(names []string) string {
	return "[" + strings.Join(names, ", ") + "]"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
