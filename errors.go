package genealogy

import "github.com/pkg/errors"

var (
	// ErrNotFound is returned when the requested person is not found.
	ErrNotFound = errors.New("not found")

	// ErrRootExists is returned on attempt to create second root.
	ErrRootExists = errors.New("root already exists")

	// ErrSlotOccupied is returned when child slot already holds a person.
	ErrSlotOccupied = errors.New("slot occupied")

	// ErrNameTaken is returned when name is already used by another person.
	ErrNameTaken = errors.New("name already taken")

	// ErrEmptyName is returned when person is created without a name.
	ErrEmptyName = errors.New("empty name")

	// ErrReadOnly is returned on attempt to modify the store in read-only transaction.
	ErrReadOnly = errors.New("read-only transaction")

	// ErrInvalidSide is returned when side is neither left nor right.
	ErrInvalidSide = errors.New("invalid side")

	// ErrTxnFinished is returned when transaction has been already committed or aborted.
	ErrTxnFinished = errors.New("transaction finished")
)
