package genealogy

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/outofforest/genealogy/id"
)

// ID identifies a person within the store.
type ID = id.ID

// Side selects one of two child slots of a person.
type Side uint8

const (
	// Left is the left child slot.
	Left Side = iota + 1

	// Right is the right child slot.
	Right
)

// ParseSide converts "left" or "right" (case-insensitive) to Side.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(s) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return 0, errors.Wrapf(ErrInvalidSide, "side %q", s)
	}
}

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Person is a named vertex of the genealogy tree.
// Persons are values: modifying a returned Person has no effect on the store.
type Person struct {
	ID     ID
	Name   string
	Parent ID
	Left   ID
	Right  ID
}

// Child returns the child occupying the given slot, id.Nil if the slot is empty.
func (p Person) Child(side Side) ID {
	if side == Left {
		return p.Left
	}
	return p.Right
}

// IsRoot tells if person is the root of the tree.
func (p Person) IsRoot() bool {
	return p.Parent.IsNil()
}

func (p *Person) setChild(side Side, child ID) {
	if side == Left {
		p.Left = child
		return
	}
	p.Right = child
}
