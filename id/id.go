package id

import "strconv"

const (
	// Nil marks an empty child slot or a missing parent.
	Nil ID = 0

	// First is the ID assigned to the first person ever created, the root.
	First ID = 1
)

// ID identifies a person within a store. IDs are allocated sequentially and never reused.
type ID uint64

// Next returns the ID following this one.
func (i ID) Next() ID {
	return i + 1
}

// IsNil tells if ID points to nobody.
func (i ID) IsNil() bool {
	return i == Nil
}

func (i ID) String() string {
	return "#" + strconv.FormatUint(uint64(i), 10)
}
