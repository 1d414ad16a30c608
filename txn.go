// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package genealogy

import (
	"github.com/pkg/errors"

	"github.com/outofforest/genealogy/id"
)

// Txn is a transaction against a Store.
// This can be a read or write transaction.
type Txn struct {
	store    *Store
	write    bool
	finished bool
	state    *state
}

// Abort is used to cancel this transaction.
// This is a noop for read transactions,
// already aborted or committed transactions.
func (txn *Txn) Abort() {
	// Noop for a read transaction
	if !txn.write {
		return
	}

	// Check if already aborted or committed
	if txn.finished {
		return
	}

	// Drop the changes, reads fall back to the committed state
	txn.finished = true
	txn.state = txn.store.getRoot()

	// Release the writer lock since this is invalid
	txn.store.writer.Unlock()
}

// Commit is used to finalize this transaction.
// This is a noop for read transactions,
// already aborted or committed transactions.
func (txn *Txn) Commit() {
	// Noop for a read transaction.
	if !txn.write {
		return
	}

	// Check if already aborted or committed.
	if txn.finished {
		return
	}

	// Publish the new state.
	txn.store.root.Store(txn.state)
	txn.finished = true

	// Release the writer lock since this is invalid.
	txn.store.writer.Unlock()
}

// CreateRoot creates the root person. There might be only one root during the lifetime of the store.
func (txn *Txn) CreateRoot(name string) (Person, error) {
	if err := txn.checkWritable(); err != nil {
		return Person{}, err
	}
	if name == "" {
		return Person{}, ErrEmptyName
	}
	if !txn.state.root.IsNil() {
		root, _ := txn.Get(txn.state.root)
		return Person{}, errors.Wrapf(ErrRootExists, "root %q", root.Name)
	}

	p := txn.newPerson(name, id.Nil)
	txn.state.root = p.ID
	return p, nil
}

// AddChild creates new person and attaches it to the chosen slot of the parent.
// Nothing is modified if the parent does not exist, the slot is occupied or the name is already taken.
func (txn *Txn) AddChild(parentName string, side Side, childName string) (Person, error) {
	if err := txn.checkWritable(); err != nil {
		return Person{}, err
	}
	if side != Left && side != Right {
		return Person{}, errors.Wrapf(ErrInvalidSide, "side %d", side)
	}
	if childName == "" {
		return Person{}, ErrEmptyName
	}

	parent, exists := txn.Lookup(parentName)
	if !exists {
		return Person{}, errors.Wrapf(ErrNotFound, "parent %q", parentName)
	}
	if child := parent.Child(side); !child.IsNil() {
		occupant, _ := txn.Get(child)
		return Person{}, errors.Wrapf(ErrSlotOccupied, "%s child of %q is %q", side, parentName, occupant.Name)
	}
	if _, exists := txn.Lookup(childName); exists {
		return Person{}, errors.Wrapf(ErrNameTaken, "person %q", childName)
	}

	child := txn.newPerson(childName, parent.ID)
	parent.setChild(side, child.ID)
	txn.state.persons.Set(parent.ID, &parent)
	return child, nil
}

// Lookup returns the person registered under the name.
func (txn *Txn) Lookup(name string) (Person, bool) {
	if name == "" {
		return Person{}, false
	}

	// Exact key, if present, is the first entry of its prefix range.
	iter := txn.state.names.Root().Iterator()
	iter.SeekPrefix([]byte(name))
	personID := iter.Next()
	if personID == nil {
		return Person{}, false
	}
	p, exists := txn.Get(*personID)
	if !exists || p.Name != name {
		return Person{}, false
	}
	return p, true
}

// Get returns the person with the given ID.
func (txn *Txn) Get(personID ID) (Person, bool) {
	p, exists := txn.state.persons.Get(personID)
	if !exists {
		return Person{}, false
	}
	return *p, true
}

// Root returns the root person, if created.
func (txn *Txn) Root() (Person, bool) {
	if txn.state.root.IsNil() {
		return Person{}, false
	}
	return txn.Get(txn.state.root)
}

// Len returns the number of persons in the tree.
func (txn *Txn) Len() int {
	return txn.state.persons.Len()
}

// Names returns the names starting with prefix in lexicographic order.
// Empty prefix returns all the names.
func (txn *Txn) Names(prefix string) []string {
	iter := txn.state.names.Root().Iterator()
	if prefix != "" {
		iter.SeekPrefix([]byte(prefix))
	}

	names := []string{}
	for personID := iter.Next(); personID != nil; personID = iter.Next() {
		if p, exists := txn.Get(*personID); exists {
			names = append(names, p.Name)
		}
	}
	return names
}

func (txn *Txn) checkWritable() error {
	if !txn.write {
		return ErrReadOnly
	}
	if txn.finished {
		return ErrTxnFinished
	}
	return nil
}

// newPerson allocates ID, stores the person and registers its name.
func (txn *Txn) newPerson(name string, parent ID) Person {
	txn.state.lastID = txn.state.lastID.Next()
	p := Person{
		ID:     txn.state.lastID,
		Name:   name,
		Parent: parent,
	}
	personID := p.ID

	txn.state.persons.Set(p.ID, &p)
	txn.state.names.Insert([]byte(name), &personID)
	return p
}
