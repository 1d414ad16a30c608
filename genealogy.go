// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package genealogy provides an in-memory binary genealogy tree of named persons
// with transactional updates and descendant/ancestor queries.
package genealogy

import (
	"sync"
	"sync/atomic"

	"github.com/outofforest/iradix"

	"github.com/outofforest/genealogy/id"
	"github.com/outofforest/genealogy/tree"
)

// Store keeps the genealogy tree. It provides Atomicity and Isolation: every change happens
// inside a write transaction and becomes visible to readers only after commit.
//
// The tree has a single root which, once created, is never replaced. Persons are never
// removed and child slots, once occupied, never change.
type Store struct {
	root atomic.Pointer[state]

	// There can only be a single writer at once
	writer sync.Mutex
}

// New creates a new empty store.
func New() *Store {
	s := &Store{}
	s.root.Store(&state{
		persons: tree.New[Person](),
		names:   iradix.NewTxn(iradix.New[id.ID]()),
	})
	return s
}

// Txn is used to start a new transaction in either read or write mode.
// There can only be a single concurrent writer, but any number of readers.
func (s *Store) Txn(write bool) *Txn {
	st := s.getRoot()
	if write {
		s.writer.Lock()
		st = st.next()
	}

	return &Txn{
		store: s,
		write: write,
		state: st,
	}
}

// AwaitTxn waits until pending transaction (if any) is finished.
func (s *Store) AwaitTxn() {
	s.writer.Lock()
	s.writer.Unlock() //nolint:staticcheck
}

// Snapshot is used to capture a point-in-time snapshot of the store that
// will not be affected by any write operations to the existing store.
func (s *Store) Snapshot() *Store {
	snapshot := &Store{}
	snapshot.root.Store(s.getRoot())
	return snapshot
}

// getRoot is used to do an atomic load of the committed state.
func (s *Store) getRoot() *state {
	return s.root.Load()
}

// state is a single revision of the store. Committed states are never modified.
type state struct {
	root    id.ID
	lastID  id.ID
	persons *tree.Tree[Person]
	names   *iradix.Txn[id.ID]
}

// next derives a writable copy of the state.
func (st *state) next() *state {
	return &state{
		root:    st.root,
		lastID:  st.lastID,
		persons: st.persons.Next(),
		names:   iradix.NewTxn(st.names.Root()),
	}
}
