// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package genealogy_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outofforest/genealogy"
)

func TestStore_Isolation(t *testing.T) {
	setup := func(t *testing.T) *genealogy.Store {
		t.Helper()

		return newStore(t, "A",
			link{parent: "A", side: genealogy.Left, child: "B"},
		)
	}

	t.Run("snapshot dirty read", func(t *testing.T) {
		store := setup(t)
		store2 := store.Snapshot()

		txn1 := store.Txn(true)
		_, err := txn1.AddChild("A", genealogy.Right, "C")
		require.NoError(t, err)

		// Not committed yet, nobody sees C.
		_, exists := store.Txn(false).Lookup("C")
		require.False(t, exists)
		_, exists = store2.Txn(false).Lookup("C")
		require.False(t, exists)

		txn1.Commit()

		_, exists = store.Txn(false).Lookup("C")
		require.True(t, exists)

		// Snapshot taken before the commit keeps the old tree.
		txn2 := store2.Txn(false)
		_, exists = txn2.Lookup("C")
		require.False(t, exists)
		a, exists := txn2.Lookup("A")
		require.True(t, exists)
		require.True(t, a.Right.IsNil())
		descendants, err := txn2.Descendants("A")
		require.NoError(t, err)
		require.Equal(t, []string{"A", "B"}, descendants)
	})

	t.Run("read txn does not see later commits", func(t *testing.T) {
		store := setup(t)
		reader := store.Txn(false)

		writer := store.Txn(true)
		_, err := writer.AddChild("B", genealogy.Left, "D")
		require.NoError(t, err)
		writer.Commit()

		_, exists := reader.Lookup("D")
		require.False(t, exists)
		require.Equal(t, []string{"A", "B"}, reader.Names(""))

		_, exists = store.Txn(false).Lookup("D")
		require.True(t, exists)
	})

	t.Run("snapshot write does not leak", func(t *testing.T) {
		store := setup(t)
		snapshot := store.Snapshot()

		txn := snapshot.Txn(true)
		_, err := txn.AddChild("A", genealogy.Right, "Z")
		require.NoError(t, err)
		txn.Commit()

		_, exists := snapshot.Txn(false).Lookup("Z")
		require.True(t, exists)
		_, exists = store.Txn(false).Lookup("Z")
		require.False(t, exists)
	})
}

func TestStore_SingleWriter(t *testing.T) {
	requireT := require.New(t)
	store := newStore(t, "root")

	const writers = 10
	var wg sync.WaitGroup
	wg.Add(writers)
	for range writers {
		go func() {
			defer wg.Done()

			txn := store.Txn(true)
			defer txn.Abort()

			// Names sort as root, root+, root++, ... so the last one is the deepest person.
			names := txn.Names("")
			last := names[len(names)-1]
			if _, err := txn.AddChild(last, genealogy.Left, last+"+"); err != nil {
				return
			}
			txn.Commit()
		}()
	}
	wg.Wait()
	store.AwaitTxn()

	txn := store.Txn(false)
	requireT.Equal(writers+1, txn.Len())
	descendants, err := txn.Descendants("root")
	requireT.NoError(err)
	requireT.Len(descendants, writers+1)
}
