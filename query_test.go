package genealogy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outofforest/genealogy"
)

type link struct {
	parent string
	side   genealogy.Side
	child  string
}

func newStore(t *testing.T, root string, links ...link) *genealogy.Store {
	t.Helper()

	store := genealogy.New()
	txn := store.Txn(true)
	_, err := txn.CreateRoot(root)
	require.NoError(t, err)
	for _, l := range links {
		_, err := txn.AddChild(l.parent, l.side, l.child)
		require.NoError(t, err)
	}
	txn.Commit()
	return store
}

// Family used by most of the tests:
//
//	      A
//	    /   \
//	   B     C
//	  / \     \
//	 D   E     F
//	    /
//	   G
func family(t *testing.T) *genealogy.Store {
	return newStore(t, "A",
		link{parent: "A", side: genealogy.Left, child: "B"},
		link{parent: "A", side: genealogy.Right, child: "C"},
		link{parent: "B", side: genealogy.Left, child: "D"},
		link{parent: "B", side: genealogy.Right, child: "E"},
		link{parent: "C", side: genealogy.Right, child: "F"},
		link{parent: "E", side: genealogy.Left, child: "G"},
	)
}

func TestDescendants(t *testing.T) {
	txn := family(t).Txn(false)

	tests := []struct {
		person   string
		expected []string
	}{
		{person: "A", expected: []string{"A", "B", "D", "E", "G", "C", "F"}},
		{person: "B", expected: []string{"B", "D", "E", "G"}},
		{person: "C", expected: []string{"C", "F"}},
		{person: "E", expected: []string{"E", "G"}},
		{person: "G", expected: []string{"G"}},
	}

	for _, tc := range tests {
		t.Run(tc.person, func(t *testing.T) {
			descendants, err := txn.Descendants(tc.person)
			require.NoError(t, err)
			require.Equal(t, tc.expected, descendants)
		})
	}
}

func TestDescendants_RootCoversEveryone(t *testing.T) {
	requireT := require.New(t)
	txn := family(t).Txn(false)

	root, exists := txn.Root()
	requireT.True(exists)

	descendants, err := txn.Descendants(root.Name)
	requireT.NoError(err)
	requireT.Equal(root.Name, descendants[0])
	requireT.Len(descendants, txn.Len())
	requireT.ElementsMatch(txn.Names(""), descendants)
}

func TestDescendants_NotFound(t *testing.T) {
	requireT := require.New(t)
	txn := family(t).Txn(false)

	descendants, err := txn.Descendants("X")
	requireT.ErrorIs(err, genealogy.ErrNotFound)
	requireT.Empty(descendants)
}

func TestAncestors(t *testing.T) {
	txn := family(t).Txn(false)

	tests := []struct {
		person   string
		expected []string
	}{
		{person: "A", expected: nil},
		{person: "B", expected: []string{"A"}},
		{person: "C", expected: []string{"A"}},
		{person: "D", expected: []string{"B", "A"}},
		{person: "F", expected: []string{"C", "A"}},
		{person: "G", expected: []string{"E", "B", "A"}},
	}

	for _, tc := range tests {
		t.Run(tc.person, func(t *testing.T) {
			ancestors, err := txn.Ancestors(tc.person)
			require.NoError(t, err)
			if tc.expected == nil {
				require.Empty(t, ancestors)
				return
			}
			require.Equal(t, tc.expected, ancestors)
		})
	}
}

func TestAncestors_LeavesEndAtRoot(t *testing.T) {
	requireT := require.New(t)
	txn := family(t).Txn(false)

	for _, leaf := range []string{"D", "G", "F"} {
		ancestors, err := txn.Ancestors(leaf)
		requireT.NoError(err)
		requireT.NotEmpty(ancestors)
		requireT.Equal("A", ancestors[len(ancestors)-1])
		requireT.NotContains(ancestors, leaf)

		// Every listed ancestor is the parent of the previous one.
		child, exists := txn.Lookup(leaf)
		requireT.True(exists)
		for _, name := range ancestors {
			parent, exists := txn.Get(child.Parent)
			requireT.True(exists)
			requireT.Equal(name, parent.Name)
			child = parent
		}
	}
}

func TestAncestors_NotFound(t *testing.T) {
	requireT := require.New(t)
	txn := family(t).Txn(false)

	ancestors, err := txn.Ancestors("X")
	requireT.ErrorIs(err, genealogy.ErrNotFound)
	requireT.Empty(ancestors)
}

func TestRoundTrip(t *testing.T) {
	requireT := require.New(t)
	store := newStore(t, "A",
		link{parent: "A", side: genealogy.Left, child: "B"},
		link{parent: "A", side: genealogy.Right, child: "C"},
		link{parent: "B", side: genealogy.Left, child: "D"},
	)
	txn := store.Txn(false)

	descendants, err := txn.Descendants("A")
	requireT.NoError(err)
	requireT.Equal([]string{"A", "B", "D", "C"}, descendants)

	ancestors, err := txn.Ancestors("D")
	requireT.NoError(err)
	requireT.Equal([]string{"B", "A"}, ancestors)
}

func TestQueries_DeepChain(t *testing.T) {
	requireT := require.New(t)

	names := []string{"p0", "p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8", "p9"}
	links := make([]link, 0, len(names)-1)
	for i := 1; i < len(names); i++ {
		side := genealogy.Left
		if i%2 == 0 {
			side = genealogy.Right
		}
		links = append(links, link{parent: names[i-1], side: side, child: names[i]})
	}
	txn := newStore(t, names[0], links...).Txn(false)

	descendants, err := txn.Descendants("p0")
	requireT.NoError(err)
	requireT.Equal(names, descendants)

	ancestors, err := txn.Ancestors("p9")
	requireT.NoError(err)
	requireT.Equal([]string{"p8", "p7", "p6", "p5", "p4", "p3", "p2", "p1", "p0"}, ancestors)
}
