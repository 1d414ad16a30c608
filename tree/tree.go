package tree

import "github.com/outofforest/genealogy/id"

// New creates new empty tree.
func New[V any]() *Tree[V] {
	return &Tree[V]{
		revision: 1,
	}
}

// Tree is a persistent binary trie mapping person IDs to values.
// Every revision shares untouched nodes with the revision it was derived from, so a revision
// which has been handed out to readers stays valid as long as nobody writes to it.
// Values are kept in no particular order. They cannot be deleted, nor iterated.
type Tree[V any] struct {
	revision uint64
	size     int
	root     *node[V]
}

// Next derives new writable revision of the tree. The receiver must not be modified afterwards.
func (t *Tree[V]) Next() *Tree[V] {
	return &Tree[V]{
		revision: t.revision + 1,
		size:     t.size,
		root:     t.root,
	}
}

// Len returns the number of values stored in the tree.
func (t *Tree[V]) Len() int {
	return t.size
}

// Get gets value from the tree.
func (t *Tree[V]) Get(key id.ID) (*V, bool) {
	n := t.root
	for path := uint64(key); n != nil; path >>= 1 {
		if n.key == key {
			return n.value, true
		}
		n = n.child(path & 0x01)
	}
	return nil, false
}

// Set stores value in the tree. Nodes belonging to older revisions are copied on the way down.
func (t *Tree[V]) Set(key id.ID, value *V) {
	n := &t.root
	for path := uint64(key); ; path >>= 1 {
		if *n == nil {
			*n = &node[V]{
				revision: t.revision,
				key:      key,
				value:    value,
			}
			t.size++
			return
		}

		if (*n).revision != t.revision {
			copied := **n
			copied.revision = t.revision
			*n = &copied
		}

		if (*n).key == key {
			(*n).value = value
			return
		}

		if path&0x01 > 0 {
			n = &(*n).left
		} else {
			n = &(*n).right
		}
	}
}

type node[V any] struct {
	revision uint64
	key      id.ID
	value    *V
	left     *node[V]
	right    *node[V]
}

func (n *node[V]) child(bit uint64) *node[V] {
	if bit > 0 {
		return n.left
	}
	return n.right
}
