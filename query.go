package genealogy

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/outofforest/genealogy/id"
)

// Descendants returns the names of the person and everyone below it in pre-order:
// the person itself, then its left subtree, then its right subtree.
func (txn *Txn) Descendants(name string) ([]string, error) {
	p, exists := txn.Lookup(name)
	if !exists {
		return nil, errors.Wrapf(ErrNotFound, "person %q", name)
	}

	var names []string
	stack := []ID{p.ID}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		p, exists := txn.Get(current)
		if !exists {
			return nil, errors.Errorf("person %s is linked but not stored", current)
		}
		names = append(names, p.Name)

		// Right goes first so left is popped first.
		if !p.Right.IsNil() {
			stack = append(stack, p.Right)
		}
		if !p.Left.IsNil() {
			stack = append(stack, p.Left)
		}
	}
	return names, nil
}

// Ancestors returns the names on the path from the root down to the person, excluding the person,
// ordered from the nearest ancestor up to the root. Ancestors of the root are empty.
func (txn *Txn) Ancestors(name string) ([]string, error) {
	target, exists := txn.Lookup(name)
	if !exists {
		return nil, errors.Wrapf(ErrNotFound, "person %q", name)
	}

	type frame struct {
		personID ID
		depth    int
	}

	root, _ := txn.Root()
	stack := []frame{{personID: root.ID}}
	var path []string
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		p, exists := txn.Get(f.personID)
		if !exists {
			return nil, errors.Errorf("person %s is linked but not stored", f.personID)
		}

		// Path holds the ancestors of the current node only.
		path = path[:f.depth]
		if p.ID == target.ID {
			return lo.Reverse(path), nil
		}
		path = append(path, p.Name)

		for _, child := range []id.ID{p.Right, p.Left} {
			if !child.IsNil() {
				stack = append(stack, frame{personID: child, depth: f.depth + 1})
			}
		}
	}
	return nil, errors.Wrapf(ErrNotFound, "person %q is not reachable from the root", name)
}
