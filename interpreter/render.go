package interpreter

import (
	"strings"

	"github.com/xlab/treeprint"

	"github.com/outofforest/genealogy"
)

// renderTree draws the subtree rooted at top. Children are labeled with the slot they occupy.
func renderTree(txn *genealogy.Txn, top genealogy.Person) string {
	tree := treeprint.NewWithRoot(top.Name)
	walkTree(txn, top, tree)
	return strings.TrimRight(tree.String(), "\n")
}

func walkTree(txn *genealogy.Txn, p genealogy.Person, tree treeprint.Tree) {
	for _, side := range []genealogy.Side{genealogy.Left, genealogy.Right} {
		child, exists := txn.Get(p.Child(side))
		if !exists {
			continue
		}

		label := side.String() + ": " + child.Name
		if child.Left.IsNil() && child.Right.IsNil() {
			tree.AddNode(label)
			continue
		}
		walkTree(txn, child, tree.AddBranch(label))
	}
}
