package dom

import (
	"github.com/npillmayer/markup/tree"
	"golang.org/x/net/html/atom"
)

// NodeIsText is a predicate to match text-nodes of a document.
// It is intended to be used in a tree.Walker.
var NodeIsText = func(n *tree.Node[*Node], unused *tree.Node[*Node]) (
	match *tree.Node[*Node], err error) {
	//
	domnode, err := NodeFromTreeNode(n)
	if err != nil {
		return nil, err
	}
	if domnode.IsText() {
		return n, nil
	}
	return nil, nil
}

// NodeIsElement returns a predicate to match elements of a given kind.
// It is intended to be used in a tree.Walker.
func NodeIsElement(kind atom.Atom) tree.Predicate[*Node] {
	return func(n *tree.Node[*Node], unused *tree.Node[*Node]) (*tree.Node[*Node], error) {
		domnode, err := NodeFromTreeNode(n)
		if err != nil {
			return nil, err
		}
		if e := domnode.Element(); e != nil && e.kind == kind {
			return n, nil
		}
		return nil, nil
	}
}

// NodeIsAnchor is a predicate to match anchor elements.
var NodeIsAnchor = NodeIsElement(atom.A)
