package tree

import "errors"

// Errors of the tree mutation protocol. All of them are recoverable; callers
// decide whether to treat them as fatal.
var (
	// ErrGetParentPtr is returned if a node is marked as attached but its
	// parent reference cannot be resolved. This signals a broken internal invariant rather than
	// client misuse.
	ErrGetParentPtr = errors.New("failed to get parent pointer")

	// ErrNotChild is returned if a node to remove is not a child of a parent.
	ErrNotChild = errors.New("node is not child")

	// ErrSameNodeCompare is returned if an ancestor or descendant relation
	// is queried for a node and itself.
	ErrSameNodeCompare = errors.New("same node comparison")

	// ErrAddAncestorToDescendant is returned if attaching a node would
	// create a cycle.
	ErrAddAncestorToDescendant = errors.New("cannot add ancestor to descendant node")

	// ErrAddToLeaf is returned if a child is attached to a leaf node.
	ErrAddToLeaf = errors.New("cannot add to leaf node")

	// ErrNilNode is returned if an operation is called with a nil node.
	ErrNilNode = errors.New("node is nil")
)
