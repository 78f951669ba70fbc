package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"slices"
	"sync"
)

/*
We manage a tree of mutable nodes. Each nodes carries a payload of type parameter T.
Nodes own a slice of children and hold a plain back-reference to their parent.
The garbage collector reclaims parent/child cycles, so a node stays attached to
its parent for as long as the node itself is reachable.

Every node guards its links with its own mutex. Operations never hold the locks
of two nodes at the same time.
*/

// Node is the base type our tree is built of.
type Node[T comparable] struct {
	mx        sync.RWMutex // guards parent and children
	parent    *Node[T]     // back-reference to the parent node
	hasParent bool         // node is attached; parent must be non-nil then
	children  []*Node[T]   // owned children in insertion order
	leaf      bool         // leaf nodes never get children
	Payload   T            // nodes may carry a payload of arbitrary type
}

// NewNode creates a new tree node with a given payload.
// The node may have children.
func NewNode[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

// NewLeaf creates a new tree node with a given payload, which will never
// accept children.
func NewLeaf[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload, leaf: true}
}

func (node *Node[T]) String() string {
	if node == nil {
		return "(Node nil)"
	}
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// IsLeaf returns true if node has been created as a leaf node.
func (node *Node[T]) IsLeaf() bool {
	return node != nil && node.leaf
}

// Parent returns the parent node or nil (for the root of the tree).
// If the node is marked as attached but the parent does not resolve,
// Parent returns ErrGetParentPtr.
func (node *Node[T]) Parent() (*Node[T], error) {
	if node == nil {
		return nil, ErrNilNode
	}
	return node.parentNode()
}

// parentNode resolves the reference to the parent.
func (node *Node[T]) parentNode() (*Node[T], error) {
	node.mx.RLock()
	defer node.mx.RUnlock()
	if !node.hasParent {
		return nil, nil
	}
	p := node.parent
	if p == nil {
		tracer().Errorf("parent of node %p has vanished", node)
		return nil, ErrGetParentPtr
	}
	return p, nil
}

func (node *Node[T]) setParent(p *Node[T]) {
	node.mx.Lock()
	defer node.mx.Unlock()
	node.parent = p
	node.hasParent = p != nil
}

// AddChild appends ch as the last child of node. If ch already has a
// parent, it is detached from it first.
//
// AddChild fails with ErrAddToLeaf if node is a leaf, with ErrSameNodeCompare
// if ch is node itself and with ErrAddAncestorToDescendant if node is located
// in the subtree of ch. ErrGetParentPtr reports an unresolvable parent
// reference on the way up from node or of ch.
func (node *Node[T]) AddChild(ch *Node[T]) error {
	if node == nil || ch == nil {
		return ErrNilNode
	}
	if node.leaf {
		return ErrAddToLeaf
	}
	isDescendant, err := node.IsDescendantOf(ch)
	if err != nil {
		return err
	}
	if isDescendant {
		return ErrAddAncestorToDescendant
	}
	oldParent, err := ch.parentNode()
	if err != nil {
		return err
	}
	if oldParent != nil {
		if err := oldParent.removeChild(ch); err != nil {
			tracer().Errorf("node %p names %p as parent, but is not its child", ch, oldParent)
			return err
		}
	}
	ch.setParent(node)
	node.mx.Lock()
	node.children = append(node.children, ch)
	node.mx.Unlock()
	tracer().Debugf("added child %p to node %p", ch, node)
	return nil
}

// RemoveChild detaches ch from node. Other than the bare detach step used by
// AddChild, RemoveChild also clears the parent reference of ch, making ch the
// root of its own tree.
//
// RemoveChild fails with ErrNotChild if ch is not a child of node.
func (node *Node[T]) RemoveChild(ch *Node[T]) error {
	if node == nil || ch == nil {
		return ErrNilNode
	}
	if err := node.removeChild(ch); err != nil {
		return err
	}
	ch.setParent(nil)
	tracer().Debugf("removed child %p from node %p", ch, node)
	return nil
}

// removeChild removes the first occurrence of ch from the children of node.
// The parent reference of ch is left untouched.
func (node *Node[T]) removeChild(ch *Node[T]) error {
	node.mx.Lock()
	defer node.mx.Unlock()
	i := slices.Index(node.children, ch)
	if i < 0 {
		return ErrNotChild
	}
	node.children = slices.Delete(node.children, i, i+1)
	return nil
}

// Isolate removes a node from its parent, if any.
// Isolate returns the isolated node.
func (node *Node[T]) Isolate() (*Node[T], error) {
	if node == nil {
		return nil, ErrNilNode
	}
	p, err := node.parentNode()
	if err != nil {
		return node, err
	}
	if p == nil {
		return node, nil
	}
	return node, p.RemoveChild(node)
}

// IsAncestorOf checks if node is located on the parent chain of descendant.
// The check is strict: a node is not an ancestor of itself, and asking for
// it results in ErrSameNodeCompare.
func (node *Node[T]) IsAncestorOf(descendant *Node[T]) (bool, error) {
	if node == nil || descendant == nil {
		return false, ErrNilNode
	}
	if node == descendant {
		return false, ErrSameNodeCompare
	}
	return isAncestor(node, descendant)
}

// IsDescendantOf checks if ancestor is located on the parent chain of node.
// See IsAncestorOf.
func (node *Node[T]) IsDescendantOf(ancestor *Node[T]) (bool, error) {
	if node == nil || ancestor == nil {
		return false, ErrNilNode
	}
	return ancestor.IsAncestorOf(node)
}

// isAncestor walks up from n, comparing each ancestor with anc.
func isAncestor[T comparable](anc, n *Node[T]) (bool, error) {
	for {
		p, err := n.parentNode()
		if err != nil {
			return false, err
		}
		if p == nil {
			return false, nil
		}
		if p == anc {
			return true, nil
		}
		n = p
	}
}

// ChildCount returns the number of children-nodes for a node
// (concurrency-safe).
func (node *Node[T]) ChildCount() int {
	if node == nil {
		return 0
	}
	node.mx.RLock()
	defer node.mx.RUnlock()
	return len(node.children)
}

// Child is a concurrency-safe way to get a children-node of a node.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	if node == nil {
		return nil, false
	}
	node.mx.RLock()
	defer node.mx.RUnlock()
	if n < 0 || n >= len(node.children) {
		return nil, false
	}
	return node.children[n], true
}

// Children returns a slice with all children of a node, in insertion order.
// The slice is a copy and may be modified by the caller.
func (node *Node[T]) Children() []*Node[T] {
	if node == nil {
		return nil
	}
	node.mx.RLock()
	defer node.mx.RUnlock()
	return slices.Clone(node.children)
}

// IndexOfChild returns the index of a child within the list of children
// of node, or -1.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	if node == nil {
		return -1
	}
	node.mx.RLock()
	defer node.mx.RUnlock()
	return slices.Index(node.children, ch)
}
