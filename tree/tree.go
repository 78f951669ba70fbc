package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
)

// ErrInvalidFilter is thrown if a walker step is defunct.
var ErrInvalidFilter = errors.New("filter stage is invalid")

// ErrEmptyTree is thrown if a Walker is called with an empty tree. Refer to
// the documentation of NewWalker() for details about this scenario.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// Walker holds information for operating on trees: finding nodes and
// doing work on them. Clients usually create a Walker for a (sub-)tree
// to search for a selection of nodes matching certain criteria, and
// then perform some operation on this selection.
//
// A typical usage of a Walker looks like this:
//
//    nodes, err := NewWalker(node).DescendentsWith(NodeIsLeaf[T]()).Parent().Nodes()
//
// Every step returns a new Walker; a Walker is never modified after creation.
// The first error stops all subsequent steps and is returned by Nodes().
type Walker[T comparable] struct {
	initial   *Node[T]   // initial node of (sub-)tree
	selection []*Node[T] // current selection of nodes
	err       error      // first error which occured
}

// NewWalker creates a Walker for the initial node of a (sub-)tree.
// The first subsequent call to a node filter function will have this
// initial node as input.
//
// If initial is nil, NewWalker will return a nil-Walker, resulting
// in a NOP chain of operations, resulting in an empty set of nodes
// and an error (ErrEmptyTree).
func NewWalker[T comparable](initial *Node[T]) *Walker[T] {
	if initial == nil {
		return nil
	}
	tracer().Debugf("new tree-walker, initial node = %v", initial)
	return &Walker[T]{initial: initial, selection: []*Node[T]{initial}}
}

// Nodes returns the current selection of nodes and the first error which
// occured during the walk.
func (w *Walker[T]) Nodes() ([]*Node[T], error) {
	if w == nil {
		return nil, ErrEmptyTree
	}
	return w.selection, w.err
}

// step applies f to every node of the selection, collecting the results
// without duplicates.
func (w *Walker[T]) step(f func(*Node[T]) ([]*Node[T], error)) *Walker[T] {
	if w.err != nil {
		return w
	}
	next := &Walker[T]{initial: w.initial}
	seen := make(map[*Node[T]]struct{}, len(w.selection))
	for _, node := range w.selection {
		found, err := f(node)
		for _, n := range found {
			if _, ok := seen[n]; !ok {
				seen[n] = struct{}{}
				next.selection = append(next.selection, n)
			}
		}
		if err != nil {
			tracer().Debugf("tree walker stops: %v", err)
			next.err = err
			return next
		}
	}
	return next
}

func (w *Walker[T]) invalid() *Walker[T] {
	return &Walker[T]{initial: w.initial, err: ErrInvalidFilter}
}

// ----------------------------------------------------------------------

// Predicate is a function type to match against nodes of a tree.
// Is is used as an argument for various Walker functions to
// collect a selection of nodes.
// test is the node under test, node is the input node.
type Predicate[T comparable] func(test *Node[T], node *Node[T]) (match *Node[T], err error)

// Whatever is a predicate to match anything (see type Predicate).
// It is useful to match the first node in a given direction.
func Whatever[T comparable]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (*Node[T], error) {
		return test, nil
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree, i.e. nodes without
// children.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (match *Node[T], err error) {
		if test.ChildCount() == 0 {
			return test, nil
		}
		return nil, nil
	}
}

// Action is a function type to operate on tree nodes.
// Resulting nodes will be part of the selection, if no error occured.
type Action[T comparable] func(n *Node[T], parent *Node[T], position int) (*Node[T], error)

// ----------------------------------------------------------------------

// Parent selects the parent of every selected node. Root nodes do not
// produce a result.
//
// If w is nil, Parent will return nil.
func (w *Walker[T]) Parent() *Walker[T] {
	if w == nil {
		return nil
	}
	return w.step(func(node *Node[T]) ([]*Node[T], error) {
		p, err := node.Parent()
		if err != nil || p == nil {
			return nil, err
		}
		return []*Node[T]{p}, nil
	})
}

// AncestorWith finds an ancestor matching the given predicate.
// The search does not include the start node.
//
// If w is nil, AncestorWith will return nil.
func (w *Walker[T]) AncestorWith(predicate Predicate[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if predicate == nil {
		return w.invalid()
	}
	return w.step(func(node *Node[T]) ([]*Node[T], error) {
		anc, err := node.Parent()
		for anc != nil && err == nil {
			matched, perr := predicate(anc, node)
			if perr != nil {
				return nil, perr
			}
			if matched != nil {
				return []*Node[T]{matched}, nil
			}
			anc, err = anc.Parent()
		}
		return nil, err // no matching ancestor found is not an error
	})
}

// DescendentsWith finds descendents matching a predicate, in document order.
// The search does not include the start node.
//
// If w is nil, DescendentsWith will return nil.
func (w *Walker[T]) DescendentsWith(predicate Predicate[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if predicate == nil {
		return w.invalid()
	}
	return w.step(func(node *Node[T]) ([]*Node[T], error) {
		var matches []*Node[T]
		err := descendentsWith(node, node, predicate, &matches)
		return matches, err
	})
}

func descendentsWith[T comparable](node, origin *Node[T], predicate Predicate[T], matches *[]*Node[T]) error {
	for _, ch := range node.Children() {
		matched, err := predicate(ch, origin)
		if err != nil {
			return err // do not descend further
		}
		if matched != nil {
			*matches = append(*matches, matched)
		}
		if err := descendentsWith(ch, origin, predicate, matches); err != nil {
			return err
		}
	}
	return nil
}

// AllDescendents traverses all descendents.
// The traversal does not include the start node.
// This is just a wrapper around `w.DescendentsWith(Whatever)`.
//
// If w is nil, AllDescendents will return nil.
func (w *Walker[T]) AllDescendents() *Walker[T] {
	return w.DescendentsWith(Whatever[T]())
}

// Filter calls a client-provided function on each node of the selection.
// The user function should return the input node if it is accepted and
// nil otherwise.
//
// If w is nil, Filter will return nil.
func (w *Walker[T]) Filter(f Predicate[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if f == nil {
		return w.invalid()
	}
	return w.step(func(node *Node[T]) ([]*Node[T], error) {
		n, err := f(node, node)
		if n == nil || err != nil {
			return nil, err
		}
		return []*Node[T]{n}, nil
	})
}

// TopDown traverses a tree starting at (and including) the selected nodes,
// breadth first. The traversal guarantees that parents are always processed
// before their children.
//
// If the action function returns an error for a node,
// descending the branch below this node is aborted. The first of these errors
// is reported by Nodes().
//
// If w is nil, TopDown will return nil.
func (w *Walker[T]) TopDown(action Action[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if action == nil {
		return w.invalid()
	}
	var firstErr error
	next := w.step(func(node *Node[T]) ([]*Node[T], error) {
		var results []*Node[T]
		queue := []parentAndPosition[T]{{node: node}}
		for len(queue) > 0 {
			pp := queue[0]
			queue = queue[1:]
			result, err := action(pp.node, pp.parent, pp.position)
			tracer().Debugf("Action for node %s returned: %v, err=%v", pp.node, result, err)
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				continue // do not descend further
			}
			if result != nil {
				results = append(results, result)
			}
			for position, ch := range pp.node.Children() {
				queue = append(queue, parentAndPosition[T]{node: ch, parent: pp.node, position: position})
			}
		}
		return results, nil
	})
	if next.err == nil {
		next.err = firstErr
	}
	return next
}

// ad-hoc container
type parentAndPosition[T comparable] struct {
	node     *Node[T]
	parent   *Node[T]
	position int
}
