/*
Package tree implements the generic node tree markup documents are built of.

Nodes own their children and keep a back-reference to their parent. Holding
on to any node keeps its whole tree reachable; the garbage collector reclaims
a tree once no node of it is referenced any more. A node marked as attached
whose parent does not resolve indicates a broken internal invariant; every
operation walking upwards from it reports ErrGetParentPtr.

Mutations keep the tree consistent:

   - a node has at most one parent
   - parent and children links always agree
   - the parent relation never forms a cycle
   - leaf nodes never have children

Attaching a node which already has a parent moves it; clients do not have
to detach it first.

Walker

A Walker selects nodes of a (sub-)tree and operates on them. Walker methods
are chained, similar in concept to JQuery:

   Parent()                     // find parent for all selected nodes
   AncestorWith(predicate)      // find ancestor with a given predicate
   DescendentsWith(predicate)   // find descendents with a given predicate
   TopDown(action)              // traverse all nodes top down (breadth first)
   Filter(userfunc)             // apply a user-provided filter function

Walks are synchronous. Calling Nodes() at the end of a chain returns the
selection and the first error that occurred.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'markup.tree'.
func tracer() tracing.Trace {
	return tracing.Select("markup.tree")
}
