package dom

import (
	"errors"
	"fmt"

	"github.com/npillmayer/markup/maybe"
	"github.com/npillmayer/markup/tree"
	"golang.org/x/net/html/atom"
)

// Errors reported by tree operations on markup nodes. See package tree.
var (
	ErrGetParentPtr            = tree.ErrGetParentPtr
	ErrNotChild                = tree.ErrNotChild
	ErrSameNodeCompare         = tree.ErrSameNodeCompare
	ErrAddAncestorToDescendant = tree.ErrAddAncestorToDescendant
	ErrAddToLeaf               = tree.ErrAddToLeaf
	ErrNilNode                 = tree.ErrNilNode
)

// ErrNotMarkupNode is returned by NodeFromTreeNode for tree nodes which do
// not belong to a markup node.
var ErrNotMarkupNode = errors.New("tree node does not carry a markup node")

// Node is a node of a markup document. It is either a text node or an
// element node.
type Node struct {
	*tree.Node[*Node] // we build on top of general purpose tree
	text              string   // content of a text node
	element           *Element // nil for text nodes
}

// Element is the payload of an element node.
type Element struct {
	kind  atom.Atom           // tag of the element
	href  maybe.Maybe[string] // target of an anchor; Nothing for other kinds
	attrs AttributeSet
}

// Kind returns the tag of the element, e.g. atom.A for an anchor.
func (e *Element) Kind() atom.Atom {
	return e.kind
}

// Href returns the link target of an anchor. For other kinds of elements it
// is always Nothing.
func (e *Element) Href() maybe.Maybe[string] {
	return e.href
}

// Attributes returns the attribute set of the element.
func (e *Element) Attributes() AttributeSet {
	return e.attrs
}

func newText(content string) *Node {
	n := &Node{text: content}
	n.Node = tree.NewLeaf(n) // Payload will always reference the node itself
	return n
}

func newElement(e *Element) *Node {
	n := &Node{element: e}
	n.Node = tree.NewNode(n)
	return n
}

// NewText creates a text node. Text nodes never have children.
func NewText(content string) *Node {
	return newText(content)
}

// NewAnchor creates an anchor element. If content is present, a text node
// with this content is added as the anchor's first child.
// Nil arguments count as Nothing.
func NewAnchor(content maybe.Maybe[string], href maybe.Maybe[string]) *Node {
	b := Anchor()
	var s string
	if href != nil {
		switch m := href.Match(); m {
		case m.Just(&s):
			b = b.SetHref(s)
		case m.Nothing():
		}
	}
	if content != nil {
		switch m := content.Match(); m {
		case m.Just(&s):
			b = b.SetContent(s)
		case m.Nothing():
		}
	}
	return b.Build()
}

// NodeFromTreeNode returns the markup node a generic tree node belongs to.
func NodeFromTreeNode(tn *tree.Node[*Node]) (*Node, error) {
	if tn == nil {
		return nil, ErrNilNode
	}
	if tn.Payload == nil {
		return nil, ErrNotMarkupNode
	}
	return tn.Payload, nil
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.IsText() {
		return fmt.Sprintf("#text(%q)", n.text)
	}
	return fmt.Sprintf("<%s> #ch=%d", n.element.kind, n.ChildCount())
}

// IsText is true for text nodes.
func (n *Node) IsText() bool {
	return n != nil && n.element == nil
}

// Text returns the content of a text node. For element nodes it returns
// the empty string.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	return n.text
}

// Element returns the element payload of an element node, or nil for
// text nodes.
func (n *Node) Element() *Element {
	if n == nil {
		return nil
	}
	return n.element
}

// TagName returns the name of an element's tag, or "#text" for text nodes.
func (n *Node) TagName() string {
	if n == nil {
		return ""
	}
	if n.IsText() {
		return "#text"
	}
	return n.element.kind.String()
}

// --- Tree operations -------------------------------------------------------

// AddChild appends ch as the last child of n, detaching ch from its current
// parent if necessary.
//
// AddChild fails with ErrAddToLeaf if n is a text node, with
// ErrSameNodeCompare if ch is n, and with ErrAddAncestorToDescendant if n is
// located below ch.
func (n *Node) AddChild(ch *Node) error {
	if n == nil || ch == nil {
		return ErrNilNode
	}
	return n.Node.AddChild(ch.Node)
}

// RemoveChild detaches ch from n. It fails with ErrNotChild if ch is not a
// child of n.
func (n *Node) RemoveChild(ch *Node) error {
	if n == nil || ch == nil {
		return ErrNilNode
	}
	return n.Node.RemoveChild(ch.Node)
}

// IsAncestorOf checks if n is located above descendant. Asking a node
// about itself results in ErrSameNodeCompare.
func (n *Node) IsAncestorOf(descendant *Node) (bool, error) {
	if n == nil || descendant == nil {
		return false, ErrNilNode
	}
	return n.Node.IsAncestorOf(descendant.Node)
}

// IsDescendantOf checks if n is located below ancestor. Asking a node
// about itself results in ErrSameNodeCompare.
func (n *Node) IsDescendantOf(ancestor *Node) (bool, error) {
	if n == nil || ancestor == nil {
		return false, ErrNilNode
	}
	return n.Node.IsDescendantOf(ancestor.Node)
}

// Parent returns the parent node of n, or nil for a root.
func (n *Node) Parent() (*Node, error) {
	if n == nil {
		return nil, ErrNilNode
	}
	p, err := n.Node.Parent()
	if err != nil || p == nil {
		return nil, err
	}
	return NodeFromTreeNode(p)
}

// Children returns the children of n in order.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	tchildren := n.Node.Children()
	children := make([]*Node, 0, len(tchildren))
	for _, ch := range tchildren {
		children = append(children, ch.Payload)
	}
	return children
}

// Child returns the child at position i.
func (n *Node) Child(i int) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	ch, ok := n.Node.Child(i)
	if !ok {
		return nil, false
	}
	return ch.Payload, true
}

// IndexOfChild returns the position of ch within the children of n, or -1.
func (n *Node) IndexOfChild(ch *Node) int {
	if n == nil || ch == nil {
		return -1
	}
	return n.Node.IndexOfChild(ch.Node)
}

// Isolate detaches n from its parent, if any, and returns n.
func (n *Node) Isolate() (*Node, error) {
	if n == nil {
		return nil, ErrNilNode
	}
	_, err := n.Node.Isolate()
	return n, err
}

// DescendentsWith collects all nodes below n matching a predicate,
// in document order.
func (n *Node) DescendentsWith(predicate tree.Predicate[*Node]) ([]*Node, error) {
	if n == nil {
		return nil, ErrNilNode
	}
	tnodes, err := tree.NewWalker(n.Node).DescendentsWith(predicate).Nodes()
	if err != nil {
		return nil, err
	}
	nodes := make([]*Node, 0, len(tnodes))
	for _, tn := range tnodes {
		node, err := NodeFromTreeNode(tn)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}
