package dom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/markup/dom/w3cdom"
	"golang.org/x/net/html"
)

// W3CNode is a read-only view of a markup node, following the W3C
// document object model.
type W3CNode struct {
	node *Node
}

var _ w3cdom.Node = &W3CNode{}

// W3C returns a W3C-style view of n.
func (n *Node) W3C() *W3CNode {
	if n == nil {
		return nil
	}
	return &W3CNode{node: n}
}

// Node returns the markup node behind the view.
func (w *W3CNode) Node() *Node {
	if w == nil {
		return nil
	}
	return w.node
}

// NodeType returns html.TextNode or html.ElementNode.
func (w *W3CNode) NodeType() html.NodeType {
	if w.node.IsText() {
		return html.TextNode
	}
	return html.ElementNode
}

// NodeName returns the tag name of an element, or "#text".
func (w *W3CNode) NodeName() string {
	return w.node.TagName()
}

// NodeValue returns the content of a text node and the empty string for
// elements.
func (w *W3CNode) NodeValue() string {
	return w.node.Text()
}

// HasAttributes is part of interface w3cdom.Node.
func (w *W3CNode) HasAttributes() bool {
	return w.Attributes().Length() > 0
}

// ParentNode is part of interface w3cdom.Node.
// A parent which cannot be resolved is reported as nil.
func (w *W3CNode) ParentNode() w3cdom.Node {
	p, err := w.node.Parent()
	if err != nil {
		tracer().Errorf("cannot get parent of %s: %v", w.node, err)
		return nil
	}
	if p == nil {
		return nil
	}
	return p.W3C()
}

// HasChildNodes is part of interface w3cdom.Node.
func (w *W3CNode) HasChildNodes() bool {
	return w.node.ChildCount() > 0
}

// ChildNodes is part of interface w3cdom.Node.
func (w *W3CNode) ChildNodes() w3cdom.NodeList {
	children := w.node.Children()
	list := make(nodeList, len(children))
	for i, ch := range children {
		list[i] = ch.W3C()
	}
	return list
}

// Children is part of interface w3cdom.Node. It returns element children
// only.
func (w *W3CNode) Children() w3cdom.NodeList {
	var list nodeList
	for _, ch := range w.node.Children() {
		if !ch.IsText() {
			list = append(list, ch.W3C())
		}
	}
	return list
}

// FirstChild is part of interface w3cdom.Node.
func (w *W3CNode) FirstChild() w3cdom.Node {
	if ch, ok := w.node.Child(0); ok {
		return ch.W3C()
	}
	return nil
}

// NextSibling is part of interface w3cdom.Node.
func (w *W3CNode) NextSibling() w3cdom.Node {
	p, err := w.node.Parent()
	if err != nil || p == nil {
		return nil
	}
	i := p.IndexOfChild(w.node)
	if ch, ok := p.Child(i + 1); ok && i >= 0 {
		return ch.W3C()
	}
	return nil
}

// Attributes is part of interface w3cdom.Node. Attributes are listed in the
// order they are rendered.
func (w *W3CNode) Attributes() w3cdom.NamedNodeMap {
	e := w.node.Element()
	if e == nil {
		return attrMap(nil)
	}
	var attrs attrMap
	if href, ok := e.Href().Get(); ok {
		attrs = append(attrs, attr{key: "href", value: href})
	}
	return append(attrs, e.attrs.attributes()...)
}

// TextContent is part of interface w3cdom.Node. It concatenates the
// content of all text nodes in the subtree, in document order.
func (w *W3CNode) TextContent() (string, error) {
	if w.node.IsText() {
		return w.node.Text(), nil
	}
	texts, err := w.node.DescendentsWith(NodeIsText)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, t := range texts {
		sb.WriteString(t.Text())
	}
	return sb.String(), nil
}

// --- Node lists ------------------------------------------------------------

type nodeList []*W3CNode

func (l nodeList) Length() int {
	return len(l)
}

func (l nodeList) Item(i int) w3cdom.Node {
	if i < 0 || i >= len(l) {
		return nil
	}
	return l[i]
}

func (l nodeList) String() string {
	names := make([]string, len(l))
	for i, n := range l {
		names[i] = n.NodeName()
	}
	return fmt.Sprintf("[%s]", strings.Join(names, " "))
}

// --- Attributes ------------------------------------------------------------

type attr struct {
	key, value string
}

func (a attr) Namespace() string { return "" }
func (a attr) Key() string       { return a.key }
func (a attr) Value() string     { return a.value }

type attrMap []attr

func (m attrMap) Length() int {
	return len(m)
}

func (m attrMap) Item(i int) w3cdom.Attr {
	if i < 0 || i >= len(m) {
		return nil
	}
	return m[i]
}

func (m attrMap) GetNamedItem(key string) w3cdom.Attr {
	for _, a := range m {
		if a.key == key {
			return a
		}
	}
	return nil
}
