/*
Package w3cdom defines an interface type for W3C Document Object Models.

Only the read-only navigation part of the W3C model is covered. Markup
trees are changed through package dom, never through these interfaces.

See also https://www.w3schools.com/XML/dom_intro.asp

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package w3cdom

import (
	"golang.org/x/net/html"
)

// Node represents W3C-type Node
type Node interface {
	NodeType() html.NodeType      // type of the node (ElementNode or TextNode)
	NodeName() string             // tag name for elements, "#text" for text
	NodeValue() string            // content for text, empty for elements
	HasAttributes() bool          // check for existence of attributes
	ParentNode() Node             // get the parent node, if any
	HasChildNodes() bool          // check for existence of sub-nodes
	ChildNodes() NodeList         // get a list of all children-nodes
	Children() NodeList           // get a list of element child-nodes
	FirstChild() Node             // get the first children-node
	NextSibling() Node            // get the Node's next sibling or nil if last
	Attributes() NamedNodeMap     // get all attributes of a node
	TextContent() (string, error) // get text from node and all descendents
}

// NodeList represents W3C-type NodeList
type NodeList interface {
	Length() int
	Item(int) Node
	String() string
}

// Attr represents W3C-type Attr
type Attr interface {
	Namespace() string
	Key() string
	Value() string
}

// NamedNodeMap represents w3C-type NamedNodeMap
type NamedNodeMap interface {
	Length() int
	Item(int) Attr
	GetNamedItem(string) Attr
}
