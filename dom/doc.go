/*
Package dom builds markup documents in memory and renders them to text.

Status

Early draft—API may change frequently. Please stay patient.

Overview

A document is a tree of nodes. A node is either a text node, carrying a
string and never having children, or an element node of a certain kind
(anchor, div, span, paragraph). Element nodes carry an attribute set of
classes, an optional identifier and data attributes; anchors carry an
optional link target in addition.

Elements are created with a Builder:

   link := dom.Anchor().SetHref("/page1").SetID("id_1").
       AddClass("class1").AddClass("class2").Build()

and connected with AddChild. Render produces the markup of a (sub-)tree:

   <a href="/page1" class="class1 class2 " id="id_1"></a>

Rendering does not escape anything and does not validate attribute values.

Tree Implementation

We implement markup nodes on top of a general purpose tree type
(package tree), which takes care of keeping parent and children links
consistent and free of cycles.

In a fully object oriented programming language we would subclass this
tree type for every type of node, but in Go we resort to composition, thus
including a generic tree node in every markup node. The tree node's payload
always references the enclosing markup node, so clients can get from one to
the other (see NodeFromTreeNode).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'markup.dom'
func tracer() tracing.Trace {
	return tracing.Select("markup.dom")
}
