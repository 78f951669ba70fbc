package dom

import (
	"maps"
	"slices"

	"github.com/npillmayer/markup/maybe"
	"golang.org/x/net/html/atom"
)

// Builder collects the configuration of an element node. Every setter
// returns a new Builder and leaves the receiver untouched, so partially
// configured builders may be shared:
//
//	button := dom.Anchor().AddClass("button")
//	home := button.SetHref("/").SetContent("Home").Build()
//	about := button.SetHref("/about").SetContent("About").Build()
//
// Builders never fail. Settings which do not apply to the kind of element,
// like a link target for a div, are ignored. The zero value builds span
// elements.
type Builder struct {
	kind    atom.Atom
	class   []string
	id      maybe.Maybe[string]
	data    map[string]string
	href    maybe.Maybe[string]
	content maybe.Maybe[string]
}

// NewBuilder creates a builder for an element of the given kind.
func NewBuilder(kind atom.Atom) Builder {
	return Builder{
		kind:    kind,
		id:      maybe.Nothing[string](),
		href:    maybe.Nothing[string](),
		content: maybe.Nothing[string](),
	}
}

// Anchor creates a builder for an anchor element.
func Anchor() Builder { return NewBuilder(atom.A) }

// Div creates a builder for a div element.
func Div() Builder { return NewBuilder(atom.Div) }

// Span creates a builder for a span element.
func Span() Builder { return NewBuilder(atom.Span) }

// Paragraph creates a builder for a paragraph element.
func Paragraph() Builder { return NewBuilder(atom.P) }

// AddClass appends a class to the class list. Duplicates are kept.
func (b Builder) AddClass(name string) Builder {
	b.class = append(slices.Clip(b.class), name)
	return b
}

// SetID sets the identifier, replacing an earlier one.
func (b Builder) SetID(id string) Builder {
	b.id = maybe.Just(id)
	return b
}

// AddDataAttr sets the data attribute data-<key> to value, replacing an
// earlier value for key.
func (b Builder) AddDataAttr(key, value string) Builder {
	data := maps.Clone(b.data)
	if data == nil {
		data = make(map[string]string)
	}
	data[key] = value
	b.data = data
	return b
}

// SetHref sets the link target of an anchor.
func (b Builder) SetHref(url string) Builder {
	b.href = maybe.Just(url)
	return b
}

// SetContent configures a text node to be created as the first child of the
// element on Build.
func (b Builder) SetContent(text string) Builder {
	b.content = maybe.Just(text)
	return b
}

// Build creates the element node. The attribute set of the node is fixed
// from now on.
func (b Builder) Build() *Node {
	if b.kind == 0 {
		b.kind = atom.Span
	}
	e := &Element{
		kind: b.kind,
		href: maybe.Nothing[string](),
		attrs: AttributeSet{
			class: slices.Clone(b.class),
			id:    b.id,
			data:  maps.Clone(b.data),
		},
	}
	if b.kind == atom.A && b.href != nil {
		e.href = b.href
	}
	n := newElement(e)
	var text string
	if b.content != nil {
		switch m := b.content.Match(); m {
		case m.Just(&text):
			if err := n.AddChild(newText(text)); err != nil {
				tracer().Errorf("cannot add content to new %s element: %v", b.kind, err)
			}
		case m.Nothing():
		}
	}
	tracer().Debugf("built element %s", n)
	return n
}
