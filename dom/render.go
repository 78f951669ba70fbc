package dom

import (
	"io"
	"strings"

	"golang.org/x/net/html/atom"
)

// Render returns the markup for the (sub-)tree starting at n.
// Text nodes render as their content, element nodes as an opening tag with
// attributes, the rendered children in order, and a closing tag.
//
// Rendering does not modify the tree and never fails.
func (n *Node) Render() string {
	var sb strings.Builder
	n.render(&sb)
	return sb.String()
}

// RenderTo writes the markup for the (sub-)tree starting at n to w.
// It returns errors of the writer only.
func (n *Node) RenderTo(w io.Writer) error {
	_, err := io.WriteString(w, n.Render())
	return err
}

func (n *Node) render(sb *strings.Builder) {
	if n == nil {
		return
	}
	if n.IsText() {
		sb.WriteString(n.text)
		return
	}
	n.element.openTag(sb)
	for _, ch := range n.Children() {
		ch.render(sb)
	}
	n.element.closeTag(sb)
}

func (e *Element) openTag(sb *strings.Builder) {
	sb.WriteByte('<')
	sb.WriteString(e.kind.String())
	switch e.kind {
	case atom.A:
		var url string
		switch m := e.href.Match(); m {
		case m.Just(&url):
			writeAttr(sb, "href", url)
		case m.Nothing():
		}
	}
	e.attrs.render(sb)
	sb.WriteByte('>')
}

func (e *Element) closeTag(sb *strings.Builder) {
	sb.WriteString("</")
	sb.WriteString(e.kind.String())
	sb.WriteByte('>')
}
