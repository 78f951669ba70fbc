/*
Package domdbg implements helpers to debug a markup tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/markup/dom"
	"github.com/npillmayer/markup/dom/w3cdom"
	"github.com/npillmayer/schuko/tracing"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// tracer traces with key 'markup.domdbg'.
func tracer() tracing.Trace {
	return tracing.Select("markup.domdbg")
}

// PrintTree returns an indented drawing of the tree starting at n, one line
// per node. Elements are listed with their attributes.
func PrintTree(n *dom.Node) string {
	if n == nil {
		return "<nil>\n"
	}
	printer := tp.New()
	printNode(printer, n)
	return printer.String()
}

func printNode(printer tp.Tree, n *dom.Node) {
	if n.ChildCount() == 0 {
		printer.AddNode(label(n.W3C()))
		return
	}
	branch := printer.AddBranch(label(n.W3C()))
	for _, ch := range n.Children() {
		printNode(branch, ch)
	}
}

func label(n *dom.W3CNode) string {
	if n.NodeType() == html.ElementNode {
		var sb strings.Builder
		sb.WriteString(n.NodeName())
		attrs := n.Attributes()
		for i := 0; i < attrs.Length(); i++ {
			a := attrs.Item(i)
			fmt.Fprintf(&sb, " %s=%q", a.Key(), a.Value())
		}
		return sb.String()
	}
	return fmt.Sprintf("#text %q", n.NodeValue())
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
	AttrsTmpl *template.Template
	AttrEdge  *template.Template
}

// ToGraphViz outputs a diagram for a markup tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root node of
// the tree and a Writer.
// Elements with attributes get an attached record listing the attributes.
func ToGraphViz(doc *dom.Node, w io.Writer) {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		panic(err)
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl, _ = template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domNodeTmpl)
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.AttrsTmpl = template.Must(template.New("attrs").Funcs(
		template.FuncMap{
			"esc": html.EscapeString,
		}).Parse(attrsTmpl))
	gparams.AttrEdge = template.Must(template.New("attredge").Parse(attrEdgeTmpl))
	err = tmpl.Execute(w, gparams)
	if err != nil {
		panic(err)
	}
	if doc != nil {
		dict := make(map[*dom.Node]string, 64)
		nodes(doc, w, dict, &gparams)
	}
	w.Write([]byte("}\n"))
}

// Dotty is a helper for testing. Given a markup node and a testing.T, it will
// create a Graphiviz image of the tree under `doc` and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(doc *dom.Node, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	ToGraphViz(doc, tmpfile)
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing DOM tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	N    *dom.W3CNode
	Name string
}

func nodes(n *dom.Node, w io.Writer, dict map[*dom.Node]string, gparams *graphParamsType) {
	domNode(n, w, dict, gparams)
	for _, ch := range n.Children() {
		nodes(ch, w, dict, gparams)
		domEdge(n, ch, w, dict, gparams)
	}
}

func domNode(n *dom.Node, w io.Writer, dict map[*dom.Node]string, gparams *graphParamsType) {
	name := dict[n]
	if name == "" {
		l := len(dict) + 1
		name = fmt.Sprintf("node%05d", l)
		dict[n] = name
	}
	if err := gparams.NodeTmpl.Execute(w, &node{n.W3C(), name}); err != nil {
		panic(err)
	}
	domAttributes(n.W3C(), name, w, gparams)
}

type attrsRecord struct {
	Name  string
	Attrs []w3cdom.Attr
}

func domAttributes(n *dom.W3CNode, name string, w io.Writer, gparams *graphParamsType) {
	if !n.HasAttributes() {
		return
	}
	rec := attrsRecord{Name: name}
	attrs := n.Attributes()
	for i := 0; i < attrs.Length(); i++ {
		rec.Attrs = append(rec.Attrs, attrs.Item(i))
	}
	tracer().Debugf("node %s has %d attributes", name, len(rec.Attrs))
	if err := gparams.AttrsTmpl.Execute(w, rec); err != nil {
		panic(err)
	}
	if err := gparams.AttrEdge.Execute(w, rec); err != nil {
		panic(err)
	}
}

type edge struct {
	N1, N2 node
}

func domEdge(n1 *dom.Node, n2 *dom.Node, w io.Writer, dict map[*dom.Node]string,
	gparams *graphParamsType) {
	//
	name1 := dict[n1]
	name2 := dict[n2]
	e := edge{node{n1.W3C(), name1}, node{n2.W3C(), name2}}
	if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
		panic(err)
	}
}

// shortText returns a DOT string literal for a text node, quoting at most
// 10 runes of its text.
func shortText(n *dom.W3CNode) string {
	text := []rune(n.NodeValue())
	suffix := ""
	if len(text) > 10 {
		text, suffix = text[:10], "..."
	}
	s := strings.Replace(string(text), `"`, `\"`, -1)
	s = "\"\\\"" + s + suffix + "\\\"\""
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if eq .N.NodeName "#text" }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .N.NodeName }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const attrsTmpl = `{{ .Name }}_attrs [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">attributes</font></td></tr>
      {{ range .Attrs }}
      <tr><td align="right">{{ esc .Key }}:</td><td>{{ esc .Value }}</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const attrEdgeTmpl = `{{ .Name }} -> {{ .Name }}_attrs [dir=none weight=1 style="dashed"] ;
`
