/*
Package domdbg implements helpers to debug a compiled document tree.

Trees may be printed as text (see Tree) or drawn as a GraphViz diagram
(see ToGraphViz and Dotty).

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


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

	"github.com/npillmayer/xdoc/dom"
	"github.com/npillmayer/xdoc/dom/style"
	"github.com/xlab/treeprint"
)

// Tree renders a compiled tree as indented text, e.g.
//
//     <document title="T">
//     └── <page>
//         └── "Hello"
//
func Tree(root *dom.Element) string {
	t := treeprint.NewWithRoot(root.String())
	addChildren(t, root)
	return t.String()
}

func addChildren(t treeprint.Tree, el *dom.Element) {
	for _, ch := range el.Children {
		switch n := ch.(type) {
		case *dom.Element:
			if len(n.Children) == 0 {
				t.AddNode(n.String())
				continue
			}
			addChildren(t.AddBranch(n.String()), n)
		case dom.Text:
			t.AddNode(fmt.Sprintf("%q", string(n)))
		}
	}
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname       string
	StyleGroups    []string
	NodeTmpl       *template.Template
	EdgeTmpl       *template.Template
	StylegroupTmpl *template.Template
	PgedgeTmpl     *template.Template
	PgpgTmpl       *template.Template
}

var defaultGroups = []string{
	style.PGDimension,
	style.PGMargins,
	style.PGPadding,
	style.PGBorder,
	style.PGDisplay,
	style.PGColor,
	style.PGText,
}

// ToGraphViz outputs a diagram for a compiled tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root element of
// the tree, a Writer, and an optional list of style property groups.
// The diagram will include all styles belonging to one of the
// property groups.
//
// If the client does not provide a list of style groups, the following
// default will be used:
//
//     - Dimension
//     - Margins
//     - Padding
//     - Border
//     - Display
//     - Color
//     - Text
//
func ToGraphViz(root *dom.Element, w io.Writer, styleGroups []string) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StylegroupTmpl = template.Must(template.New("stylegroup").Parse(styleGroupTmpl))
	gparams.PgedgeTmpl = template.Must(template.New("pgedge").Parse(pgEdgeTmpl))
	gparams.PgpgTmpl = template.Must(template.New("pgpgedge").Parse(pgpgEdgeTmpl))
	gparams.StyleGroups = styleGroups
	if styleGroups == nil {
		gparams.StyleGroups = defaultGroups
	}
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	g := &graph{w: w, params: &gparams}
	g.nodes(root)
	if g.err != nil {
		return g.err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a compiled tree and a testing.T, it
// will create a GraphViz image of the tree under `root` and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(root *dom.Element, t *testing.T) {
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
	if err := ToGraphViz(root, tmpfile, nil); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing DOM tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

// graph writes a diagram, remembering the first error.
type graph struct {
	w      io.Writer
	params *graphParamsType
	count  int
	err    error
}

type node struct {
	N    dom.Node
	Name string
}

// IsText is used by the node template.
func (n node) IsText() bool {
	_, ok := n.N.(dom.Text)
	return ok
}

// Tag is used by the node template.
func (n node) Tag() string {
	if el, ok := n.N.(*dom.Element); ok {
		return el.Tag
	}
	return "#text"
}

func (g *graph) exec(tmpl *template.Template, data any) {
	if g.err == nil {
		g.err = tmpl.Execute(g.w, data)
	}
}

func (g *graph) nodes(n dom.Node) string {
	g.count++
	name := fmt.Sprintf("node%05d", g.count)
	g.exec(g.params.NodeTmpl, node{n, name})
	el, ok := n.(*dom.Element)
	if !ok {
		return name
	}
	g.styles(el, name)
	for _, ch := range el.Children {
		chname := g.nodes(ch)
		g.exec(g.params.EdgeTmpl, edge{name, chname})
	}
	return name
}

// propertyGroup is a group of style properties of an element.
type propertyGroup struct {
	ID         string
	Name       string
	Properties []style.KeyValue
}

func (g *graph) styles(el *dom.Element, name string) {
	m, ok := el.Attrs.Style()
	if !ok {
		return
	}
	var prev *propertyGroup
	for _, groupname := range g.params.StyleGroups {
		pg := &propertyGroup{ID: fmt.Sprintf("pg_%s_%s", name, groupname), Name: groupname}
		for _, kv := range m.Properties() {
			if style.GroupNameFromPropertyKey(kv.Key) == groupname {
				pg.Properties = append(pg.Properties, kv)
			}
		}
		if len(pg.Properties) == 0 {
			continue
		}
		g.exec(g.params.StylegroupTmpl, pg)
		if prev == nil {
			g.exec(g.params.PgedgeTmpl, edge{name, pg.ID})
		} else {
			g.exec(g.params.PgpgTmpl, edge{prev.ID, pg.ID})
		}
		prev = pg
	}
}

type edge struct {
	From, To string
}

func shortText(n node) string {
	t := n.N.String()
	s := "\"\\\""
	if len(t) > 10 {
		s += t[:10] + "...\\\"\""
	} else {
		s += t + "\\\"\""
	}
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

const domNodeTmpl = `{{ if .IsText }}
{{ .Name }}	[ label={{ shortstring . }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .Tag }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const styleGroupTmpl = `{{ .ID }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ .Name }}</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .From }} -> {{ .To }} [weight=1] ;
`

const pgEdgeTmpl = `{{ .From }} -> {{ .To }} [dir=none weight=1 style="dashed"] ;
`

const pgpgEdgeTmpl = `{{ .From }} -> {{ .To }} [dir=none weight=1 style="dashed"] ;
`
