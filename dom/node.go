package dom

import (
	"fmt"
	"strings"
)

// Tags with a special meaning to the compiler.
const (
	DocumentTag = "document" // the document-level element
	StyleTag    = "style"    // style block, holding the document's stylesheet
	FontTag     = "font"     // font declaration
)

// Node is a node of a compiled document tree. It is either an *Element or a
// Text. Clients switch on the node's type:
//
//     switch n := node.(type) {
//     case *dom.Element: ...
//     case dom.Text: ...
//     }
//
type Node interface {
	isNode()
	String() string
}

// Text is a leaf of literal text. Text nodes never carry attributes or
// children.
type Text string

func (t Text) isNode() {}

func (t Text) String() string {
	return string(t)
}

// Element is a tagged container node.
type Element struct {
	Tag      string
	Attrs    Attributes
	Children []Node
}

var _ Node = &Element{}
var _ Node = Text("")

// NewElement creates an element without attributes.
func NewElement(tag string, children ...Node) *Element {
	return &Element{Tag: tag, Children: children}
}

func (e *Element) isNode() {}

// String returns the element's start tag, e.g. '<view class="x">'.
func (e *Element) String() string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(e.Tag)
	for _, key := range e.Attrs.Keys() {
		v, _ := e.Attrs.Get(key)
		fmt.Fprintf(&sb, " %s=%q", key, FormatValue(v))
	}
	sb.WriteByte('>')
	return sb.String()
}

// AddChild appends a child node.
func (e *Element) AddChild(n Node) *Element {
	e.Children = append(e.Children, n)
	return e
}

// ChildElements returns all children of e which are elements, in order.
func (e *Element) ChildElements() []*Element {
	var r []*Element
	for _, ch := range e.Children {
		if el, ok := ch.(*Element); ok {
			r = append(r, el)
		}
	}
	return r
}

// TextContent returns the concatenated text of all Text children of e.
// Text of nested elements is not included.
func (e *Element) TextContent() string {
	var sb strings.Builder
	for _, ch := range e.Children {
		if t, ok := ch.(Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String()
}

// Walk calls fn for e and every element below it, in pre-order. If fn
// returns an error, the walk stops and Walk returns that error.
func (e *Element) Walk(fn func(*Element) error) error {
	if err := fn(e); err != nil {
		return err
	}
	for _, ch := range e.Children {
		if el, ok := ch.(*Element); ok {
			if err := el.Walk(fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Count returns the number of elements and text nodes in the tree rooted
// at e, including e.
func (e *Element) Count() (elements int, texts int) {
	elements = 1
	for _, ch := range e.Children {
		switch n := ch.(type) {
		case *Element:
			ce, ct := n.Count()
			elements += ce
			texts += ct
		case Text:
			texts++
		}
	}
	return
}
