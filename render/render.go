/*
Package render connects compiled xdoc documents to a rendering engine.

A rendering engine provides a visual primitive for every tag it supports.
Renderer walks a compiled tree and asks the engine's components to build
their primitives bottom-up. Style blocks are skipped, as their rules have
already been applied to the elements' styles; for the same reason, class
attributes are not passed on. Tags without a component are an error.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package render

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/xdoc/dom"
)

// tracer traces with key 'xdoc.render'.
func tracer() tracing.Trace {
	return tracing.Select("xdoc.render")
}

// ErrUnknownTag is returned for elements without a component.
var ErrUnknownTag = errors.New("unknown tag")

// Props are the properties passed to a component: all attributes of an
// element except 'class'. Property 'style' is a style.Map.
type Props map[string]any

// Component builds the visual primitive for an element, given the
// element's properties and the primitives of its children.
type Component[T any] func(tag string, props Props, children []T) (T, error)

// Renderer builds visual primitives of type T for compiled trees.
type Renderer[T any] struct {
	Components map[string]Component[T] // components by tag
	Text       func(string) T          // builds a primitive for literal text
}

// Build builds the primitive for the tree rooted at root. Empty text is
// dropped.
func (r Renderer[T]) Build(root *dom.Element) (T, error) {
	var zero T
	if root.Tag == dom.StyleTag {
		return zero, fmt.Errorf("%w: style block cannot be rendered as root", ErrUnknownTag)
	}
	p, _, err := r.element(root)
	if err != nil {
		tracer().Errorf("cannot render document: %v", err)
		return zero, err
	}
	return p, nil
}

func (r Renderer[T]) element(el *dom.Element) (T, bool, error) {
	var zero T
	if el.Tag == dom.StyleTag {
		return zero, false, nil
	}
	component, ok := r.Components[el.Tag]
	if !ok {
		return zero, false, fmt.Errorf("%w: <%s>", ErrUnknownTag, el.Tag)
	}
	props := make(Props, el.Attrs.Len())
	for _, key := range el.Attrs.Keys() {
		if key == dom.ClassAttr {
			continue
		}
		props[key], _ = el.Attrs.Get(key)
	}
	children := make([]T, 0, len(el.Children))
	for _, ch := range el.Children {
		switch n := ch.(type) {
		case *dom.Element:
			p, ok, err := r.element(n)
			if err != nil {
				return zero, false, err
			}
			if ok {
				children = append(children, p)
			}
		case dom.Text:
			if n != "" && r.Text != nil {
				children = append(children, r.Text(string(n)))
			}
		}
	}
	p, err := component(el.Tag, props, children)
	if err != nil {
		return zero, false, fmt.Errorf("<%s>: %w", el.Tag, err)
	}
	return p, true, nil
}
