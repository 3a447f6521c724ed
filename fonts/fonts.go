/*
Package fonts collects the font declarations of xdoc documents.

Font declarations are elements with tag 'font', which may appear anywhere
in a document. They register a font face for use in styles:

    <font family="MyFont" source="/path/to/font.ttf" weight="bold" fontStyle="italic"/>

Attributes 'source' and 'family' are required, 'weight' and 'fontStyle'
default to "normal". Loading font files is not the business of this
package.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fonts

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/xdoc/dom"
)

// tracer traces with key 'xdoc.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("xdoc.fonts")
}

// ErrMissingRequiredAttribute is reported, wrapped into a *dom.AttributeError,
// for font declarations lacking a source or a family.
var ErrMissingRequiredAttribute = errors.New("missing required attribute")

// Default for font style and font weight.
const Normal = "normal"

// Descriptor describes a font face declared by a document.
type Descriptor struct {
	Family     string
	Src        string
	FontStyle  string
	FontWeight string
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s[%s/%s]@%s", d.Family, d.FontStyle, d.FontWeight, d.Src)
}

// Collect visits all font declarations of a tree in pre-order and returns
// their descriptors, in document order.
func Collect(root *dom.Element) ([]Descriptor, error) {
	var fonts []Descriptor
	err := root.Walk(func(el *dom.Element) error {
		if el.Tag != dom.FontTag {
			return nil
		}
		d, err := describe(el)
		if err != nil {
			return err
		}
		tracer().Debugf("font declaration %s", d)
		fonts = append(fonts, d)
		return nil
	})
	if err != nil {
		tracer().Errorf("cannot collect fonts: %v", err)
		return nil, err
	}
	return fonts, nil
}

func describe(el *dom.Element) (Descriptor, error) {
	src, err := required(el, "source")
	if err != nil {
		return Descriptor{}, err
	}
	family, err := required(el, "family")
	if err != nil {
		return Descriptor{}, err
	}
	return Descriptor{
		Family:     family,
		Src:        src,
		FontStyle:  optional(el, "fontStyle"),
		FontWeight: optional(el, "weight"),
	}, nil
}

func required(el *dom.Element, attr string) (string, error) {
	s, _ := el.Attrs.String(attr)
	if s == "" {
		return "", &dom.AttributeError{Err: ErrMissingRequiredAttribute, Tag: el.Tag, Attr: attr}
	}
	return s, nil
}

func optional(el *dom.Element, attr string) string {
	if s, _ := el.Attrs.String(attr); s != "" {
		return s
	}
	return Normal
}

// Hoist removes all font declarations below root from the tree and returns
// the number of elements removed. root itself is never removed.
func Hoist(root *dom.Element) int {
	removed := 0
	_ = root.Walk(func(el *dom.Element) error {
		children := el.Children[:0]
		for _, ch := range el.Children {
			if e, ok := ch.(*dom.Element); ok && e.Tag == dom.FontTag {
				removed++
				continue
			}
			children = append(children, ch)
		}
		el.Children = children
		return nil
	})
	if removed > 0 {
		tracer().Debugf("hoisted %d font declaration(s) out of the tree", removed)
	}
	return removed
}
