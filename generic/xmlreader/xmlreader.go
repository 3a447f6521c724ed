/*
Package xmlreader reads XML documents into generic trees.

The reader knows nothing about any XML dialect. It follows the conventions
of common XML-to-object readers: attributes are stored with the reserved
attribute prefix, character content with the reserved text key, and child
elements under their tag name, with repeated tags grouped into arrays.
Attribute values and text content are converted to numbers (and, for
attributes, booleans) where they have the canonical form of one.

Parsing is done by github.com/beevik/etree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package xmlreader

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/xdoc/generic"
)

// tracer traces with key 'xdoc.reader'.
func tracer() tracing.Trace {
	return tracing.Select("xdoc.reader")
}

// ErrTooDeep is returned for documents nesting elements deeper than
// allowed by option MaxDepth.
var ErrTooDeep = errors.New("xmlreader: element nesting too deep")

type settings struct {
	permissive bool
	maxDepth   int
}

// Option is a type to configure the reader.
type Option func(*settings)

// Permissive lets the reader accept common mistakes in the input, most
// notably attributes without a value. Such an attribute is read with its
// own name as its value, e.g. '<page wrap>' is read as '<page wrap="wrap">'.
func Permissive(b bool) Option {
	return func(s *settings) {
		s.permissive = b
	}
}

// MaxDepth limits the nesting depth of elements. n ≤ 0 means unlimited.
func MaxDepth(n int) Option {
	return func(s *settings) {
		s.maxDepth = n
	}
}

// ReadString reads an XML document from a string.
func ReadString(s string, opts ...Option) (*generic.Object, error) {
	return Read(strings.NewReader(s), opts...)
}

// Read reads an XML document and returns its generic tree. The returned
// object holds one entry for every distinct top-level tag; well-formed
// documents therefore return an object with exactly one entry.
func Read(r io.Reader, opts ...Option) (*generic.Object, error) {
	s := settings{}
	for _, opt := range opts {
		opt(&s)
	}
	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = s.permissive
	if _, err := doc.ReadFrom(r); err != nil {
		tracer().Errorf("cannot read XML: %v", err)
		return nil, fmt.Errorf("xmlreader: %w", err)
	}
	top := &generic.Object{}
	for _, el := range doc.ChildElements() {
		v, err := convert(el, 1, &s)
		if err != nil {
			return nil, err
		}
		top.Append(el.FullTag(), v)
	}
	tracer().Debugf("read XML document with %d top-level tag(s)", top.Len())
	return top, nil
}

func convert(el *etree.Element, depth int, s *settings) (any, error) {
	if s.maxDepth > 0 && depth > s.maxDepth {
		return nil, fmt.Errorf("%w: <%s> at depth %d", ErrTooDeep, el.FullTag(), depth)
	}
	var sb strings.Builder
	for _, tok := range el.Child {
		if cd, ok := tok.(*etree.CharData); ok {
			sb.WriteString(cd.Data)
		}
	}
	content := strings.TrimSpace(sb.String())
	children := el.ChildElements()
	if len(el.Attr) == 0 && len(children) == 0 {
		return generic.Infer(content, false), nil
	}
	obj := &generic.Object{}
	for _, a := range el.Attr {
		obj.Set(generic.AttrPrefix+a.FullKey(), attrValue(a))
	}
	if content != "" {
		obj.Set(generic.TextKey, generic.Infer(content, false))
	}
	for _, ch := range children {
		v, err := convert(ch, depth+1, s)
		if err != nil {
			return nil, err
		}
		obj.Append(ch.FullTag(), v)
	}
	return obj, nil
}

func attrValue(a etree.Attr) any {
	return generic.Infer(a.Value, true)
}
