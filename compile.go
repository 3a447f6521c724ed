package xdoc

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/xdoc/dom"
	"github.com/npillmayer/xdoc/dom/style/css"
	"github.com/npillmayer/xdoc/dom/style/cssom"
	"github.com/npillmayer/xdoc/fonts"
	"github.com/npillmayer/xdoc/generic"
	"github.com/npillmayer/xdoc/generic/xmlreader"
	"github.com/npillmayer/xdoc/schema"
)

// ErrMultipleRootElements is returned for documents without exactly one
// top-level element.
var ErrMultipleRootElements = errors.New("document must have exactly one root element")

// Document is a compiled document, ready to be handed to a rendering engine.
type Document struct {
	Styles cssom.Sheet        // the document's stylesheet
	Fonts  []fonts.Descriptor // font declarations, in document order
	Root   *dom.Element       // the root element
}

// CompileString compiles a document from a string holding XML.
func CompileString(s string, opts ...Option) (*Document, error) {
	return CompileXML(strings.NewReader(s), opts...)
}

// CompileXML reads an XML document and compiles it.
func CompileXML(r io.Reader, opts ...Option) (*Document, error) {
	o := collect(opts)
	top, err := xmlreader.Read(r, xmlreader.Permissive(o.permissive), xmlreader.MaxDepth(o.maxDepth))
	if err != nil {
		if errors.Is(err, xmlreader.ErrTooDeep) {
			err = fmt.Errorf("%w: %v", dom.ErrNestingTooDeep, err)
		}
		return nil, err
	}
	return Compile(top, opts...)
}

// Compile compiles a document from the generic tree produced by a generic
// XML reader. top has to hold exactly one entry, the root element.
//
// Any failure aborts the compilation; no partial document is returned.
func Compile(top *generic.Object, opts ...Option) (*Document, error) {
	o := collect(opts)
	tag, value, err := rootOf(top)
	if err != nil {
		tracer().Errorf("cannot compile: %v", err)
		return nil, err
	}
	tracer().Debugf("compiling document with root <%s>", tag)
	sheet, err := cssom.Extract(value, tag, o.maxDepth)
	if err != nil {
		return nil, err
	}
	root, err := dom.Build(value, tag, o.maxDepth)
	if err != nil {
		return nil, err
	}
	css.ApplyClassStyles(root, sheet)
	if err := schema.Validate(root); err != nil {
		return nil, err
	}
	fontlist, err := fonts.Collect(root)
	if err != nil {
		return nil, err
	}
	fonts.Hoist(root)
	tracer().Debugf("compiled document: %d class(es), %d font(s)", len(sheet), len(fontlist))
	return &Document{
		Styles: sheet,
		Fonts:  fontlist,
		Root:   root,
	}, nil
}

func rootOf(top *generic.Object) (string, any, error) {
	if top.Len() != 1 {
		return "", nil, fmt.Errorf("%w, found %d top-level tags", ErrMultipleRootElements, top.Len())
	}
	entry := top.Entries()[0]
	if arr, ok := entry.Value.([]any); ok {
		return "", nil, fmt.Errorf("%w, found %d <%s> elements", ErrMultipleRootElements, len(arr), entry.Key)
	}
	if entry.IsAttribute() || entry.IsText() {
		return "", nil, fmt.Errorf("%w, found %q", ErrMultipleRootElements, entry.Key)
	}
	return entry.Key, entry.Value, nil
}
