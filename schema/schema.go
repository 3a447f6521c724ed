/*
Package schema validates the attributes of compiled xdoc documents.

The schema is a fixed table, mapping a tag to the attributes allowed for
it. Every allowed attribute is paired with a rule, which decides if a value
is acceptable for the attribute. The table covers the document element,
pages, the layout elements (view, text, image, link), fonts, style blocks
and the family of vector shapes. Vector shapes share a set of presentation
attributes; namespaced attribute names of vector shapes (e.g.,
'xmlns:xlink') are looked up with the namespace colon removed.

Tags not in the table are passed through unchecked, but their children are
validated. This allows for forward compatible container elements.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package schema

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/xdoc/dom"
	"go.uber.org/multierr"
)

// tracer traces with key 'xdoc.schema'.
func tracer() tracing.Trace {
	return tracing.Select("xdoc.schema")
}

// Errors reported by Validate, wrapped into a *dom.AttributeError.
var (
	ErrUnrecognizedAttribute = errors.New("unrecognized attribute")
	ErrInvalidAttributeValue = errors.New("invalid attribute value")
)

// Validate checks the attributes of every element of a tree against the
// schema, in pre-order. It stops at the first violation found and returns
// a *dom.AttributeError, wrapping either ErrUnrecognizedAttribute or
// ErrInvalidAttributeValue.
func Validate(root *dom.Element) error {
	checked := 0
	err := root.Walk(func(el *dom.Element) error {
		ts, ok := tagSchemas[el.Tag]
		if !ok {
			return nil
		}
		checked++
		return ts.check(el)
	})
	if err != nil {
		tracer().Errorf("validation failed: %v", err)
		return err
	}
	tracer().Debugf("validated attributes of %d element(s)", checked)
	return nil
}

// ValidateAll checks the attributes of every element of a tree against the
// schema, without stopping at the first violation. It returns all violations
// found, in pre-order, combined into a single error. Use multierr.Errors to
// get at the individual *dom.AttributeError values.
func ValidateAll(root *dom.Element) error {
	var errs error
	_ = root.Walk(func(el *dom.Element) error {
		if ts, ok := tagSchemas[el.Tag]; ok {
			for _, name := range el.Attrs.Keys() {
				errs = multierr.Append(errs, ts.checkAttribute(el, name))
			}
		}
		return nil
	})
	if errs != nil {
		tracer().Infof("found %d schema violation(s)", len(multierr.Errors(errs)))
	}
	return errs
}

// IsKnownTag is a predicate: does the schema contain rules for a tag?
func IsKnownTag(tag string) bool {
	_, ok := tagSchemas[tag]
	return ok
}

// Attributes returns the names of the attributes allowed for a tag, in
// lexical order. Unknown tags return nil.
func Attributes(tag string) []string {
	ts, ok := tagSchemas[tag]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(ts.attrs))
	for name := range ts.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// --- Rules -----------------------------------------------------------------

// rule decides if a value is acceptable for an attribute.
type rule struct {
	info   string
	accept func(v any) bool
}

// tagSchema holds the rules for the attributes of a tag.
type tagSchema struct {
	attrs      map[string]rule
	namespaced bool // strip namespace colons from attribute names
}

func (ts tagSchema) check(el *dom.Element) error {
	for _, name := range el.Attrs.Keys() {
		if err := ts.checkAttribute(el, name); err != nil {
			return err
		}
	}
	return nil
}

func (ts tagSchema) checkAttribute(el *dom.Element, name string) error {
	value, _ := el.Attrs.Get(name)
	key := name
	if ts.namespaced {
		key = strings.ReplaceAll(name, ":", "")
	}
	r, ok := ts.attrs[key]
	if !ok {
		return &dom.AttributeError{Err: ErrUnrecognizedAttribute, Tag: el.Tag, Attr: name, Value: value}
	}
	if !r.accept(value) {
		return &dom.AttributeError{
			Err:   fmt.Errorf("%w, expected %s", ErrInvalidAttributeValue, r.info),
			Tag:   el.Tag,
			Attr:  name,
			Value: value,
		}
	}
	return nil
}
