package dom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/xdoc/dom/style"
	"github.com/npillmayer/xdoc/generic"
)

// Build normalizes the generic value v of an element with tag into a
// compiled element.
//
// Attribute entries become attributes. A string value of attribute 'style'
// is parsed into a style.Map, a string value of attribute 'class' is split
// into class names at white space; non-string scalars of these two
// attributes are formatted to strings first. Other attribute values keep
// their type. Text entries become Text children. Child entries become child
// elements, in order; a scalar child value yields an element with a single
// Text child, an array value yields one element per item.
//
// Style blocks are always built as empty elements, font declarations keep
// their attributes but never get children.
//
// Build performs no validation besides the parsing of inline styles. If
// maxDepth > 0, elements nested deeper than maxDepth (the root having depth
// 1) result in an error wrapping ErrNestingTooDeep.
func Build(v any, tag string, maxDepth int) (*Element, error) {
	b := builder{maxDepth: maxDepth}
	el, err := b.element(tag, v, 1)
	if err != nil {
		tracer().Errorf("cannot build element tree: %v", err)
		return nil, err
	}
	if tracer().GetTraceLevel() >= tracing.LevelDebug {
		elems, texts := el.Count()
		tracer().Debugf("built tree <%s> with %d elements and %d text nodes", tag, elems, texts)
	}
	return el, nil
}

type builder struct {
	maxDepth int
}

func (b builder) element(tag string, v any, depth int) (*Element, error) {
	if b.maxDepth > 0 && depth > b.maxDepth {
		return nil, fmt.Errorf("%w: <%s> at depth %d", ErrNestingTooDeep, tag, depth)
	}
	el := NewElement(tag)
	if tag == StyleTag {
		return el, nil
	}
	obj, ok := v.(*generic.Object)
	if !ok {
		if tag != FontTag {
			el.AddChild(Text(generic.Format(v)))
		}
		return el, nil
	}
	for _, entry := range obj.Entries() {
		switch {
		case entry.IsAttribute():
			name := entry.AttributeName()
			value, err := normalizeAttribute(tag, name, entry.Value)
			if err != nil {
				return nil, err
			}
			el.Attrs.Set(name, value)
		case entry.IsText():
			if tag != FontTag {
				el.AddChild(Text(generic.Format(entry.Value)))
			}
		default:
			if tag == FontTag {
				continue
			}
			if err := b.children(el, entry.Key, entry.Value, depth+1); err != nil {
				return nil, err
			}
		}
	}
	return el, nil
}

// children appends elements for a child entry to parent. Arrays expand to
// one element per item.
func (b builder) children(parent *Element, tag string, v any, depth int) error {
	if arr, ok := v.([]any); ok {
		for _, item := range arr {
			if err := b.children(parent, tag, item, depth); err != nil {
				return err
			}
		}
		return nil
	}
	ch, err := b.element(tag, v, depth)
	if err != nil {
		return err
	}
	parent.AddChild(ch)
	return nil
}

func normalizeAttribute(tag, name string, v any) (any, error) {
	switch name {
	case StyleAttr:
		m, err := style.Parse(generic.Format(v))
		if err != nil {
			return nil, &AttributeError{Err: err, Tag: tag, Attr: name, Value: v}
		}
		return m, nil
	case ClassAttr:
		classes := strings.Fields(generic.Format(v))
		if classes == nil {
			classes = []string{}
		}
		return classes, nil
	}
	return v, nil
}
