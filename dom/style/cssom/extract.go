package cssom

import (
	"fmt"

	"github.com/npillmayer/xdoc/dom"
	"github.com/npillmayer/xdoc/generic"
)

// Extract visits every element of a generic tree, including repeated tags,
// and collects the rules of all style blocks into one stylesheet. v is the
// generic value of the root element and tag its tag.
//
// Extract reads the generic tree only; it has to run before normalization,
// which discards the content of style blocks. If maxDepth > 0, elements
// nested deeper than maxDepth result in an error wrapping
// dom.ErrNestingTooDeep.
func Extract(v any, tag string, maxDepth int) (Sheet, error) {
	x := extractor{sheet: NewSheet(), maxDepth: maxDepth}
	if err := x.visit(tag, v, 1); err != nil {
		tracer().Errorf("cannot extract stylesheet: %v", err)
		return nil, err
	}
	tracer().Debugf("extracted %d style block(s) with %d class(es)", x.blocks, len(x.sheet))
	return x.sheet, nil
}

type extractor struct {
	sheet    Sheet
	maxDepth int
	blocks   int
}

func (x *extractor) visit(tag string, v any, depth int) error {
	if arr, ok := v.([]any); ok {
		for _, item := range arr {
			if err := x.visit(tag, item, depth); err != nil {
				return err
			}
		}
		return nil
	}
	if x.maxDepth > 0 && depth > x.maxDepth {
		return fmt.Errorf("%w: <%s> at depth %d", dom.ErrNestingTooDeep, tag, depth)
	}
	if tag == dom.StyleTag {
		if err := x.styleBlock(v); err != nil {
			return err
		}
	}
	obj, ok := v.(*generic.Object)
	if !ok {
		return nil
	}
	for _, entry := range obj.Entries() {
		if entry.IsAttribute() || entry.IsText() {
			continue
		}
		if err := x.visit(entry.Key, entry.Value, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (x *extractor) styleBlock(v any) error {
	var text string
	if obj, ok := v.(*generic.Object); ok {
		t, _ := obj.Get(generic.TextKey)
		text = generic.Format(t)
	} else {
		text = generic.Format(v)
	}
	x.blocks++
	sheet, err := ParseRules(text)
	if err != nil {
		return err
	}
	x.sheet.Merge(sheet)
	return nil
}
