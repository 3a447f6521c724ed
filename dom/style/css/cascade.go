package css

import (
	"github.com/npillmayer/xdoc/dom"
	"github.com/npillmayer/xdoc/dom/style"
	"github.com/npillmayer/xdoc/dom/style/cssom"
)

// ApplyClassStyles walks the tree rooted at root and merges the class styles
// of every element onto the element's style attribute, in place.
//
// For each element, the styles of its classes are combined in class-list
// order, later classes winning on conflict (see ClassStyle). Class names
// without a rule in sheet are ignored. The combined style is then merged
// onto the element's inline style, where class properties overwrite inline
// properties of the same name. If the combined style is empty, the style
// attribute is left untouched, i.e., an absent style attribute stays absent.
func ApplyClassStyles(root *dom.Element, sheet cssom.Sheet) {
	styled := 0
	_ = root.Walk(func(el *dom.Element) error {
		classStyle := ClassStyle(el.Attrs.Classes(), sheet)
		if len(classStyle) == 0 {
			return nil
		}
		inline, _ := el.Attrs.Style()
		el.Attrs.Set(dom.StyleAttr, inline.Merge(classStyle))
		styled++
		return nil
	})
	tracer().Debugf("applied class styles to %d element(s)", styled)
}

// ClassStyle combines the styles of a list of classes. Properties of later
// classes overwrite properties of earlier ones. The result is never shared
// with sheet.
func ClassStyle(classes []string, sheet cssom.Sheet) style.Map {
	var combined style.Map
	for _, class := range classes {
		m, ok := sheet.Class(class)
		if !ok {
			tracer().Debugf("no rule for class %q", class)
			continue
		}
		combined = combined.Merge(m)
	}
	return combined
}

// GetLocalProperty returns a style property value, if it is set locally
// for an element. No cascading is performed.
func GetLocalProperty(el *dom.Element, key string) style.Property {
	m, ok := el.Attrs.Style()
	if !ok {
		return style.NullStyle
	}
	return m[key]
}
