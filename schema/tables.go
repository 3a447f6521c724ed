package schema

import (
	"strings"

	"github.com/npillmayer/xdoc/dom/style"
)

var (
	anyValue = rule{"any value", func(any) bool { return true }}

	isString = rule{"a string", func(v any) bool {
		_, ok := v.(string)
		return ok
	}}

	isStringOrNumber = rule{"a string or a number", func(v any) bool {
		switch v.(type) {
		case string, int64, float64:
			return true
		}
		return false
	}}

	isStyleMap = rule{"a style declaration", func(v any) bool {
		_, ok := v.(style.Map)
		return ok
	}}

	isClassList = rule{"a list of class names", func(v any) bool {
		_, ok := v.([]string)
		return ok
	}}

	// recognized, but not supported yet
	unimplemented = rule{"nothing (not implemented)", func(any) bool { return false }}
)

// oneOf accepts strings from a fixed set of values.
func oneOf(values ...string) rule {
	return rule{
		info: "one of " + strings.Join(values, ", "),
		accept: func(v any) bool {
			s, ok := v.(string)
			if !ok {
				return false
			}
			for _, value := range values {
				if s == value {
					return true
				}
			}
			return false
		},
	}
}

// with returns a copy of attrs, extended by more.
func with(attrs map[string]rule, more map[string]rule) map[string]rule {
	r := make(map[string]rule, len(attrs)+len(more))
	for k, v := range attrs {
		r[k] = v
	}
	for k, v := range more {
		r[k] = v
	}
	return r
}

// Attributes every layout element understands.
var layoutAttrs = map[string]rule{
	"style": isStyleMap,
	"class": isClassList,
	"wrap":  anyValue,
	"fixed": anyValue,
	"debug": anyValue,
}

// Presentation attributes shared by all vector shapes.
var shapeAttrs = map[string]rule{
	"style":            isStyleMap,
	"class":            isClassList,
	"id":               anyValue,
	"transform":        anyValue,
	"fill":             anyValue,
	"stroke":           anyValue,
	"stroke-width":     anyValue,
	"stroke-linecap":   anyValue,
	"stroke-linejoin":  anyValue,
	"stroke-dasharray": anyValue,
	"opacity":          anyValue,
	"fill-opacity":     anyValue,
	"stroke-opacity":   anyValue,
}

func shape(geometry map[string]rule) tagSchema {
	return tagSchema{attrs: with(shapeAttrs, geometry), namespaced: true}
}

// tagSchemas is the schema of xdoc documents. It is never modified.
var tagSchemas = map[string]tagSchema{
	"document": {attrs: map[string]rule{
		"title":      anyValue,
		"author":     anyValue,
		"subject":    anyValue,
		"keywords":   anyValue,
		"creator":    anyValue,
		"producer":   anyValue,
		"pageLayout": oneOf("singlePage", "oneColumn", "twoColumnLeft", "twoColumnRight"),
		"pageMode":   anyValue,
		"pageSize":   anyValue,
	}},
	"page": {attrs: with(layoutAttrs, map[string]rule{
		"size":        isStringOrNumber,
		"orientation": oneOf("portrait", "landscape"),
	})},
	"view": {attrs: layoutAttrs},
	"text": {attrs: layoutAttrs},
	"image": {attrs: with(layoutAttrs, map[string]rule{
		"src":      isString,
		"cache":    anyValue,
		"bookmark": unimplemented,
	})},
	"link": {attrs: with(layoutAttrs, map[string]rule{
		"src": isString,
	})},
	"font": {attrs: map[string]rule{
		"style":     isStyleMap,
		"source":    anyValue,
		"family":    anyValue,
		"weight":    anyValue,
		"fontStyle": anyValue,
	}},
	"style": {attrs: map[string]rule{}},
	"svg": shape(map[string]rule{
		"width":      anyValue,
		"height":     anyValue,
		"viewBox":    anyValue,
		"xmlns":      anyValue,
		"xmlnsxlink": anyValue,
	}),
	"path": shape(map[string]rule{
		"d":         anyValue,
		"fill-rule": anyValue,
		"clip-rule": anyValue,
	}),
	"g": shape(nil),
	"circle": shape(map[string]rule{
		"cx": anyValue,
		"cy": anyValue,
		"r":  anyValue,
	}),
	"rect": shape(map[string]rule{
		"x":      anyValue,
		"y":      anyValue,
		"width":  anyValue,
		"height": anyValue,
		"rx":     anyValue,
		"ry":     anyValue,
	}),
	"ellipse": shape(map[string]rule{
		"cx": anyValue,
		"cy": anyValue,
		"rx": anyValue,
		"ry": anyValue,
	}),
	"line": shape(map[string]rule{
		"x1": anyValue,
		"y1": anyValue,
		"x2": anyValue,
		"y2": anyValue,
	}),
	"polyline": shape(map[string]rule{
		"points": anyValue,
	}),
	"polygon": shape(map[string]rule{
		"points": anyValue,
	}),
}
