package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'xdoc.style'
func tracer() tracing.Trace {
	return tracing.Select("xdoc.style")
}

// Property is a raw value for a style property. For example, with
//
//     color: black
//
// a property value of "black" is set. Values are opaque at this layer:
// no unit validation or type coercion takes place.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- Style Map -------------------------------------------------------------

// Map holds style properties, keyed by camelCase property name.
// nil is a legal (empty) style map for reading.
type Map map[string]Property

// Keys returns the property names of a map in lexical order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Properties returns all properties of a map, ordered by key.
func (m Map) Properties() []KeyValue {
	r := make([]KeyValue, 0, len(m))
	for _, k := range m.Keys() {
		r = append(r, KeyValue{k, m[k]})
	}
	return r
}

// Clone returns a copy of a map. Cloning nil returns an empty map.
func (m Map) Clone() Map {
	c := make(Map, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// Merge copies all properties from other into m, overwriting properties
// present in both. It returns m, allocating it if it is nil.
func (m Map) Merge(other Map) Map {
	if m == nil {
		m = make(Map, len(other))
	}
	for k, v := range other {
		m[k] = v
	}
	return m
}

// String returns the map in declaration syntax, with kebab-case property
// names in lexical order, e.g.
//
//     color: red; font-size: 13px
//
// Parsing the result yields the map again.
func (m Map) String() string {
	decls := make([]string, 0, len(m))
	for _, kv := range m.Properties() {
		decls = append(decls, KebabCase(kv.Key)+": "+kv.Value.String())
	}
	return strings.Join(decls, "; ")
}

// --- Property Groups -------------------------------------------------------

// Symbolic names for string literals, denoting property groups.
// The groups partition the supported properties into topics.
const (
	PGDimension = "Dimension"
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGDisplay   = "Display"
	PGFlex      = "Flex"
	PGPosition  = "Position"
	PGColor     = "Color"
	PGText      = "Text"
	PGEffects   = "Effects"
)

// groupNameFromPropertyKey is the allow-list of style properties. A property
// not present here is rejected by the declaration parser. Cursor properties
// are not supported.
var groupNameFromPropertyKey = map[string]string{
	"width":     PGDimension,
	"height":    PGDimension,
	"minWidth":  PGDimension,
	"minHeight": PGDimension,
	"maxWidth":  PGDimension,
	"maxHeight": PGDimension,

	"margin":       PGMargins,
	"marginTop":    PGMargins,
	"marginRight":  PGMargins,
	"marginBottom": PGMargins,
	"marginLeft":   PGMargins,

	"padding":       PGPadding,
	"paddingTop":    PGPadding,
	"paddingRight":  PGPadding,
	"paddingBottom": PGPadding,
	"paddingLeft":   PGPadding,

	"border":       PGBorder,
	"borderWidth":  PGBorder,
	"borderColor":  PGBorder,
	"borderStyle":  PGBorder,
	"borderRadius": PGBorder,

	"display":  PGDisplay,
	"overflow": PGDisplay,

	"flexDirection":  PGFlex,
	"flexWrap":       PGFlex,
	"flexGrow":       PGFlex,
	"flexShrink":     PGFlex,
	"flexBasis":      PGFlex,
	"justifyContent": PGFlex,
	"alignItems":     PGFlex,
	"alignSelf":      PGFlex,
	"alignContent":   PGFlex,

	"position": PGPosition,
	"top":      PGPosition,
	"left":     PGPosition,
	"right":    PGPosition,
	"bottom":   PGPosition,
	"zIndex":   PGPosition,

	"color":           PGColor,
	"backgroundColor": PGColor,

	"fontSize":       PGText,
	"fontWeight":     PGText,
	"fontFamily":     PGText,
	"fontStyle":      PGText,
	"lineHeight":     PGText,
	"letterSpacing":  PGText,
	"textAlign":      PGText,
	"textDecoration": PGText,
	"textTransform":  PGText,
	"whiteSpace":     PGText,
	"wordWrap":       PGText,
	"textOverflow":   PGText,

	"opacity":   PGEffects,
	"transform": PGEffects,
	"boxShadow": PGEffects,
}

// IsSupported is a predicate: is a (camelCase) property name on the
// allow-list?
func IsSupported(key string) bool {
	_, ok := groupNameFromPropertyKey[key]
	return ok
}

// GroupNameFromPropertyKey returns the property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("marginTop") => "Margins"
//
// Unsupported style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = "X"
	}
	return groupname
}

// SupportedProperties returns the allow-list of style properties, in
// lexical order.
func SupportedProperties() []string {
	keys := make([]string, 0, len(groupNameFromPropertyKey))
	for k := range groupNameFromPropertyKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
