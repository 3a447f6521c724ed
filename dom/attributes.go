package dom

import (
	"strings"

	"github.com/npillmayer/xdoc/dom/style"
	"github.com/npillmayer/xdoc/generic"
)

// Attribute names with a normalized representation.
const (
	StyleAttr = "style" // value is a style.Map
	ClassAttr = "class" // value is a []string of class names
)

// Attributes is an insertion-ordered mapping of attribute names to values.
// Values are strings, int64, float64 or bool, as inferred by the generic
// reader, except for the 'style' and 'class' attributes.
// The zero value is an empty set of attributes, ready to use.
type Attributes struct {
	keys   []string
	values map[string]any
}

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	return len(a.keys)
}

// Keys returns the attribute names in insertion order.
func (a *Attributes) Keys() []string {
	keys := make([]string, len(a.keys))
	copy(keys, a.keys)
	return keys
}

// Get returns the value of an attribute, together with an indicator wether
// the attribute is present.
func (a *Attributes) Get(key string) (any, bool) {
	v, ok := a.values[key]
	return v, ok
}

// Has is a predicate: is attribute key present?
func (a *Attributes) Has(key string) bool {
	_, ok := a.values[key]
	return ok
}

// Set sets an attribute. An existing attribute keeps its position.
func (a *Attributes) Set(key string, value any) {
	if a.values == nil {
		a.values = make(map[string]any)
	}
	if _, ok := a.values[key]; !ok {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
}

// Delete removes an attribute, if present.
func (a *Attributes) Delete(key string) {
	if _, ok := a.values[key]; !ok {
		return
	}
	delete(a.values, key)
	for i, k := range a.keys {
		if k == key {
			a.keys = append(a.keys[:i], a.keys[i+1:]...)
			break
		}
	}
}

// Style returns the style map of attribute 'style', if present.
func (a *Attributes) Style() (style.Map, bool) {
	v, ok := a.values[StyleAttr]
	if !ok {
		return nil, false
	}
	m, ok := v.(style.Map)
	return m, ok
}

// Classes returns the class names of attribute 'class'. Elements without a
// class attribute return an empty list.
func (a *Attributes) Classes() []string {
	if classes, ok := a.values[ClassAttr].([]string); ok {
		return classes
	}
	return nil
}

// String returns the value of an attribute in string form, together with an
// indicator wether the attribute is present.
func (a *Attributes) String(key string) (string, bool) {
	v, ok := a.values[key]
	if !ok {
		return "", false
	}
	return FormatValue(v), true
}

// FormatValue returns the string form of an attribute value. Scalars use
// their canonical format, style maps their declaration syntax and class
// lists are joined by blanks.
func FormatValue(v any) string {
	switch x := v.(type) {
	case style.Map:
		return x.String()
	case []string:
		return strings.Join(x, " ")
	}
	return generic.Format(v)
}
