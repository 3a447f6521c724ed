package style

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedProperty is returned for a declaration naming a property
// which is not on the allow-list.
var ErrUnsupportedProperty = errors.New("unsupported style property")

// Parse reads a sequence of CSS-like declarations, separated by ';', into a
// style map.
//
//     Parse("font-size: 13px; display: flex")  => {fontSize: 13px, display: flex}
//
// Empty segments and segments lacking a property name or a value are
// skipped. Property names are converted to camelCase, values are trimmed but
// otherwise kept verbatim. If a property occurs more than once, the last
// declaration wins. A property not on the allow-list is an error, wrapping
// ErrUnsupportedProperty.
func Parse(text string) (Map, error) {
	m := Map{}
	for _, decl := range strings.Split(text, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		prop, value, _ := strings.Cut(decl, ":")
		prop, value = strings.TrimSpace(prop), strings.TrimSpace(value)
		if prop == "" || value == "" {
			tracer().Debugf("skipping incomplete style declaration %q", decl)
			continue
		}
		key := CamelCase(prop)
		if !IsSupported(key) {
			tracer().Errorf("style property %q is not supported", prop)
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedProperty, prop)
		}
		m[key] = Property(value)
	}
	return m, nil
}

// CamelCase converts a kebab-case property name to camelCase: every hyphen
// followed by a lowercase ASCII letter is dropped and the letter upper-cased.
// Other hyphens remain.
//
//     CamelCase("background-color")  => "backgroundColor"
//
func CamelCase(name string) string {
	if !strings.Contains(name, "-") {
		return name
	}
	var sb strings.Builder
	sb.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '-' && i+1 < len(name) && name[i+1] >= 'a' && name[i+1] <= 'z' {
			sb.WriteByte(name[i+1] - 'a' + 'A')
			i++
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// KebabCase converts a camelCase property name to kebab-case. It is the
// inverse of CamelCase for all supported properties.
//
//     KebabCase("zIndex")  => "z-index"
//
func KebabCase(name string) string {
	var sb strings.Builder
	sb.Grow(len(name) + 4)
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' {
			sb.WriteByte('-')
			sb.WriteByte(c - 'A' + 'a')
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
