package cssom

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/xdoc/dom/style"
)

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// The stylesheet of a document is of type Sheet; other implementations
// (e.g., see package douceuradapter) may exchange rules with it.
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of. Every rule applies to exactly
// one class.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the class name, without leading '.'
	Properties() []string        // property keys, e.g. "marginTop"
	Value(string) style.Property // property value for key, e.g. "15px"
}

// ErrMalformedStyleRule is returned for class rules lacking a selector or a
// declaration block.
var ErrMalformedStyleRule = errors.New("malformed style rule")

// Sheet is a document's stylesheet, mapping class names to style maps.
// Sheets are built once per document and read-only afterwards.
type Sheet map[string]style.Map

var _ StyleSheet = Sheet{}

// NewSheet creates an empty stylesheet.
func NewSheet() Sheet {
	return make(Sheet)
}

// Class returns the style map for a class name.
func (s Sheet) Class(name string) (style.Map, bool) {
	m, ok := s[name]
	return m, ok
}

// Classes returns the class names of a sheet in lexical order.
func (s Sheet) Classes() []string {
	classes := make([]string, 0, len(s))
	for c := range s {
		classes = append(classes, c)
	}
	sort.Strings(classes)
	return classes
}

// Empty checks if this stylesheet contains any rules.
//
// Interface StyleSheet
func (s Sheet) Empty() bool {
	return len(s) == 0
}

// Rules returns one rule per class, ordered by class name.
//
// Interface StyleSheet
func (s Sheet) Rules() []Rule {
	rules := make([]Rule, 0, len(s))
	for _, c := range s.Classes() {
		rules = append(rules, classRule{class: c, props: s[c]})
	}
	return rules
}

// AppendRules merges the rules of another stylesheet into s. Properties of
// a class present in both sheets are merged key by key, with other's values
// winning.
//
// Interface StyleSheet
func (s Sheet) AppendRules(other StyleSheet) {
	for _, r := range other.Rules() {
		m := make(style.Map)
		for _, key := range r.Properties() {
			m[key] = r.Value(key)
		}
		s.merge(r.Selector(), m)
	}
}

// Merge merges all classes of sheet other into s. See AppendRules.
func (s Sheet) Merge(other Sheet) {
	for _, c := range other.Classes() {
		s.merge(c, other[c])
	}
}

func (s Sheet) merge(class string, m style.Map) {
	if existing, ok := s[class]; ok {
		tracer().Debugf("merging rules for class %q", class)
		s[class] = existing.Merge(m)
		return
	}
	s[class] = m.Clone()
}

// classRule is the rule type of Sheet.
type classRule struct {
	class string
	props style.Map
}

func (r classRule) Selector() string {
	return r.class
}

func (r classRule) Properties() []string {
	return r.props.Keys()
}

func (r classRule) Value(key string) style.Property {
	return r.props[key]
}

// --- Parsing ---------------------------------------------------------------

// ParseRules parses the text content of a style block into a stylesheet.
// The text is split into rule blocks at '}'; each rule block is split at
// its first '{' into a selector and a declaration block. A single leading
// '.' is stripped from the selector. Declaration blocks are parsed by
// style.Parse, hence unsupported properties are an error. Rules for the
// same class are merged property by property, later rules winning.
//
// A rule block without '{' or with an empty selector results in an error
// wrapping ErrMalformedStyleRule. A missing declaration block means a
// missing '{'; a present but empty block, as in '.b {}', is not malformed and
// results in a class with an empty style map.
func ParseRules(text string) (Sheet, error) {
	sheet := NewSheet()
	for _, block := range strings.Split(text, "}") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		selector, body, found := strings.Cut(block, "{")
		selector = strings.TrimSpace(selector)
		if !found {
			return nil, fmt.Errorf("%w: %q lacks a declaration block", ErrMalformedStyleRule, block)
		}
		class := strings.TrimSpace(strings.TrimPrefix(selector, "."))
		if class == "" {
			return nil, fmt.Errorf("%w: %q lacks a selector", ErrMalformedStyleRule, block)
		}
		m, err := style.Parse(body)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", selector, err)
		}
		sheet.merge(class, m)
	}
	return sheet, nil
}
