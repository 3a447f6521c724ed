/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet,
based on the CSS library github.com/aymerick/douceur.

It is used to serialize document stylesheets into rule syntax, and to read
stylesheets written by general purpose CSS tooling.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/xdoc/dom/style"
	"github.com/npillmayer/xdoc/dom/style/cssom"
)

// CSSStyles is an adapter for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse parses CSS text with douceur and wraps the result.
func Parse(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, err
	}
	return Wrap(c), nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet. Every rule of other
// becomes a class rule with declarations in kebab-case.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	if othercss, ok := other.(*CSSStyles); ok {
		sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
		return
	}
	for _, r := range other.Rules() {
		rule := css.NewRule(css.QualifiedRule)
		rule.Prelude = "." + r.Selector()
		rule.Selectors = []string{rule.Prelude}
		for _, key := range r.Properties() {
			rule.Declarations = append(rule.Declarations, &css.Declaration{
				Property: style.KebabCase(key),
				Value:    r.Value(key).String(),
			})
		}
		sheet.css.Rules = append(sheet.css.Rules, rule)
	}
}

// Rules returns all the class rules of a stylesheet. Rules with a list of
// selectors are returned as one rule per selector. At-rules are skipped.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(sheet.css.Rules))
	for _, r := range sheet.css.Rules {
		if r.Kind != css.QualifiedRule {
			continue
		}
		for _, sel := range r.Selectors {
			rule := Rule(*r)
			rule.Prelude = sel
			rule.Selectors = []string{sel}
			rules = append(rules, rule)
		}
	}
	return rules
}

// String serializes the stylesheet in rule syntax. In contrast to douceur,
// rules without declarations are written with an empty declaration block.
func (sheet *CSSStyles) String() string {
	var sb strings.Builder
	for i, r := range sheet.css.Rules {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if r.Kind == css.QualifiedRule && len(r.Declarations) == 0 {
			sb.WriteString(strings.Join(r.Selectors, ", "))
			sb.WriteString(" {\n}")
			continue
		}
		sb.WriteString(r.String())
	}
	return sb.String()
}

var _ cssom.StyleSheet = &CSSStyles{}

// Format serializes a stylesheet into rule syntax, e.g.
//
//     .text-red {
//       color: red;
//     }
//
// Extracting a stylesheet from the output yields the input again.
func Format(sheet cssom.StyleSheet) string {
	styles := &CSSStyles{}
	styles.AppendRules(sheet)
	return styles.String()
}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the class name of a rule.
func (r Rule) Selector() string {
	return strings.TrimPrefix(strings.TrimSpace(r.Prelude), ".")
}

// Properties returns the property keys of a rule in camelCase,
// e.g. "marginTop"
func (r Rule) Properties() []string {
	props := make([]string, 0, len(r.Declarations))
	seen := make(map[string]bool, len(r.Declarations))
	for _, d := range r.Declarations {
		key := style.CamelCase(d.Property)
		if !seen[key] {
			seen[key] = true
			props = append(props, key)
		}
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px".
// If a property is declared more than once, the last declaration wins.
func (r Rule) Value(key string) style.Property {
	var value style.Property
	for _, d := range r.Declarations {
		if style.CamelCase(d.Property) == key {
			value = style.Property(d.Value)
			if d.Important {
				value += " !important"
			}
		}
	}
	return value
}

var _ cssom.Rule = Rule{}
