package style

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSingleDeclaration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xdoc.style")
	defer teardown()
	//
	m, err := Parse("font-size: 13px;")
	require.NoError(t, err)
	assert.Equal(t, Map{"fontSize": "13px"}, m)
}

func TestParseSkipsIncompleteDeclarations(t *testing.T) {
	m, err := Parse(" ; color ; : red; display: flex;;  ")
	require.NoError(t, err)
	assert.Equal(t, Map{"display": "flex"}, m)
	//
	m, err = Parse("")
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestParseLastDeclarationWins(t *testing.T) {
	m, err := Parse("color: red; background-color: white; color: blue")
	require.NoError(t, err)
	assert.Equal(t, Map{"color": "blue", "backgroundColor": "white"}, m)
}

func TestParseKeepsValuesVerbatim(t *testing.T) {
	m, err := Parse("font-family: Helvetica, 'Open Sans'; box-shadow: 1px 2px rgba(0,0,0,0.5)")
	require.NoError(t, err)
	assert.Equal(t, Property("Helvetica, 'Open Sans'"), m["fontFamily"])
	assert.Equal(t, Property("1px 2px rgba(0,0,0,0.5)"), m["boxShadow"])
}

func TestParseValueWithColon(t *testing.T) {
	m, err := Parse("transform: url(a:b)")
	require.NoError(t, err)
	assert.Equal(t, Property("url(a:b)"), m["transform"])
}

func TestParseRejectsUnsupportedProperty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xdoc.style")
	defer teardown()
	//
	_, err := Parse("color: red; cursor: pointer")
	if !errors.Is(err, ErrUnsupportedProperty) {
		t.Fatalf("expected ErrUnsupportedProperty, have %v", err)
	}
	assert.Contains(t, err.Error(), "cursor")
}

func TestCamelCase(t *testing.T) {
	tests := map[string]string{
		"font-size":        "fontSize",
		"background-color": "backgroundColor",
		"z-index":          "zIndex",
		"display":          "display",
		"-x":               "X",
		"a-B":              "a-B",
		"trailing-":        "trailing-",
	}
	for in, out := range tests {
		assert.Equal(t, out, CamelCase(in), "input %q", in)
	}
}

func TestKebabCaseInvertsCamelCase(t *testing.T) {
	for _, p := range SupportedProperties() {
		if CamelCase(KebabCase(p)) != p {
			t.Errorf("kebab/camel round trip failed for %q: %q", p, KebabCase(p))
		}
	}
}

func TestGroupNames(t *testing.T) {
	assert.Equal(t, PGMargins, GroupNameFromPropertyKey("marginTop"))
	assert.Equal(t, PGText, GroupNameFromPropertyKey("fontSize"))
	assert.Equal(t, "X", GroupNameFromPropertyKey("cursor"))
	assert.False(t, IsSupported("cursor"))
}

func TestMapStringParsesBack(t *testing.T) {
	m := Map{"fontSize": "12px", "zIndex": "3", "color": "red"}
	assert.Equal(t, "color: red; font-size: 12px; z-index: 3", m.String())
	n, err := Parse(m.String())
	require.NoError(t, err)
	assert.Equal(t, m, n)
}

func TestMapMerge(t *testing.T) {
	var m Map
	m = m.Merge(Map{"color": "red"})
	m = m.Merge(Map{"color": "blue", "display": "flex"})
	assert.Equal(t, Map{"color": "blue", "display": "flex"}, m)
	c := m.Clone()
	c["color"] = "green"
	assert.Equal(t, Property("blue"), m["color"])
}
