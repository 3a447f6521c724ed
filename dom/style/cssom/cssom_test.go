package cssom

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/xdoc/dom"
	"github.com/npillmayer/xdoc/dom/style"
	"github.com/npillmayer/xdoc/generic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xdoc.cssom")
	defer teardown()
	//
	sheet, err := ParseRules(`.text-sm { font-size: 13px; } .text-red { color: red; }`)
	require.NoError(t, err)
	assert.Equal(t, Sheet{
		"text-sm":  style.Map{"fontSize": "13px"},
		"text-red": style.Map{"color": "red"},
	}, sheet)
}

func TestParseRulesMergesPerProperty(t *testing.T) {
	sheet, err := ParseRules(`
		.a { color: red; margin: 1px }
		.a { color: blue; padding: 2px; }
		.b {}
	`)
	require.NoError(t, err)
	assert.Equal(t, style.Map{"color": "blue", "margin": "1px", "padding": "2px"}, sheet["a"])
	b, ok := sheet.Class("b")
	assert.True(t, ok)
	assert.Empty(t, b)
}

func TestParseRulesEmptyVersusMissingBody(t *testing.T) {
	sheet, err := ParseRules(`.b {}`)
	require.NoError(t, err)
	assert.Equal(t, Sheet{"b": style.Map{}}, sheet)
	_, err = ParseRules(`.b }`)
	assert.True(t, errors.Is(err, ErrMalformedStyleRule), "have %v", err)
}

func TestParseRulesStripsSingleDot(t *testing.T) {
	sheet, err := ParseRules(`..x { color: red } y { color: blue }`)
	require.NoError(t, err)
	assert.Equal(t, []string{".x", "y"}, sheet.Classes())
}

func TestParseRulesMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xdoc.cssom")
	defer teardown()
	//
	for _, text := range []string{
		`.x color: red; }`,
		`{ color: red; }`,
		`. { color: red; }`,
	} {
		_, err := ParseRules(text)
		if !errors.Is(err, ErrMalformedStyleRule) {
			t.Errorf("expected malformed rule error for %q, have %v", text, err)
		}
	}
}

func TestParseRulesUnsupportedProperty(t *testing.T) {
	_, err := ParseRules(`.x { cursor: pointer; }`)
	assert.True(t, errors.Is(err, style.ErrUnsupportedProperty), "error is %v", err)
}

func TestExtractVisitsAllStyleBlocks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xdoc.cssom")
	defer teardown()
	//
	doc := generic.New(
		generic.Child("style", ".a { color: red; }"),
		generic.Child("page", []any{
			generic.New(generic.Child("view", generic.New(
				generic.Child("style", generic.New(generic.Attr("x", "y"), generic.Text(".b { font-size: 10px; }"))),
			))),
			generic.New(generic.Child("style", []any{".a { display: flex; }", ".c { opacity: 0.5; }"})),
		}),
	)
	sheet, err := Extract(doc, "document", 0)
	require.NoError(t, err)
	assert.Equal(t, Sheet{
		"a": style.Map{"color": "red", "display": "flex"},
		"b": style.Map{"fontSize": "10px"},
		"c": style.Map{"opacity": "0.5"},
	}, sheet)
}

func TestExtractWithoutStyleBlocks(t *testing.T) {
	sheet, err := Extract(generic.New(generic.Child("page", "")), "document", 0)
	require.NoError(t, err)
	assert.True(t, sheet.Empty())
	assert.NotNil(t, sheet)
}

func TestExtractDepthGuard(t *testing.T) {
	doc := generic.New(generic.Child("page", generic.New(generic.Child("style", ".a { color: red }"))))
	_, err := Extract(doc, "document", 2)
	assert.True(t, errors.Is(err, dom.ErrNestingTooDeep), "error is %v", err)
	_, err = Extract(doc, "document", 3)
	assert.NoError(t, err)
}

func TestSheetAppendRules(t *testing.T) {
	s := Sheet{"a": style.Map{"color": "red", "margin": "0"}}
	other := Sheet{"a": style.Map{"color": "blue"}, "b": style.Map{"top": "1px"}}
	s.AppendRules(other)
	assert.Equal(t, Sheet{
		"a": style.Map{"color": "blue", "margin": "0"},
		"b": style.Map{"top": "1px"},
	}, s)
	other["b"]["top"] = "2px"
	assert.Equal(t, style.Property("1px"), s["b"]["top"], "merged sheet must not share maps")
	rules := s.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "a", rules[0].Selector())
	assert.Equal(t, []string{"color", "margin"}, rules[0].Properties())
	assert.Equal(t, style.Property("blue"), rules[0].Value("color"))
}
