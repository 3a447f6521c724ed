package css

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/xdoc/dom"
	"github.com/npillmayer/xdoc/dom/style"
	"github.com/npillmayer/xdoc/dom/style/cssom"
	"github.com/stretchr/testify/assert"
)

var sheet = cssom.Sheet{
	"text-sm":  style.Map{"fontSize": "13px"},
	"text-red": style.Map{"color": "red"},
	"text-big": style.Map{"fontSize": "20px"},
	"empty":    style.Map{},
}

func element(classes []string, inline style.Map) *dom.Element {
	el := dom.NewElement("text")
	if inline != nil {
		el.Attrs.Set(dom.StyleAttr, inline)
	}
	if classes != nil {
		el.Attrs.Set(dom.ClassAttr, classes)
	}
	return el
}

func TestClassStylesWithoutInlineStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xdoc.css")
	defer teardown()
	//
	el := element([]string{"text-sm", "text-red"}, nil)
	ApplyClassStyles(el, sheet)
	m, ok := el.Attrs.Style()
	assert.True(t, ok)
	assert.Equal(t, style.Map{"fontSize": "13px", "color": "red"}, m)
}

func TestClassOverridesInlineStyle(t *testing.T) {
	el := element([]string{"text-red"}, style.Map{"color": "blue", "margin": "1px"})
	ApplyClassStyles(el, sheet)
	m, _ := el.Attrs.Style()
	assert.Equal(t, style.Map{"color": "red", "margin": "1px"}, m)
	assert.Equal(t, []string{"style", "class"}, el.Attrs.Keys(), "style attribute must keep its position")
}

func TestLaterClassWins(t *testing.T) {
	el := element([]string{"text-big", "unknown", "text-sm"}, nil)
	ApplyClassStyles(el, sheet)
	assert.Equal(t, style.Property("13px"), GetLocalProperty(el, "fontSize"))
}

func TestNoMatchingClassLeavesStyleUntouched(t *testing.T) {
	el := element([]string{"unknown", "empty"}, nil)
	ApplyClassStyles(el, sheet)
	assert.False(t, el.Attrs.Has(dom.StyleAttr))
	//
	inline := style.Map{"color": "blue"}
	el = element(nil, inline)
	ApplyClassStyles(el, sheet)
	m, _ := el.Attrs.Style()
	assert.Equal(t, style.Map{"color": "blue"}, m)
}

func TestCascadeReachesNestedElements(t *testing.T) {
	inner := element([]string{"text-red"}, nil)
	root := dom.NewElement("page", dom.NewElement("view", inner, dom.Text("x")))
	ApplyClassStyles(root, sheet)
	assert.Equal(t, style.Property("red"), GetLocalProperty(inner, "color"))
	assert.Equal(t, style.NullStyle, GetLocalProperty(root, "color"))
}

func TestClassStyleDoesNotShareSheetMaps(t *testing.T) {
	m := ClassStyle([]string{"text-red"}, sheet)
	m["color"] = "green"
	assert.Equal(t, style.Property("red"), sheet["text-red"]["color"])
}
