package xmlreader

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/xdoc/generic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSimpleDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xdoc.reader")
	defer teardown()
	//
	top, err := ReadString(`<document title="n"><page><view><text>Hello, World!</text></view></page></document>`)
	require.NoError(t, err)
	require.Equal(t, 1, top.Len())
	root, ok := top.Get("document")
	require.True(t, ok)
	doc := root.(*generic.Object)
	title, _ := doc.Get("@_title")
	assert.Equal(t, "n", title)
	page, _ := doc.Get("page")
	view, _ := page.(*generic.Object).Get("view")
	text, _ := view.(*generic.Object).Get("text")
	assert.Equal(t, "Hello, World!", text)
}

func TestReadEmptyElementIsEmptyString(t *testing.T) {
	top, err := ReadString(`<document><page></page></document>`)
	require.NoError(t, err)
	root, _ := top.Get("document")
	page, ok := root.(*generic.Object).Get("page")
	require.True(t, ok)
	assert.Equal(t, "", page)
}

func TestReadGroupsRepeatedTags(t *testing.T) {
	top, err := ReadString(`<document><page>a</page><style>.x { color: red; }</style><page>b</page></document>`)
	require.NoError(t, err)
	root, _ := top.Get("document")
	entries := root.(*generic.Object).Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "page", entries[0].Key)
	assert.Equal(t, []any{"a", "b"}, entries[0].Value)
	assert.Equal(t, "style", entries[1].Key)
}

func TestReadInfersAttributeTypes(t *testing.T) {
	top, err := ReadString(`<circle cx="50" r="40.5" fill="red" visible="true" xmlns:xlink="http://www.w3.org/1999/xlink"/>`)
	require.NoError(t, err)
	root, _ := top.Get("circle")
	circle := root.(*generic.Object)
	cx, _ := circle.Get("@_cx")
	r, _ := circle.Get("@_r")
	fill, _ := circle.Get("@_fill")
	visible, _ := circle.Get("@_visible")
	_, nsok := circle.Get("@_xmlns:xlink")
	assert.Equal(t, int64(50), cx)
	assert.Equal(t, 40.5, r)
	assert.Equal(t, "red", fill)
	assert.Equal(t, true, visible)
	assert.True(t, nsok, "expected namespaced attribute key to be kept with prefix")
}

func TestReadMixedContent(t *testing.T) {
	top, err := ReadString(`<text style="color: red">  Hello  </text>`)
	require.NoError(t, err)
	root, _ := top.Get("text")
	obj := root.(*generic.Object)
	entries := obj.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "@_style", entries[0].Key)
	assert.Equal(t, generic.TextKey, entries[1].Key)
	assert.Equal(t, "Hello", entries[1].Value)
}

func TestReadValuelessAttributeInPermissiveMode(t *testing.T) {
	top, err := ReadString(`<document tortoise></document>`, Permissive(true))
	require.NoError(t, err)
	root, _ := top.Get("document")
	v, ok := root.(*generic.Object).Get("@_tortoise")
	assert.True(t, ok)
	assert.Equal(t, "tortoise", v)
	//
	_, err = ReadString(`<document tortoise></document>`)
	assert.Error(t, err, "strict mode must reject valueless attributes")
}

func TestReadMultipleRoots(t *testing.T) {
	top, err := ReadString(`<document></document><view></view>`)
	require.NoError(t, err)
	assert.Equal(t, 2, top.Len())
}

func TestReadMaxDepth(t *testing.T) {
	_, err := ReadString(`<a><b><c><d/></c></b></a>`, MaxDepth(3))
	if !errors.Is(err, ErrTooDeep) {
		t.Errorf("expected ErrTooDeep, have %v", err)
	}
	_, err = ReadString(`<a><b><c><d/></c></b></a>`, MaxDepth(4))
	assert.NoError(t, err)
}

func TestReadAttributeValueEqualToName(t *testing.T) {
	for _, mode := range []bool{true, false} {
		top, err := ReadString(`<image title="title" src="src" wrap="true"/>`, Permissive(mode))
		require.NoError(t, err)
		root, _ := top.Get("image")
		image := root.(*generic.Object)
		title, _ := image.Get("@_title")
		src, _ := image.Get("@_src")
		wrap, _ := image.Get("@_wrap")
		assert.Equal(t, "title", title, "permissive=%v", mode)
		assert.Equal(t, "src", src, "permissive=%v", mode)
		assert.Equal(t, true, wrap, "permissive=%v", mode)
	}
}
