/*
Package xdoc compiles xdoc documents into a validated document model.

Status

Early draft: the API may change frequently. Please stay patient.

Overview

xdoc is a small XML dialect describing a paginated document: pages, boxed
layout regions, text, images, links, vector shapes, embedded fonts, and an
embedded mini-stylesheet:

    <document title="Report">
      <font family="MyFont" source="/fonts/myfont.ttf"/>
      <style>
        .text-sm { font-size: 13px; }
        .text-red { color: red; }
      </style>
      <page size="A4">
        <view class="text-sm text-red" style="margin: 4px">
          <text>Hello, World!</text>
        </view>
      </page>
    </document>

Package xdoc is the front end of a document compiler. It turns such a
document, read by a generic XML reader (package generic/xmlreader), into a
Document: a strict element tree (package dom) with classes resolved into
element styles, the document's stylesheet, and the fonts the document
declares. Rendering the tree is left to a rendering engine (see package
render).

Compilation runs in fixed passes, every one of which may fail and abort the
compilation:

   1. the stylesheet is extracted from all style blocks (package cssom)
   2. the generic tree is normalized into a dom tree (package dom)
   3. class styles are applied to the elements (package css)
   4. attributes are validated against the schema (package schema)
   5. font declarations are collected and hoisted out of the tree
      (package fonts)

Each call to Compile is independent of other calls; clients may compile
different documents concurrently.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package xdoc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'xdoc'.
func tracer() tracing.Trace {
	return tracing.Select("xdoc")
}
