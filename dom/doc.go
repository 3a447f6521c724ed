/*
Package dom implements the compiled document model of xdoc documents.

Status

Early draft: the API may change frequently. Please stay patient.

Overview

An xdoc document is a small XML dialect describing a paginated document:
pages, boxed layout regions, text, images, links, vector shapes, embedded
fonts, and an embedded mini-stylesheet. A generic XML reader turns such a
document into an untyped attributed tree (package generic). Package dom
defines the strict tree a compiler builds from it: a node is either an
*Element, carrying a tag, attributes and an ordered list of children, or a
Text leaf.

Attributes keep the primitive type the reader inferred (string, number,
boolean), with two exceptions: attribute 'style' always holds a style.Map,
and attribute 'class' always holds an ordered list of class names. Style
blocks are always empty elements, their content belongs to the document's
stylesheet (package cssom).

Tree Implementation

Every element owns its children outright; there is no sharing of nodes and
no parent links, so no cycles are possible. Clients mutate a tree in place
(e.g., the class cascade of package css, or the hoisting of font
declarations), but a tree is never shared between goroutines by this
module.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'xdoc.dom'
func tracer() tracing.Trace {
	return tracing.Select("xdoc.dom")
}
