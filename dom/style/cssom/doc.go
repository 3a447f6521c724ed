/*
Package cssom provides the stylesheet of xdoc documents.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

Documents may embed style blocks, i.e. elements with tag 'style', anywhere
in the document tree. The text of a style block is a sequence of class
rules

    .<class> { <property>: <value>; ... }

CSSOM is the "CSS Object Model", similar to the DOM for HTML. For xdoc
documents it is much simpler: the stylesheet of a document is a mapping
from class names to style maps (see type Sheet), collected from all style
blocks of a document (see Extract). Descendant, id or attribute selectors
are not supported.

Stylesheet handling is de-coupled by introducing interfaces StyleSheet and
Rule. Sub-package douceuradapter connects stylesheets to a general purpose
CSS library, mainly for serializing them.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'xdoc.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("xdoc.cssom")
}
