/*
Package css provides the class cascade for xdoc documents.

Elements of a document may carry a list of class names. The styles of
these classes, as defined in the document's stylesheet, are merged onto an
element's own style. Contrary to CSS, class properties take precedence over
inline properties of the same name.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'xdoc.css'.
func tracer() tracing.Trace {
	return tracing.Select("xdoc.css")
}
