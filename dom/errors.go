package dom

import (
	"errors"
	"fmt"
)

// ErrNestingTooDeep is returned for documents nesting elements deeper than
// the configured maximum depth.
var ErrNestingTooDeep = errors.New("element nesting too deep")

// AttributeError reports a problem with an attribute of an element. It wraps
// a sentinel error of the package detecting the problem, which clients check
// with errors.Is.
type AttributeError struct {
	Err   error  // the underlying error
	Tag   string // tag of the offending element
	Attr  string // name of the offending attribute
	Value any    // value of the attribute, nil for missing attributes
}

func (e *AttributeError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("<%s> attribute %q: %v", e.Tag, e.Attr, e.Err)
	}
	return fmt.Sprintf("<%s> attribute %q = %q: %v", e.Tag, e.Attr, FormatValue(e.Value), e.Err)
}

func (e *AttributeError) Unwrap() error {
	return e.Err
}
