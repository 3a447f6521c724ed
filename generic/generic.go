/*
Package generic holds the untyped attributed tree a generic XML reader
produces, before any dialect-specific interpretation takes place.

Overview

A generic tree is a nesting of objects. Each object is an ordered list of
entries. An entry's key is either

   - an attribute key, carrying the reserved prefix AttrPrefix,
   - the reserved text key TextKey, holding character content,
   - or a tag name, holding a child element.

Child element values are scalars (string, int64, float64, bool) for
elements without attributes and without children, objects for everything
else, or arrays of such values for tags repeated within the same parent.
Entry order is significant: it is the document order (with repeated tags
grouped at the position of their first occurrence) and layout downstream
depends on it.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package generic

import (
	"fmt"
	"strconv"
	"strings"
)

// Reserved markers of the generic tree.
const (
	AttrPrefix = "@_"    // prefix of attribute keys
	TextKey    = "#text" // key of character content
)

// Entry is a key/value pair of an Object.
type Entry struct {
	Key   string
	Value any
}

// IsAttribute is a predicate: does the entry carry an attribute?
func (e Entry) IsAttribute() bool {
	return strings.HasPrefix(e.Key, AttrPrefix)
}

// IsText is a predicate: does the entry carry text content?
func (e Entry) IsText() bool {
	return e.Key == TextKey
}

// AttributeName returns the entry key without the attribute prefix.
func (e Entry) AttributeName() string {
	return strings.TrimPrefix(e.Key, AttrPrefix)
}

// Object is an insertion-ordered collection of entries.
// The zero value is an empty object, ready to use.
type Object struct {
	entries []Entry
}

// New creates an object from a sequence of entries, preserving their order.
// Duplicate keys are not merged; use Append for reader semantics.
func New(entries ...Entry) *Object {
	obj := &Object{}
	obj.entries = append(obj.entries, entries...)
	return obj
}

// Len returns the number of entries.
func (obj *Object) Len() int {
	if obj == nil {
		return 0
	}
	return len(obj.entries)
}

// Entries returns the entries of an object in order.
// Clients must not modify the returned slice.
func (obj *Object) Entries() []Entry {
	if obj == nil {
		return nil
	}
	return obj.entries
}

// Get returns the value for a key, together with an indicator wether the
// key has been found.
func (obj *Object) Get(key string) (any, bool) {
	if obj == nil {
		return nil, false
	}
	for _, e := range obj.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Set sets the value for a key. An existing entry keeps its position,
// otherwise the entry is appended.
func (obj *Object) Set(key string, value any) *Object {
	for i, e := range obj.entries {
		if e.Key == key {
			obj.entries[i].Value = value
			return obj
		}
	}
	obj.entries = append(obj.entries, Entry{Key: key, Value: value})
	return obj
}

// Append adds a value for a key the way a generic reader groups repeated
// tags: the first occurrence creates an entry, a second one turns the entry
// into an array (at the position of the first occurrence), further ones
// extend the array.
func (obj *Object) Append(key string, value any) *Object {
	for i, e := range obj.entries {
		if e.Key != key {
			continue
		}
		if arr, ok := e.Value.([]any); ok {
			obj.entries[i].Value = append(arr, value)
		} else {
			obj.entries[i].Value = []any{e.Value, value}
		}
		return obj
	}
	obj.entries = append(obj.entries, Entry{Key: key, Value: value})
	return obj
}

// Attr is a shortcut to create an attribute entry.
func Attr(name string, value any) Entry {
	return Entry{Key: AttrPrefix + name, Value: value}
}

// Text is a shortcut to create a text entry.
func Text(s string) Entry {
	return Entry{Key: TextKey, Value: s}
}

// Child is a shortcut to create a child element entry.
func Child(tag string, value any) Entry {
	return Entry{Key: tag, Value: value}
}

// --- Scalars ---------------------------------------------------------------

// IsScalar is a predicate for the primitive value types of a generic tree.
func IsScalar(v any) bool {
	switch v.(type) {
	case string, int64, float64, bool:
		return true
	}
	return false
}

// Format returns the canonical string form of a scalar. Other values are
// formatted with their default format.
func Format(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case nil:
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// Infer converts a raw string to a number if it has the canonical form of
// one, i.e., if formatting the number yields the raw string again. With
// booleans set, "true" and "false" are converted to bool as well. All other
// strings are returned unchanged.
//
//     Infer("42", false)   => int64(42)
//     Infer("0.5", false)  => float64(0.5)
//     Infer("007", false)  => "007"
//     Infer("true", true)  => true
//
func Infer(s string, booleans bool) any {
	if s == "" {
		return s
	}
	if booleans {
		switch s {
		case "true":
			return true
		case "false":
			return false
		}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if strconv.FormatInt(n, 10) == s {
			return n
		}
		return s
	}
	if strings.ContainsAny(s, "eEnN") { // no exponents, Inf or NaN
		return s
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if strconv.FormatFloat(f, 'f', -1, 64) == s {
			return f
		}
	}
	return s
}
