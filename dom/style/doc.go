/*
Package style implements the style declarations of document elements.

Style declarations are written in a CSS-like syntax, either inline in a
'style' attribute or as the body of a class rule within a document's
style block. Package style reads such declarations into a Map of
properties. Property names are normalized to camelCase and must be on a
fixed allow-list of supported properties. Property values are kept as raw
strings; interpreting them is the business of layout.

Supported properties are partitioned into property groups (see constants
PG...), reflecting the topics of layout they influence.

*/
package style
