// Package format names the output formats of the encoder.
//
// GML is the canonical markup rendering of a tree. JSON and YAML render
// the tree structure itself, one object per node with a "type" field, and
// can be read back with [github.com/signadot/gml/ast.FromJSON].
package format
