package encode

import (
	"bytes"

	"github.com/signadot/gml/ast"
)

// MustString returns the encoding of node, panicking on error.
func MustString(node ast.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
