package parse

import (
	"github.com/signadot/gml/ast"
	"github.com/signadot/gml/token"
)

type parseOpts struct {
	positions map[ast.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// ParsePositions records in m the start position of every object, key
// value pair, scalar and comment of the resulting tree.
func ParsePositions(m map[ast.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// GetPositions extracts the positions map from the provided options.
func GetPositions(opts ...ParseOption) map[ast.Node]*token.Pos {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}
