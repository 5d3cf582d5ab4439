// Package parse parses GML markup into syntax trees.
//
// # Usage
//
//	// Parse GML text
//	doc, err := parse.Parse([]byte("@GUI::Widget {\n    fixed_width: 260\n}\n"))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	doc, err := parse.ParseString(src)
//
//	// Record node positions
//	pos := map[ast.Node]*token.Pos{}
//	doc, err := parse.ParseString(src, parse.ParsePositions(pos))
//
// Parsing stops at the first structural error. Errors are *[Error] values
// wrapping one of the Err* sentinels, all of which wrap [ErrParse].
//
// # Related Packages
//
//   - github.com/signadot/gml/ast - syntax tree
//   - github.com/signadot/gml/encode - encode syntax trees to text
//   - github.com/signadot/gml/token - tokenization
package parse
