// Package encode renders GML syntax trees as text.
//
// # Usage
//
//	doc, err := parse.ParseString(src)
//	if err != nil {
//	    return err
//	}
//	// canonical GML
//	err = encode.Encode(doc, os.Stdout)
//
//	// canonical GML as a string
//	s := encode.MustString(doc)
//
//	// the tree itself as YAML
//	err = encode.Encode(doc, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
// The GML rendering depends only on the tree: the same tree always yields
// the same bytes, whatever the layout of the text it was parsed from.
//
// # Related Packages
//
//   - github.com/signadot/gml/ast - syntax tree
//   - github.com/signadot/gml/parse - parse text to a syntax tree
package encode
