package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/gml/ast"
	"github.com/signadot/gml/format"

	"github.com/goccy/go-yaml"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int

	format format.Format

	Color func(ColorAttr, string) string
}

// Encode writes node to w. In GML format (the default) node is written in
// canonical form; in JSON and YAML formats the tree structure is written.
//
// Encoding a well formed tree never fails; errors come from w or from an
// invalid format.
func Encode(node ast.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 4,
	}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	var (
		d   []byte
		err error
	)
	switch es.format {
	case format.GMLFormat:
		buf := bytes.NewBuffer(nil)
		encode(buf, node, es, false)
		d = buf.Bytes()
	case format.JSONFormat:
		d, err = encodeJSON(node)
	case format.YAMLFormat:
		d, err = encodeYAML(node)
	default:
		err = fmt.Errorf("%w: %w %d", ErrEncoding, format.ErrBadFormat, es.format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func encode(buf *bytes.Buffer, node ast.Node, es *EncState, inline bool) {
	switch x := node.(type) {
	case *ast.Document:
		encodeDocument(buf, x, es)
	case *ast.Object:
		encodeObject(buf, x, es, inline)
	case *ast.KeyValuePair:
		encodeKeyValue(buf, x, es, inline)
	case *ast.Scalar:
		if !inline {
			writeIndent(buf, es)
		}
		buf.WriteString(applyColor(es, ValueColor, x.Raw))
		if !inline {
			buf.WriteByte('\n')
		}
	case *ast.Comment:
		if !inline {
			writeIndent(buf, es)
		}
		buf.WriteString(applyColor(es, CommentColor, x.Text))
		buf.WriteByte('\n')
	}
}

func encodeDocument(buf *bytes.Buffer, doc *ast.Document, es *EncState) {
	for _, c := range doc.LeadingComments {
		encode(buf, c, es, false)
	}
	if len(doc.LeadingComments) > 0 {
		buf.WriteByte('\n')
	}
	if doc.Root != nil {
		encodeObject(buf, doc.Root, es, false)
	}
	if len(doc.TrailingComments) > 0 {
		buf.WriteByte('\n')
	}
	for _, c := range doc.TrailingComments {
		encode(buf, c, es, false)
	}
}

// encodeObject writes an object. Properties come first, then children,
// separated by a blank line when both are present. A blank line follows
// each child object unless it is the last entry.
func encodeObject(buf *bytes.Buffer, obj *ast.Object, es *EncState, inline bool) {
	if !inline {
		writeIndent(buf, es)
	}
	buf.WriteString(applyColor(es, MarkerColor, "@"))
	buf.WriteString(applyColor(es, ClassColor, obj.Name))
	buf.WriteByte(' ')
	buf.WriteString(applyColor(es, BraceColor, "{"))
	if obj.IsEmpty() {
		buf.WriteString(applyColor(es, BraceColor, "}"))
		if !inline {
			buf.WriteByte('\n')
		}
		return
	}
	buf.WriteByte('\n')
	es.depth++
	for _, p := range obj.Properties {
		encode(buf, p, es, false)
	}
	if len(obj.Properties) > 0 && len(obj.Children) > 0 {
		buf.WriteByte('\n')
	}
	n := len(obj.Children)
	for i, c := range obj.Children {
		encode(buf, c, es, false)
		if _, isObj := c.(*ast.Object); isObj && i < n-1 {
			buf.WriteByte('\n')
		}
	}
	es.depth--
	writeIndent(buf, es)
	buf.WriteString(applyColor(es, BraceColor, "}"))
	if !inline {
		buf.WriteByte('\n')
	}
}

func encodeKeyValue(buf *bytes.Buffer, kv *ast.KeyValuePair, es *EncState, inline bool) {
	if !inline {
		writeIndent(buf, es)
	}
	buf.WriteString(applyColor(es, KeyColor, kv.Key))
	buf.WriteString(applyColor(es, SepColor, ":"))
	buf.WriteByte(' ')
	if kv.Value != nil {
		encode(buf, kv.Value, es, true)
	}
	if !inline {
		buf.WriteByte('\n')
	}
}

func writeIndent(buf *bytes.Buffer, es *EncState) {
	if es.depth <= 0 || es.indent <= 0 {
		return
	}
	buf.WriteString(strings.Repeat(" ", es.indent*es.depth))
}

func applyColor(es *EncState, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(attr, v)
}

func encodeJSON(node ast.Node) ([]byte, error) {
	d, err := json.MarshalIndent(node, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return append(d, '\n'), nil
}

func encodeYAML(node ast.Node) ([]byte, error) {
	j, err := json.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	d, err := yaml.JSONToYAML(j)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return d, nil
}
