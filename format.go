package gml

import (
	"bytes"

	"github.com/signadot/gml/debug"
	"github.com/signadot/gml/encode"
	"github.com/signadot/gml/parse"
)

// Format parses src and returns its canonical GML rendering.
func Format(src []byte, opts ...encode.EncodeOption) ([]byte, error) {
	doc, err := parse.Parse(src)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, buf, opts...); err != nil {
		return nil, err
	}
	if debug.Fmt() {
		debug.Logf("fmt: %d bytes in, %d bytes out, changed=%t\n", len(src), buf.Len(), !bytes.Equal(src, buf.Bytes()))
	}
	return buf.Bytes(), nil
}

// IsFormatted reports whether src is already in canonical form.
func IsFormatted(src []byte) (bool, error) {
	out, err := Format(src)
	if err != nil {
		return false, err
	}
	return bytes.Equal(src, out), nil
}
