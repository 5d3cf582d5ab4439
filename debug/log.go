package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/gml/ast"
	"github.com/signadot/gml/encode"
)

type GML struct{ ast.Node }

func (g GML) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(g.Node, buf); err != nil {
		return fmt.Sprintf("[raw %s] %v", g.Node.Type(), g.Node)
	}
	return buf.String()
}

// Logf formats according to msg and writes to stderr. AST nodes among
// args are rendered in canonical GML, JSON-like values as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case ast.Node:
			args[i] = GML{x}.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
