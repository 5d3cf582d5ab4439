package encode

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/signadot/gml/ast"
	"github.com/signadot/gml/format"
)

func kv(k, raw string) *ast.KeyValuePair {
	return ast.NewKeyValuePair(k, ast.NewScalar(raw))
}

func TestEncodeGML(t *testing.T) {
	tests := []struct {
		name string
		in   ast.Node
		out  string
	}{
		{
			name: "properties",
			in: &ast.Document{Root: ast.NewObject("GUI::Button").
				AddProperty(kv("width", "200")).
				AddProperty(kv("height", "20"))},
			out: "@GUI::Button {\n    width: 200\n    height: 20\n}\n",
		},
		{
			name: "empty",
			in:   &ast.Document{Root: ast.NewObject("GUI::Layout::Spacer")},
			out:  "@GUI::Layout::Spacer {}\n",
		},
		{
			name: "object value",
			in: ast.NewObject("GUI::Widget").Set("layout",
				ast.NewObject("GUI::VerticalBoxLayout").Set("margins", ast.NewScalar("[4]"))),
			out: `@GUI::Widget {
    layout: @GUI::VerticalBoxLayout {
        margins: [4]
    }
}
`,
		},
		{
			name: "empty object value",
			in:   ast.NewObject("A").Set("layout", ast.NewObject("B")).Set("x", ast.NewScalar("1")),
			out:  "@A {\n    layout: @B {}\n    x: 1\n}\n",
		},
		{
			name: "children",
			in: ast.NewObject("A").
				AddProperty(kv("x", "1")).
				AddChild(ast.NewObject("B")).
				AddChild(ast.NewObject("C").AddProperty(kv("y", "2"))),
			out: `@A {
    x: 1

    @B {}

    @C {
        y: 2
    }
}
`,
		},
		{
			name: "only children",
			in:   ast.NewObject("A").AddChild(ast.NewObject("B")),
			out:  "@A {\n    @B {}\n}\n",
		},
		{
			name: "comments",
			in: &ast.Document{
				LeadingComments: []*ast.Comment{ast.NewComment("// a"), ast.NewComment("// b")},
				Root: ast.NewObject("A").
					AddProperty(ast.NewComment("// about x")).
					AddProperty(kv("x", "1")).
					AddChild(ast.NewComment("// about B")).
					AddChild(ast.NewObject("B")).
					AddChild(ast.NewComment("// tail")),
				TrailingComments: []*ast.Comment{ast.NewComment("// z")},
			},
			out: `// a
// b

@A {
    // about x
    x: 1

    // about B
    @B {}

    // tail
}

// z
`,
		},
		{
			name: "key value",
			in:   kv("text", `"OK"`),
			out:  "text: \"OK\"\n",
		},
		{
			name: "scalar",
			in:   ast.NewScalar("[4]"),
			out:  "[4]\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := MustString(test.in)
			if got != test.out {
				t.Errorf("got\n%s\nwant\n%s", got, test.out)
			}
		})
	}
}

func TestEncodeIndent(t *testing.T) {
	o := ast.NewObject("A").AddChild(ast.NewObject("B").AddProperty(kv("x", "1")))
	got := MustString(o, Indent(2))
	want := "@A {\n  @B {\n    x: 1\n  }\n}\n"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	got = MustString(ast.NewObject("B").AddProperty(kv("x", "1")), Depth(1))
	want = "    @B {\n        x: 1\n    }\n"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestEncodeColors(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = noColor }()

	doc := &ast.Document{
		LeadingComments: []*ast.Comment{ast.NewComment("// top")},
		Root: ast.NewObject("GUI::Widget").
			AddProperty(kv("width", "50%")).
			AddProperty(ast.NewKeyValuePair("layout", ast.NewObject("L"))).
			AddChild(ast.NewObject("GUI::Button").AddProperty(kv("text", `"100%d"`))),
	}
	plain := MustString(doc)
	colored := MustString(doc, EncodeColors(NewColors()))
	if !strings.Contains(colored, "\x1b[") {
		t.Fatalf("no escape sequences in\n%q", colored)
	}
	if got := ansi.ReplaceAllString(colored, ""); got != plain {
		t.Errorf("colors changed the text:\n%s\nwant\n%s", got, plain)
	}
	if got := MustString(doc, EncodeColors(nil)); got != plain {
		t.Errorf("nil colors changed the text:\n%s", got)
	}
}

func TestColorsGet(t *testing.T) {
	c := &Colors{Default: colorDefault, Map: map[ColorAttr]func(string, ...any) string{}}
	for _, a := range ColorAttrs() {
		if got := c.Color(a, "x"); got != "x" {
			t.Errorf("default color for %d: %q", a, got)
		}
	}
}

func TestEncodeStructured(t *testing.T) {
	doc := &ast.Document{
		LeadingComments: []*ast.Comment{ast.NewComment("// top")},
		Root: ast.NewObject("GUI::Widget").
			AddProperty(kv("width", "200")).
			AddProperty(kv("enabled", "true")).
			AddProperty(ast.NewKeyValuePair("layout", ast.NewObject("L").AddProperty(kv("margins", "[4]")))).
			AddChild(ast.NewObject("GUI::Button").AddProperty(kv("text", `"OK: yes"`))),
	}

	j := MustString(doc, EncodeFormat(format.JSONFormat))
	n, err := ast.FromJSON([]byte(j))
	if err != nil {
		t.Fatalf("decode json: %v\n%s", err, j)
	}
	if !ast.Equal(doc, n) {
		t.Errorf("json dump does not decode to the same tree:\n%s", j)
	}

	y := MustString(doc, EncodeFormat(format.YAMLFormat))
	yj, err := yaml.YAMLToJSON([]byte(y))
	if err != nil {
		t.Fatalf("yaml to json: %v\n%s", err, y)
	}
	n, err = ast.FromJSON(yj)
	if err != nil {
		t.Fatalf("decode yaml: %v\n%s", err, y)
	}
	if !ast.Equal(doc, n) {
		t.Errorf("yaml dump does not decode to the same tree:\n%s", y)
	}
	if FormatFromOpts(EncodeFormat(format.YAMLFormat)) != format.YAMLFormat {
		t.Error("format option lost")
	}
}

func TestEncodeErrors(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(nil, buf); !errors.Is(err, ErrEncoding) {
		t.Errorf("nil node: got %v", err)
	}
	err := Encode(ast.NewObject("A"), buf, EncodeFormat(format.Format(42)))
	if !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("bad format: got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("failed encodings wrote %q", buf.String())
	}
}
