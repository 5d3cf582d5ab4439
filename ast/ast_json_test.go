package ast

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestJSONRoundTrip(t *testing.T) {
	doc := &Document{
		LeadingComments: []*Comment{NewComment("// top")},
		Root:            testWidget(),
	}
	d, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	n, err := FromJSON(d)
	if err != nil {
		t.Fatalf("decode %s: %v", d, err)
	}
	if !Equal(doc, n) {
		t.Errorf("round trip changed the tree: %s", d)
	}
}

func TestMarshalJSON(t *testing.T) {
	o := NewObject("A").Set("x", NewScalar("1")).AddChild(NewComment("// c"))
	d, err := json.Marshal(o)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"type":"Object","name":"A","properties":[{"type":"KeyValuePair","key":"x","value":{"type":"Scalar","raw":"1"}}],"children":[{"type":"Comment","text":"// c"}]}`
	if string(d) != want {
		t.Errorf("got\n%s\nwant\n%s", d, want)
	}
}

func TestFromJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		msg  string
	}{
		{"syntax", `{`, ""},
		{"missing type", `{"text":"// c"}`, "missing node type"},
		{"bad type", `{"type":"Thing"}`, "unrecognized type"},
		{"empty name", `{"type":"Object","name":""}`, "empty object name"},
		{"empty key", `{"type":"KeyValuePair","key":"","value":{"type":"Scalar","raw":"1"}}`, "empty property key"},
		{"missing value", `{"type":"KeyValuePair","key":"x"}`, "missing property value"},
		{"comment value", `{"type":"KeyValuePair","key":"x","value":{"type":"Comment","text":"// c"}}`, "property value cannot be a Comment"},
		{"scalar child", `{"type":"Object","name":"A","children":[{"type":"Scalar","raw":"1"}]}`, "child cannot be a Scalar"},
		{"object property", `{"type":"Object","name":"A","properties":[{"type":"Object","name":"B"}]}`, "property cannot be a Object"},
		{"missing root", `{"type":"Document"}`, "missing root"},
		{"scalar root", `{"type":"Document","root":{"type":"Scalar","raw":"1"}}`, "root cannot be a Scalar"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			n, err := FromJSON([]byte(test.in))
			if err == nil {
				t.Fatalf("expected error, got %v", n)
			}
			if !errors.Is(err, ErrDecode) {
				t.Errorf("%v does not wrap ErrDecode", err)
			}
			if !strings.Contains(err.Error(), test.msg) {
				t.Errorf("error %q does not mention %q", err, test.msg)
			}
		})
	}
}

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != typ {
			t.Errorf("got %s want %s", back, typ)
		}
	}
}
