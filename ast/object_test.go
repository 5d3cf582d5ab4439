package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testWidget() *Object {
	layout := NewObject("GUI::VerticalBoxLayout").Set("margins", NewScalar("[4]"))
	return NewObject("GUI::Widget").
		AddProperty(NewComment("// size")).
		Set("fixed_width", NewScalar("260")).
		Set(LayoutKey, layout).
		Set("title", NewScalar(`"Hi"`)).
		AddChild(NewComment("// buttons")).
		AddChild(NewObject("GUI::Button").Set("text", NewScalar(`"OK"`))).
		AddChild(NewObject("GUI::Layout::Spacer"))
}

func TestObjectGet(t *testing.T) {
	w := testWidget()
	v, ok := w.Get("fixed_width")
	if !ok {
		t.Fatal("fixed_width not found")
	}
	if s, ok := v.(*Scalar); !ok || s.Raw != "260" {
		t.Errorf("unexpected fixed_width %v", v)
	}
	if _, ok := w.Get("missing"); ok {
		t.Error("found missing property")
	}
	if _, ok := w.Get("// size"); ok {
		t.Error("comments are not properties")
	}
	if raw, ok := w.GetScalar("title"); !ok || raw != `"Hi"` {
		t.Errorf("GetScalar(title) = %q, %t", raw, ok)
	}
	if _, ok := w.GetScalar(LayoutKey); ok {
		t.Error("layout is not a scalar")
	}
}

func TestObjectLayout(t *testing.T) {
	w := testWidget()
	lo, ok := w.Layout()
	if !ok || lo.Name != "GUI::VerticalBoxLayout" {
		t.Fatalf("unexpected layout %v %t", lo, ok)
	}
	if _, ok := lo.Layout(); ok {
		t.Error("layout object has no layout")
	}
	scalar := NewObject("A").Set(LayoutKey, NewScalar("none"))
	if _, ok := scalar.Layout(); ok {
		t.Error("scalar layout reported as object")
	}
}

func TestObjectForEach(t *testing.T) {
	w := testWidget()
	var keys []string
	w.ForEachProperty(func(k string, v *Scalar) {
		keys = append(keys, k+"="+v.Raw)
	})
	if diff := cmp.Diff([]string{"fixed_width=260", `title="Hi"`}, keys); diff != "" {
		t.Errorf("properties mismatch (-want +got):\n%s", diff)
	}

	var names []string
	w.ForEachChildObject(func(o *Object) bool {
		names = append(names, o.Name)
		return true
	})
	if diff := cmp.Diff([]string{"GUI::Button", "GUI::Layout::Spacer"}, names); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}

	n := 0
	w.ForEachChildObject(func(o *Object) bool {
		n++
		return false
	})
	if n != 1 {
		t.Errorf("iteration did not stop, %d calls", n)
	}
	if got := len(w.ChildObjects()); got != 2 {
		t.Errorf("got %d child objects", got)
	}
	if got := len(w.KeyValues()); got != 3 {
		t.Errorf("got %d key values", got)
	}
}

func TestObjectIsEmpty(t *testing.T) {
	if !NewObject("A").IsEmpty() {
		t.Error("new object not empty")
	}
	if NewObject("A").AddChild(NewComment("// c")).IsEmpty() {
		t.Error("object with a comment is not empty")
	}
}

func TestClone(t *testing.T) {
	w := testWidget()
	doc := &Document{
		LeadingComments:  []*Comment{NewComment("// a")},
		Root:             w,
		TrailingComments: []*Comment{NewComment("// z")},
	}
	c := doc.Clone()
	if !Equal(doc, c) {
		t.Fatal("clone differs")
	}
	if diff := cmp.Diff(doc, c); diff != "" {
		t.Fatalf("clone mismatch (-want +got):\n%s", diff)
	}

	lo, _ := c.Root.Layout()
	lo.Properties[0].(*KeyValuePair).Value.(*Scalar).Raw = "[8]"
	c.Root.Children[1].(*Object).Name = "GUI::Label"
	c.LeadingComments[0].Text = "// b"
	c.Root.Set("extra", NewScalar("1"))

	orig := testWidget()
	if !Equal(w, orig) {
		t.Error("mutating the clone changed the original")
	}
	if doc.LeadingComments[0].Text != "// a" {
		t.Error("document comments are shared")
	}
	if Equal(doc, c) {
		t.Error("mutated clone still equal")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Node
		eq   bool
	}{
		{"same", testWidget(), testWidget(), true},
		{"kind", NewComment("x"), NewScalar("x"), false},
		{"name", NewObject("A"), NewObject("B"), false},
		{"order", NewObject("A").Set("x", NewScalar("1")).Set("y", NewScalar("2")),
			NewObject("A").Set("y", NewScalar("2")).Set("x", NewScalar("1")), false},
		{"value kind", NewKeyValuePair("x", NewScalar("@B")), NewKeyValuePair("x", NewObject("B")), false},
		{"comment text", NewComment("// a"), NewComment("// b"), false},
		{"nil", nil, nil, true},
		{"typed nil", (*Object)(nil), nil, true},
		{"nil and object", NewObject("A"), (*Object)(nil), false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Equal(test.a, test.b); got != test.eq {
				t.Errorf("Equal = %t, want %t", got, test.eq)
			}
			if got := Equal(test.b, test.a); got != test.eq {
				t.Errorf("reversed Equal = %t, want %t", got, test.eq)
			}
		})
	}
}
