package ast

// Node is implemented by every element of the tree.
type Node interface {
	Type() Type
	node()
}

// Value is a property value: a *Scalar or an *Object.
type Value interface {
	Node
	CloneValue() Value
	value()
}

// Property is an entry of an object's properties: a *Comment or a
// *KeyValuePair.
type Property interface {
	Node
	CloneProperty() Property
	property()
}

// Child is an entry of an object's children: a *Comment or an *Object.
type Child interface {
	Node
	CloneChild() Child
	child()
}

// Comment is a single line comment, including its leading "//".
type Comment struct {
	Text string
}

func NewComment(text string) *Comment {
	return &Comment{Text: text}
}

func (c *Comment) Type() Type { return CommentType }
func (c *Comment) node()      {}
func (c *Comment) property()  {}
func (c *Comment) child()     {}

func (c *Comment) Clone() *Comment {
	return &Comment{Text: c.Text}
}

func (c *Comment) CloneProperty() Property { return c.Clone() }
func (c *Comment) CloneChild() Child       { return c.Clone() }

// KeyValuePair is a named property.
type KeyValuePair struct {
	Key   string
	Value Value
}

func NewKeyValuePair(key string, v Value) *KeyValuePair {
	return &KeyValuePair{Key: key, Value: v}
}

func (kv *KeyValuePair) Type() Type { return KeyValueType }
func (kv *KeyValuePair) node()      {}
func (kv *KeyValuePair) property()  {}

func (kv *KeyValuePair) Clone() *KeyValuePair {
	res := &KeyValuePair{Key: kv.Key}
	if kv.Value != nil {
		res.Value = kv.Value.CloneValue()
	}
	return res
}

func (kv *KeyValuePair) CloneProperty() Property { return kv.Clone() }

// Scalar is a literal property value kept as its source text.
type Scalar struct {
	Raw string
}

func NewScalar(raw string) *Scalar {
	return &Scalar{Raw: raw}
}

func (s *Scalar) Type() Type { return ScalarType }
func (s *Scalar) node()      {}
func (s *Scalar) value()     {}

func (s *Scalar) Clone() *Scalar {
	return &Scalar{Raw: s.Raw}
}

func (s *Scalar) CloneValue() Value { return s.Clone() }

// Document is a parsed GML input: exactly one root object, surrounded by
// comments.
type Document struct {
	LeadingComments  []*Comment
	Root             *Object
	TrailingComments []*Comment
}

func (d *Document) Type() Type { return DocumentType }
func (d *Document) node()      {}

func (d *Document) Clone() *Document {
	res := &Document{
		LeadingComments:  cloneComments(d.LeadingComments),
		TrailingComments: cloneComments(d.TrailingComments),
	}
	if d.Root != nil {
		res.Root = d.Root.Clone()
	}
	return res
}

func cloneComments(cs []*Comment) []*Comment {
	if cs == nil {
		return nil
	}
	res := make([]*Comment, len(cs))
	for i, c := range cs {
		res[i] = c.Clone()
	}
	return res
}
