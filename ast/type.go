package ast

import "fmt"

type Type int

const (
	CommentType Type = iota
	KeyValueType
	ScalarType
	ObjectType
	DocumentType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		CommentType:  "Comment",
		KeyValueType: "KeyValuePair",
		ScalarType:   "Scalar",
		ObjectType:   "Object",
		DocumentType: "Document",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Comment":      CommentType,
		"KeyValuePair": KeyValueType,
		"Scalar":       ScalarType,
		"Object":       ObjectType,
		"Document":     DocumentType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		CommentType,
		KeyValueType,
		ScalarType,
		ObjectType,
		DocumentType,
	}
}
