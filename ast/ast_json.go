package ast

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrDecode = errors.New("ast decode error")

func (c *Comment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type Type   `json:"type"`
		Text string `json:"text"`
	}{CommentType, c.Text})
}

func (s *Scalar) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type Type   `json:"type"`
		Raw  string `json:"raw"`
	}{ScalarType, s.Raw})
}

func (kv *KeyValuePair) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  Type   `json:"type"`
		Key   string `json:"key"`
		Value Value  `json:"value"`
	}{KeyValueType, kv.Key, kv.Value})
}

func (o *Object) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type       Type       `json:"type"`
		Name       string     `json:"name"`
		Properties []Property `json:"properties,omitempty"`
		Children   []Child    `json:"children,omitempty"`
	}{ObjectType, o.Name, o.Properties, o.Children})
}

func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type             Type       `json:"type"`
		LeadingComments  []*Comment `json:"leadingComments,omitempty"`
		Root             *Object    `json:"root"`
		TrailingComments []*Comment `json:"trailingComments,omitempty"`
	}{DocumentType, d.LeadingComments, d.Root, d.TrailingComments})
}

type irBase struct {
	Type             *Type             `json:"type"`
	Text             string            `json:"text"`
	Raw              string            `json:"raw"`
	Key              string            `json:"key"`
	Value            json.RawMessage   `json:"value"`
	Name             string            `json:"name"`
	Properties       []json.RawMessage `json:"properties"`
	Children         []json.RawMessage `json:"children"`
	LeadingComments  []json.RawMessage `json:"leadingComments"`
	Root             json.RawMessage   `json:"root"`
	TrailingComments []json.RawMessage `json:"trailingComments"`
}

// FromJSON decodes a node from the JSON produced by marshalling a node.
// The result is checked to be a well formed tree.
func FromJSON(d []byte) (Node, error) {
	b := &irBase{}
	if err := json.Unmarshal(d, b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if b.Type == nil {
		return nil, fmt.Errorf("%w: missing node type", ErrDecode)
	}
	switch *b.Type {
	case CommentType:
		return NewComment(b.Text), nil
	case ScalarType:
		return NewScalar(b.Raw), nil
	case KeyValueType:
		if b.Key == "" {
			return nil, fmt.Errorf("%w: empty property key", ErrDecode)
		}
		v, err := decodeAs[Value](b.Value, "property value")
		if err != nil {
			return nil, err
		}
		return NewKeyValuePair(b.Key, v), nil
	case ObjectType:
		if b.Name == "" {
			return nil, fmt.Errorf("%w: empty object name", ErrDecode)
		}
		o := NewObject(b.Name)
		for _, pd := range b.Properties {
			p, err := decodeAs[Property](pd, "property")
			if err != nil {
				return nil, err
			}
			o.AddProperty(p)
		}
		for _, cd := range b.Children {
			c, err := decodeAs[Child](cd, "child")
			if err != nil {
				return nil, err
			}
			o.AddChild(c)
		}
		return o, nil
	case DocumentType:
		doc := &Document{}
		root, err := decodeAs[*Object](b.Root, "root")
		if err != nil {
			return nil, err
		}
		doc.Root = root
		for _, cd := range b.LeadingComments {
			c, err := decodeAs[*Comment](cd, "leading comment")
			if err != nil {
				return nil, err
			}
			doc.LeadingComments = append(doc.LeadingComments, c)
		}
		for _, cd := range b.TrailingComments {
			c, err := decodeAs[*Comment](cd, "trailing comment")
			if err != nil {
				return nil, err
			}
			doc.TrailingComments = append(doc.TrailingComments, c)
		}
		return doc, nil
	}
	return nil, fmt.Errorf("%w: unknown node type %d", ErrDecode, *b.Type)
}

func decodeAs[T Node](d json.RawMessage, what string) (T, error) {
	var zero T
	if len(d) == 0 || string(d) == "null" {
		return zero, fmt.Errorf("%w: missing %s", ErrDecode, what)
	}
	n, err := FromJSON(d)
	if err != nil {
		return zero, err
	}
	t, ok := n.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s cannot be a %s", ErrDecode, what, n.Type())
	}
	return t, nil
}
