package ast

// Equal reports whether a and b are structurally equal: same node kinds,
// same text, and equal property and child lists in the same order.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return isNil(a) && isNil(b)
	}
	if a.Type() != b.Type() {
		return false
	}
	switch x := a.(type) {
	case *Comment:
		y := b.(*Comment)
		if x == nil || y == nil {
			return x == y
		}
		return x.Text == y.Text
	case *Scalar:
		y := b.(*Scalar)
		if x == nil || y == nil {
			return x == y
		}
		return x.Raw == y.Raw
	case *KeyValuePair:
		y := b.(*KeyValuePair)
		if x == nil || y == nil {
			return x == y
		}
		return x.Key == y.Key && Equal(x.Value, y.Value)
	case *Object:
		return equalObjects(x, b.(*Object))
	case *Document:
		y := b.(*Document)
		if x == nil || y == nil {
			return x == y
		}
		return equalComments(x.LeadingComments, y.LeadingComments) &&
			equalObjects(x.Root, y.Root) &&
			equalComments(x.TrailingComments, y.TrailingComments)
	}
	return false
}

func equalObjects(x, y *Object) bool {
	if x == nil || y == nil {
		return x == y
	}
	if x.Name != y.Name {
		return false
	}
	if len(x.Properties) != len(y.Properties) || len(x.Children) != len(y.Children) {
		return false
	}
	for i := range x.Properties {
		if !Equal(x.Properties[i], y.Properties[i]) {
			return false
		}
	}
	for i := range x.Children {
		if !Equal(x.Children[i], y.Children[i]) {
			return false
		}
	}
	return true
}

func equalComments(xs, ys []*Comment) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if !Equal(xs[i], ys[i]) {
			return false
		}
	}
	return true
}

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	switch x := n.(type) {
	case *Comment:
		return x == nil
	case *Scalar:
		return x == nil
	case *KeyValuePair:
		return x == nil
	case *Object:
		return x == nil
	case *Document:
		return x == nil
	}
	return false
}
