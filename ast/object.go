package ast

// LayoutKey is the property key conventionally holding an object's layout.
const LayoutKey = "layout"

// Object is a class tagged object. Properties holds *Comment and
// *KeyValuePair entries, Children holds *Comment and *Object entries, both
// in source order. Name must not be empty.
type Object struct {
	Name       string
	Properties []Property
	Children   []Child
}

func NewObject(name string) *Object {
	return &Object{Name: name}
}

func (o *Object) Type() Type { return ObjectType }
func (o *Object) node()      {}
func (o *Object) value()     {}
func (o *Object) child()     {}

func (o *Object) AddProperty(p Property) *Object {
	o.Properties = append(o.Properties, p)
	return o
}

func (o *Object) AddChild(c Child) *Object {
	o.Children = append(o.Children, c)
	return o
}

// Set appends a key value pair property.
func (o *Object) Set(key string, v Value) *Object {
	return o.AddProperty(NewKeyValuePair(key, v))
}

// IsEmpty reports whether the object has neither properties nor children.
func (o *Object) IsEmpty() bool {
	return len(o.Properties) == 0 && len(o.Children) == 0
}

// Clone returns a deep copy of o.
func (o *Object) Clone() *Object {
	res := &Object{Name: o.Name}
	if o.Properties != nil {
		res.Properties = make([]Property, len(o.Properties))
		for i, p := range o.Properties {
			res.Properties[i] = p.CloneProperty()
		}
	}
	if o.Children != nil {
		res.Children = make([]Child, len(o.Children))
		for i, c := range o.Children {
			res.Children[i] = c.CloneChild()
		}
	}
	return res
}

func (o *Object) CloneValue() Value { return o.Clone() }
func (o *Object) CloneChild() Child { return o.Clone() }

// Get returns the value of the first property with key k.
func (o *Object) Get(k string) (Value, bool) {
	for _, p := range o.Properties {
		kv, ok := p.(*KeyValuePair)
		if !ok || kv.Key != k {
			continue
		}
		return kv.Value, true
	}
	return nil, false
}

// GetScalar returns the raw text of the property k if it is a scalar.
func (o *Object) GetScalar(k string) (string, bool) {
	v, ok := o.Get(k)
	if !ok {
		return "", false
	}
	s, ok := v.(*Scalar)
	if !ok {
		return "", false
	}
	return s.Raw, true
}

// Layout returns the object value of the "layout" property. It reports
// false if there is no such property or if its value is not an object.
func (o *Object) Layout() (*Object, bool) {
	v, ok := o.Get(LayoutKey)
	if !ok {
		return nil, false
	}
	lo, ok := v.(*Object)
	return lo, ok
}

// KeyValues returns the key value pairs of o, skipping comments.
func (o *Object) KeyValues() []*KeyValuePair {
	var res []*KeyValuePair
	for _, p := range o.Properties {
		if kv, ok := p.(*KeyValuePair); ok {
			res = append(res, kv)
		}
	}
	return res
}

// ForEachProperty calls f for each scalar valued property in order,
// skipping the layout property and comments.
func (o *Object) ForEachProperty(f func(key string, v *Scalar)) {
	for _, kv := range o.KeyValues() {
		if kv.Key == LayoutKey {
			continue
		}
		if s, ok := kv.Value.(*Scalar); ok {
			f(kv.Key, s)
		}
	}
}

// ChildObjects returns the child objects of o, skipping comments. Objects
// held by properties, such as the layout, are not children.
func (o *Object) ChildObjects() []*Object {
	var res []*Object
	for _, c := range o.Children {
		if co, ok := c.(*Object); ok {
			res = append(res, co)
		}
	}
	return res
}

// ForEachChildObject calls f for each child object in order until f
// returns false.
func (o *Object) ForEachChildObject(f func(*Object) bool) {
	for _, c := range o.Children {
		co, ok := c.(*Object)
		if !ok {
			continue
		}
		if !f(co) {
			return
		}
	}
}
