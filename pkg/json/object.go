package json

import (
	"golang.org/x/exp/slices"
)

// Member is a single name/value pair of an Object.
type Member struct {
	Name  string
	Value Value
}

// Object is a JSON object that remembers the order its members were added
// in. Names are unique: setting an existing name replaces its value and
// keeps its position.
//
// The zero value is an empty object ready to use. An Object is not safe
// for concurrent mutation.
type Object struct {
	members []Member
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{}
}

func (o *Object) index(name string) int {
	return slices.IndexFunc(o.members, func(m Member) bool {
		return m.Name == name
	})
}

// Set adds or replaces the member with the given name and returns the
// object, so calls can be chained.
func (o *Object) Set(name string, value Value) *Object {
	if i := o.index(name); i >= 0 {
		o.members[i].Value = value
		return o
	}
	o.members = append(o.members, Member{Name: name, Value: value})
	return o
}

func (o *Object) Get(name string) (Value, bool) {
	if i := o.index(name); i >= 0 {
		return o.members[i].Value, true
	}
	return Value{}, false
}

func (o *Object) Has(name string) bool {
	return o.index(name) >= 0
}

// Delete removes the named member, reporting whether it was present.
func (o *Object) Delete(name string) bool {
	i := o.index(name)
	if i < 0 {
		return false
	}
	o.members = slices.Delete(o.members, i, i+1)
	if len(o.members) == 0 {
		o.members = nil
	}
	return true
}

func (o *Object) Len() int {
	return len(o.members)
}

// Names returns the member names in order.
func (o *Object) Names() []string {
	if len(o.members) == 0 {
		return nil
	}
	names := make([]string, 0, len(o.members))
	for _, m := range o.members {
		names = append(names, m.Name)
	}
	return names
}

// Members returns a copy of the members in order.
func (o *Object) Members() []Member {
	return slices.Clone(o.members)
}

// Range calls fn for each member in order until fn returns false.
func (o *Object) Range(fn func(name string, value Value) bool) {
	for _, m := range o.members {
		if !fn(m.Name, m.Value) {
			return
		}
	}
}
