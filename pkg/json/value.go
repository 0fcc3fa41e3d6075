package json

import (
	"fmt"
	"strconv"
)

// Kind identifies which JSON type a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Value is any JSON value. The zero Value is null.
//
// Values built by the constructors in this package compare equal with
// reflect.DeepEqual to the same value produced by Decode.
type Value struct {
	kind Kind
	b    bool
	// s is the string contents for KindString and the literal for KindNumber.
	s     string
	obj   *Object
	items []Value
}

func Null() Value {
	return Value{}
}

func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

func StringValue(s string) Value {
	return Value{kind: KindString, s: s}
}

func NumberValue(n Number) Value {
	return Value{kind: KindNumber, s: string(n)}
}

func IntValue(i int64) Value {
	return NumberValue(Number(strconv.FormatInt(i, 10)))
}

// FloatValue returns a number value for f. NaN and infinities have no JSON
// representation and make Encode fail.
func FloatValue(f float64) Value {
	return NumberValue(Number(strconv.FormatFloat(f, 'g', -1, 64)))
}

// ObjectValue wraps obj, which is shared rather than copied. A nil obj is
// treated as an empty object.
func ObjectValue(obj *Object) Value {
	if obj == nil {
		obj = NewObject()
	}
	return Value{kind: KindObject, obj: obj}
}

// ArrayValue returns an array holding a copy of items.
func ArrayValue(items ...Value) Value {
	v := Value{kind: KindArray}
	if len(items) > 0 {
		v.items = append(make([]Value, 0, len(items)), items...)
	}
	return v
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == KindNull
}

func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// Text returns the contents of a string value.
func (v Value) Text() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

func (v Value) Number() (Number, bool) {
	if v.kind != KindNumber {
		return "", false
	}
	return Number(v.s), true
}

func (v Value) Object() (*Object, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

// Array returns the elements of an array value. The slice is shared with v.
func (v Value) Array() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.items, true
}

// String returns the compact JSON encoding of v.
func (v Value) String() string {
	s, err := Encode(v)
	if err != nil {
		return fmt.Sprintf("<invalid-json %q>", err)
	}
	return s
}
