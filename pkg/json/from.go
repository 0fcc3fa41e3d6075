package json

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/slices"
)

// From converts a Go value into a Value.
//
// Supported are nil, bool, string, the integer and float types, Number,
// Value, *Object, []Value, []any, []string and map[string]any. Go maps are
// unordered, so members converted from a map are sorted by name; build an
// Object directly when the order matters.
func From(x any) (Value, error) {
	switch v := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v, nil
	case *Object:
		return ObjectValue(v), nil
	case bool:
		return BoolValue(v), nil
	case string:
		return StringValue(v), nil
	case Number:
		return NumberValue(v), nil
	case int:
		return IntValue(int64(v)), nil
	case int8:
		return IntValue(int64(v)), nil
	case int16:
		return IntValue(int64(v)), nil
	case int32:
		return IntValue(int64(v)), nil
	case int64:
		return IntValue(v), nil
	case uint:
		return NumberValue(Number(strconv.FormatUint(uint64(v), 10))), nil
	case uint8:
		return IntValue(int64(v)), nil
	case uint16:
		return IntValue(int64(v)), nil
	case uint32:
		return IntValue(int64(v)), nil
	case uint64:
		return NumberValue(Number(strconv.FormatUint(v, 10))), nil
	case float32:
		return NumberValue(Number(strconv.FormatFloat(float64(v), 'g', -1, 32))), nil
	case float64:
		return FloatValue(v), nil
	case []Value:
		return ArrayValue(v...), nil
	case []string:
		items := make([]Value, 0, len(v))
		for _, s := range v {
			items = append(items, StringValue(s))
		}
		return ArrayValue(items...), nil
	case []any:
		items := make([]Value, 0, len(v))
		for i, item := range v {
			value, err := From(item)
			if err != nil {
				return Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			items = append(items, value)
		}
		return ArrayValue(items...), nil
	case map[string]any:
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		slices.Sort(names)

		obj := NewObject()
		for _, name := range names {
			value, err := From(v[name])
			if err != nil {
				return Value{}, fmt.Errorf("member %q: %w", name, err)
			}
			obj.Set(name, value)
		}
		return ObjectValue(obj), nil
	}
	return Value{}, fmt.Errorf("json: cannot convert %T to a JSON value", x)
}
