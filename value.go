package pave

import (
	"encoding/json"
	"reflect"
)

///////////////////////////////////////////////////////////////////////////////
// Decoded values
///////////////////////////////////////////////////////////////////////////////

type undefinedValue struct{}

func (undefinedValue) String() string { return "undefined" }

// Undefined is the value validators receive for a field that is absent from
// its enclosing object. It is distinct from nil, which stands for an explicit
// null.
var Undefined any = undefinedValue{}

// IsUndefined reports whether value is the absent sentinel.
func IsUndefined(value any) bool {
	_, ok := value.(undefinedValue)
	return ok
}

// Kind classifies a decoded value.
type Kind int

const (
	KindUnknown Kind = iota
	KindUndefined
	KindNull
	KindBoolean
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// KindOf classifies value as one of the decoded value kinds.
//
// Any Go integer, unsigned integer or float type, as well as json.Number, is
// a number. Any slice or array is an array and any map keyed by strings is an
// object. Named types classify by their underlying kind.
func KindOf(value any) Kind {
	switch value.(type) {
	case nil:
		return KindNull
	case undefinedValue:
		return KindUndefined
	case json.Number:
		return KindNumber
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		return KindBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.String:
		return KindString
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return KindObject
		}
	}
	return KindUnknown
}

// asObject narrows an object-kind value to map[string]any. Maps of other
// value types are copied into a fresh map.
func asObject(value any) (map[string]any, bool) {
	if m, ok := value.(map[string]any); ok {
		return m, m != nil
	}
	if KindOf(value) != KindObject {
		return nil, false
	}

	rv := reflect.ValueOf(value)
	if rv.IsNil() {
		return nil, false
	}

	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// asArray narrows an array-kind value to []any.
func asArray(value any) ([]any, bool) {
	if s, ok := value.([]any); ok {
		return s, s != nil
	}
	if KindOf(value) != KindArray {
		return nil, false
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return nil, false
	}

	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
