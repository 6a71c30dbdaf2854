package pave

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

///////////////////////////////////////////////////////////////////////////////
// Helpers
///////////////////////////////////////////////////////////////////////////////

// boolStrings is the case-insensitive table used by StringToBoolean.
var boolStrings = map[string]bool{
	"1":     true,
	"yes":   true,
	"true":  true,
	"0":     false,
	"no":    false,
	"false": false,
}

// Ptr returns a pointer to v. It keeps option literals short:
//
//	pave.Integer(pave.IntegerOpts{Min: pave.Ptr[int64](1)})
func Ptr[T any](v T) *T {
	return &v
}

// cast converts a raw validator result to T. Results that are not a T, such
// as the Undefined and nil sentinels, become the zero value.
func cast[T any](out any) T {
	if typed, ok := out.(T); ok {
		return typed
	}
	var zero T
	return zero
}

// parseBoolString maps s through boolStrings. Unmapped strings become
// Undefined so the boolean check rejects them.
func parseBoolString(s string) any {
	if b, ok := boolStrings[strings.ToLower(s)]; ok {
		return b
	}
	return Undefined
}

var (
	leadingInt   = regexp.MustCompile(`^[+-]?[0-9]+`)
	leadingFloat = regexp.MustCompile(`^[+-]?(?:Infinity|(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?)`)
)

// parseIntString reads the base-10 integer at the start of s, ignoring
// leading whitespace and anything after the digits. It yields NaN when s
// doesn't start with one.
func parseIntString(s string) any {
	digits := leadingInt.FindString(strings.TrimLeftFunc(s, unicode.IsSpace))
	if digits == "" {
		return math.NaN()
	}
	intValue, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return math.NaN()
	}
	return intValue
}

// parseFloatString reads the decimal number at the start of s the same way
// parseIntString reads integers. Go literal forms such as hex floats and
// digit separators are not numbers here.
func parseFloatString(s string) float64 {
	number := leadingFloat.FindString(strings.TrimLeftFunc(s, unicode.IsSpace))
	if number == "" {
		return math.NaN()
	}
	// Out of range exponents come back as ±Inf or 0 alongside ErrRange.
	floatValue, _ := strconv.ParseFloat(number, 64)
	return floatValue
}

// toFloat64 converts any number-kind value to float64.
func toFloat64(value any) (float64, bool) {
	if n, ok := value.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// toInt64 converts a number-kind value holding an integral value within the
// int64 range. NaN, infinities and fractions are rejected.
func toInt64(value any) (int64, bool) {
	if n, ok := value.(json.Number); ok {
		if intValue, err := n.Int64(); err == nil {
			return intValue, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt64(f)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	case reflect.Float32, reflect.Float64:
		return floatToInt64(rv.Float())
	default:
		return 0, false
	}
}

func floatToInt64(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return 0, false
	}
	// float64(math.MaxInt64) rounds up to 2^63, which is out of range.
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func formatNumber(value any) string {
	switch n := value.(type) {
	case int64:
		return strconv.FormatInt(n, 10)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", n)
	}
}

// stringify renders a value for enumerated and exact value messages.
func stringify(value any) string {
	if IsUndefined(value) {
		return "undefined"
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(data)
}

// sameValue reports strict equality between two primitive decoded values.
//
// Numbers compare numerically whatever their Go type, strings and booleans
// compare by value (named types included), nil equals nil and Undefined
// equals Undefined. Objects and arrays are never equal to anything.
func sameValue(a, b any) bool {
	kind := KindOf(a)
	if kind != KindOf(b) {
		return false
	}

	switch kind {
	case KindNull, KindUndefined:
		return true
	case KindBoolean:
		return reflect.ValueOf(a).Bool() == reflect.ValueOf(b).Bool()
	case KindString:
		return reflect.ValueOf(a).String() == reflect.ValueOf(b).String()
	case KindNumber:
		ai, aok := toInt64(a)
		bi, bok := toInt64(b)
		if aok && bok {
			return ai == bi
		}
		af, aok := toFloat64(a)
		bf, bok := toFloat64(b)
		return aok && bok && af == bf
	default:
		return false
	}
}
