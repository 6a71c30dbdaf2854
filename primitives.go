package pave

import (
	"math"
	"reflect"
	"regexp"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	uuidPattern  = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	emailPattern = regexp.MustCompile(`(?i)^[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+(?:\.[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+)*@(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\.)+[a-z0-9](?:[a-z0-9-]*[a-z0-9])?$`)
)

///////////////////////////////////////////////////////////////////////////////
// Options
///////////////////////////////////////////////////////////////////////////////

// IntegerOpts holds the inclusive bounds of Integer and StringToInteger.
// A nil bound is unconstrained.
type IntegerOpts struct {
	Min *int64
	Max *int64
}

// FloatOpts holds the inclusive bounds of Float and StringToFloat.
type FloatOpts struct {
	Min *float64
	Max *float64
}

// StringOpts configures String. Min and Max bound the length in characters.
type StringOpts struct {
	Pattern *regexp.Regexp
	Min     *int
	Max     *int
}

// firstOpt returns the first element of opts or the zero value. Constructors
// take their options variadically so the common unconstrained case needs no
// literal.
func firstOpt[O any](opts []O) O {
	if len(opts) > 0 {
		return opts[0]
	}
	var zero O
	return zero
}

///////////////////////////////////////////////////////////////////////////////
// Booleans
///////////////////////////////////////////////////////////////////////////////

// Boolean accepts boolean values only.
func Boolean() Validator[bool] {
	return newValidator[bool](validateBoolean)
}

func validateBoolean(value any, path string) (any, error) {
	if KindOf(value) != KindBoolean {
		return nil, typeMismatch(path, KindNameBoolean)
	}
	return reflect.ValueOf(value).Bool(), nil
}

// StringToBoolean is Boolean that also accepts the strings "1", "yes",
// "true", "0", "no" and "false" in any letter case.
func StringToBoolean() Validator[bool] {
	return newValidator[bool](func(value any, path string) (any, error) {
		if KindOf(value) == KindString {
			value = parseBoolString(reflect.ValueOf(value).String())
		}
		return validateBoolean(value, path)
	})
}

///////////////////////////////////////////////////////////////////////////////
// Numbers
///////////////////////////////////////////////////////////////////////////////

// Integer accepts integral numbers within the int64 range and returns them
// as int64.
func Integer(opts ...IntegerOpts) Validator[int64] {
	return newValidator[int64](integerFunc(firstOpt(opts)))
}

func integerFunc(opts IntegerOpts) ValidateFunc {
	return func(value any, path string) (any, error) {
		intValue, ok := toInt64(value)
		if !ok {
			return nil, typeMismatch(path, KindNameInteger)
		}
		if err := checkRange(opts.Min, opts.Max, intValue, path); err != nil {
			return nil, err
		}
		return intValue, nil
	}
}

// StringToInteger is Integer that parses strings as base-10 integers first.
func StringToInteger(opts ...IntegerOpts) Validator[int64] {
	validate := integerFunc(firstOpt(opts))
	return newValidator[int64](func(value any, path string) (any, error) {
		if KindOf(value) == KindString {
			value = parseIntString(reflect.ValueOf(value).String())
		}
		return validate(value, path)
	})
}

// Float accepts finite numbers and numeric strings and returns them as
// float64.
func Float(opts ...FloatOpts) Validator[float64] {
	return newValidator[float64](floatFunc(firstOpt(opts)))
}

func floatFunc(opts FloatOpts) ValidateFunc {
	return func(value any, path string) (any, error) {
		floatValue, ok := coerceFloat(value)
		if !ok || math.IsNaN(floatValue) || math.IsInf(floatValue, 0) {
			return nil, typeMismatch(path, KindNameFloat)
		}
		if err := checkRange(opts.Min, opts.Max, floatValue, path); err != nil {
			return nil, err
		}
		return floatValue, nil
	}
}

func coerceFloat(value any) (float64, bool) {
	switch KindOf(value) {
	case KindNumber:
		return toFloat64(value)
	case KindString:
		return parseFloatString(reflect.ValueOf(value).String()), true
	default:
		return 0, false
	}
}

// StringToFloat is Float that parses strings first.
func StringToFloat(opts ...FloatOpts) Validator[float64] {
	validate := floatFunc(firstOpt(opts))
	return newValidator[float64](func(value any, path string) (any, error) {
		if KindOf(value) == KindString {
			value = parseFloatString(reflect.ValueOf(value).String())
		}
		return validate(value, path)
	})
}

///////////////////////////////////////////////////////////////////////////////
// Strings
///////////////////////////////////////////////////////////////////////////////

// String accepts string values. The pattern is checked before the length
// bounds, and length is counted in runes.
func String(opts ...StringOpts) Validator[string] {
	o := firstOpt(opts)
	return newValidator[string](func(value any, path string) (any, error) {
		if KindOf(value) != KindString {
			return nil, typeMismatch(path, KindNameString)
		}
		s := reflect.ValueOf(value).String()

		if o.Pattern != nil && !o.Pattern.MatchString(s) {
			return nil, patternMismatch(path)
		}
		if err := checkCount(o.Min, o.Max, utf8.RuneCountInString(s), UnitCharacters, path); err != nil {
			return nil, err
		}
		return s, nil
	})
}

// UUID accepts strings in the canonical 8-4-4-4-12 hexadecimal form.
func UUID() Validator[string] {
	return String(StringOpts{Pattern: uuidPattern})
}

// UUIDValue is UUID returning the parsed uuid.UUID.
func UUIDValue() Validator[uuid.UUID] {
	return TransformErr(UUID(), func(s string, path string) (uuid.UUID, error) {
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, Fail(path, "doesn't match the pattern")
		}
		return id, nil
	})
}

// Email accepts strings shaped like an e-mail address.
func Email() Validator[string] {
	return String(StringOpts{Pattern: emailPattern})
}
