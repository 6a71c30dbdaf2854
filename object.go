package pave

import (
	"fmt"
	"sort"
)

///////////////////////////////////////////////////////////////////////////////
// Object
///////////////////////////////////////////////////////////////////////////////

// ObjectField declares one named field of an Object.
type ObjectField struct {
	Name      string
	Validator Validator[any]
}

// Fields is the ordered field list of an Object. Fields are validated in
// declaration order.
type Fields []ObjectField

// Field declares the field name validated by v.
func Field[T any](name string, v Validator[T]) ObjectField {
	return ObjectField{Name: name, Validator: v.Any()}
}

// ObjectOpts configures Object.
//
// IgnoreUnknown copies undeclared keys into the result verbatim instead of
// failing. Min and Max bound the number of keys of the input, undeclared
// keys included.
type ObjectOpts struct {
	IgnoreUnknown bool
	Min           *int
	Max           *int
}

// Object accepts string keyed mappings and validates each declared field.
//
// Absent fields are passed to their validator as Undefined. A field whose
// result is Undefined is left out of the returned map, so Optional fields
// only appear when present.
//
// Object panics if two fields share a name.
func Object(fields Fields, opts ...ObjectOpts) Validator[map[string]any] {
	o := firstOpt(opts)

	declared := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		if _, dup := declared[field.Name]; dup {
			panic(fmt.Sprintf("pave: duplicate object field %q", field.Name))
		}
		declared[field.Name] = struct{}{}
	}

	return newValidator[map[string]any](func(value any, path string) (any, error) {
		input, ok := asObject(value)
		if !ok {
			return nil, typeMismatch(path, KindNameObject)
		}

		result := make(map[string]any, len(fields))
		for _, field := range fields {
			fieldValue, present := input[field.Name]
			if !present {
				fieldValue = Undefined
			}

			out, err := field.Validator.run(fieldValue, fieldPath(path, field.Name))
			if err != nil {
				return nil, err
			}
			if !IsUndefined(out) {
				result[field.Name] = out
			}
		}

		if err := checkCount(o.Min, o.Max, len(input), UnitKeys, path); err != nil {
			return nil, err
		}

		keys := make([]string, 0, len(input))
		for key := range input {
			if _, ok := declared[key]; !ok {
				keys = append(keys, key)
			}
		}
		sort.Strings(keys)

		for _, key := range keys {
			if !o.IgnoreUnknown {
				return nil, unknownProperty(fieldPath(path, key))
			}
			result[key] = input[key]
		}

		return result, nil
	})
}

func fieldPath(path string, name string) string {
	return path + FieldPathSeparator + name
}
