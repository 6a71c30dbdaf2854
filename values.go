package pave

///////////////////////////////////////////////////////////////////////////////
// Fixed values
///////////////////////////////////////////////////////////////////////////////

// OneOf accepts a value equal to one of values and returns the matching
// entry of values.
//
// Equality is strict and by value for primitives. Numbers compare
// numerically, so OneOf(1, 2) accepts a decoded json.Number("2") and returns
// the int 2. Objects and arrays never match.
func OneOf[T any](values ...T) Validator[T] {
	enumerated := make([]any, len(values))
	for i, value := range values {
		enumerated[i] = value
	}

	return newValidator[T](func(value any, path string) (any, error) {
		for _, candidate := range enumerated {
			if sameValue(candidate, value) {
				return candidate, nil
			}
		}
		return nil, notEnumerated(path, enumerated)
	})
}

// Exact accepts a value equal to expected under the same rule as OneOf.
func Exact[T any](expected T) Validator[T] {
	var boxed any = expected
	return newValidator[T](func(value any, path string) (any, error) {
		if !sameValue(boxed, value) {
			return nil, notExact(path, boxed)
		}
		return boxed, nil
	})
}
