package pave

import "github.com/mohae/deepcopy"

///////////////////////////////////////////////////////////////////////////////
// Presence modifiers
///////////////////////////////////////////////////////////////////////////////

// Optional accepts an absent value without consulting inner. The result is
// then Undefined, which Validate reports as the zero T and Object leaves out
// of its result. Anything else, null included, goes to inner.
func Optional[T any](inner Validator[T]) Validator[T] {
	return newValidator[T](func(value any, path string) (any, error) {
		if IsUndefined(value) {
			return Undefined, nil
		}
		return inner.run(value, path)
	})
}

// Nullable accepts null without consulting inner and returns nil. Anything
// else, absence included, goes to inner.
func Nullable[T any](inner Validator[T]) Validator[T] {
	return newValidator[T](func(value any, path string) (any, error) {
		if value == nil {
			return nil, nil
		}
		return inner.run(value, path)
	})
}

// DefaultValue returns a deep copy of fallback for an absent value. Anything
// else, null included, goes to inner. The fallback is not validated.
func DefaultValue[T any](fallback T, inner Validator[T]) Validator[T] {
	return newValidator[T](func(value any, path string) (any, error) {
		if IsUndefined(value) {
			return deepcopy.Copy(fallback), nil
		}
		return inner.run(value, path)
	})
}
