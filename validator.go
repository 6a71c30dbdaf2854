package pave

///////////////////////////////////////////////////////////////////////////////
// Validator
///////////////////////////////////////////////////////////////////////////////

// ValidateFunc is the raw shape every validator shares. It receives a decoded
// value and the path label of its location and returns the normalized value
// or a failure.
type ValidateFunc func(value any, path string) (any, error)

// Validator checks a decoded value and normalizes it into a T.
//
// Validators are immutable once built and hold no state between calls, so a
// single tree may be shared freely between goroutines. The zero Validator is
// not usable; build one with a constructor from this package or with Func.
type Validator[T any] struct {
	run ValidateFunc
}

// Func wraps fn as a Validator. Invalid input should be reported with Fail so
// that Alternatives can recover from it.
func Func[T any](fn func(value any, path string) (T, error)) Validator[T] {
	return Validator[T]{
		run: func(value any, path string) (any, error) {
			return fn(value, path)
		},
	}
}

func newValidator[T any](run ValidateFunc) Validator[T] {
	return Validator[T]{run: run}
}

// Validate checks value found at path. On failure the zero T is returned
// along with the error.
//
// A successful result that is not a T, such as the Undefined produced by
// Optional for an absent field, is returned as the zero T. Use Any to keep
// those sentinels.
func (v Validator[T]) Validate(value any, path string) (T, error) {
	out, err := v.run(value, path)
	if err != nil {
		var zero T
		return zero, err
	}
	return cast[T](out), nil
}

// Any returns the type erased view of v. Results keep the Undefined and nil
// sentinels, which is how Object tells an absent result from a present one.
func (v Validator[T]) Any() Validator[any] {
	return Validator[any]{run: v.run}
}
