package pave

import "strconv"

// ArrayOpts bounds the number of items accepted by ArrayOf.
type ArrayOpts struct {
	Min *int
	Max *int
}

// ArrayOf accepts sequences whose items all pass item. Items are validated
// in order and the first failing item aborts validation.
//
// Each item result is stored as a T, so null and Undefined results from
// Nullable or Optional items become the zero T. Pass item.Any() to keep
// them in a []any.
func ArrayOf[T any](item Validator[T], opts ...ArrayOpts) Validator[[]T] {
	o := firstOpt(opts)
	return newValidator[[]T](func(value any, path string) (any, error) {
		input, ok := asArray(value)
		if !ok {
			return nil, typeMismatch(path, KindNameArray)
		}
		if err := checkCount(o.Min, o.Max, len(input), UnitItems, path); err != nil {
			return nil, err
		}

		result := make([]T, len(input))
		for i, elem := range input {
			out, err := item.Validate(elem, indexPath(path, i))
			if err != nil {
				return nil, err
			}
			result[i] = out
		}
		return result, nil
	})
}

func indexPath(path string, index int) string {
	return path + IndexPathOpen + strconv.Itoa(index) + IndexPathClose
}
