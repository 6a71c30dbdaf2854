package pave

import (
	"errors"
	"strconv"
)

// Alternatives tries each validator in order and returns the result of the
// first one that succeeds. Branch i sees the path p.@alternative(i).
//
// When every branch fails the returned *ValidationError lists the failure
// of each branch in order, both in its message and in Branches. Errors that
// are not validation failures abort the search and are returned unchanged.
func Alternatives[T any](alts ...Validator[T]) Validator[T] {
	return newValidator[T](func(value any, path string) (any, error) {
		branches := make([]*ValidationError, 0, len(alts))
		for i, alt := range alts {
			out, err := alt.run(value, branchPath(path, i))
			if err == nil {
				return out, nil
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				return nil, err
			}
			branches = append(branches, verr)
		}
		return nil, alternativesExhausted(path, branches)
	})
}

func branchPath(path string, index int) string {
	return path + AlternativePathPrefix + strconv.Itoa(index) + AlternativePathSuffix
}
