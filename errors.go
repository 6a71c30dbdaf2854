package pave

import (
	"errors"
	"fmt"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// Errors
///////////////////////////////////////////////////////////////////////////////

var (
	// ErrValidation matches every *ValidationError through errors.Is.
	ErrValidation = errors.New("validation failed")

	ErrParserAlreadyRegistered  = errors.New("a parser with this name for this source-type is already registered")
	ErrNoParserRegistered       = errors.New("no registered parser found for this type")
	ErrMultipleParsersAvailable = errors.New("multiple parsers available for this source type, use WithParser() to specify which one")
	ErrParserNotFound           = errors.New("specified parser not found for this source type")
	ErrUnexpectedSourceType     = errors.New("unexpected source type for parser")
	ErrInvalidJSON              = errors.New("invalid JSON document")
	ErrInvalidYAML              = errors.New("invalid YAML document")
)

// ValidationError is the single failure kind produced by validators.
//
// Message is the complete human readable text, already qualified with the
// location path. Path is the location that failed. Branches is only set by
// Alternatives and holds the failure of every branch in branch order.
type ValidationError struct {
	Path     string
	Message  string
	Branches []*ValidationError
}

// Error implements the error interface
func (ve *ValidationError) Error() string {
	return ve.Message
}

// Is reports ErrValidation as a match so callers can use errors.Is.
func (ve *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Fail builds a validation failure for path. The formatted reason is
// prefixed with the bracketed path, following the built-in message templates.
//
// Custom validators should return Fail errors for invalid input. Any other
// error they return is treated as a programming error and is never recovered
// by Alternatives.
func Fail(path string, format string, args ...any) error {
	return &ValidationError{
		Path:    path,
		Message: fmt.Sprintf("[%s] %s", path, fmt.Sprintf(format, args...)),
	}
}

// IsValidationError reports whether err is, or wraps, a validation failure.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var verr *ValidationError
	return errors.As(err, &verr)
}

// AsValidationError extracts the validation failure wrapped by err.
func AsValidationError(err error) (*ValidationError, bool) {
	if err == nil {
		return nil, false
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

///////////////////////////////////////////////////////////////////////////////
// Message templates
///////////////////////////////////////////////////////////////////////////////

func typeMismatch(path string, kindName string) error {
	return Fail(path, "should be %s", kindName)
}

func patternMismatch(path string) error {
	return Fail(path, "doesn't match the pattern")
}

func unknownProperty(path string) error {
	return &ValidationError{
		Path:    path,
		Message: fmt.Sprintf("Property [%s] is unknown", path),
	}
}

func notEnumerated(path string, values []any) error {
	rendered := make([]string, len(values))
	for i, value := range values {
		rendered[i] = stringify(value)
	}
	return Fail(path, "isn't equal to any of the enumerated values (%s)", strings.Join(rendered, EnumeratedValueDivider))
}

func notExact(path string, value any) error {
	return Fail(path, "isn't equal to value (%s)", stringify(value))
}

func alternativesExhausted(path string, branches []*ValidationError) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "All alternatives failed for [%s]:", path)
	for _, branch := range branches {
		sb.WriteString("\n\t")
		sb.WriteString(branch.Message)
	}

	return &ValidationError{
		Path:     path,
		Message:  sb.String(),
		Branches: branches,
	}
}

// assertFewer fails when a length or size is below min.
func assertFewer(min int, actual int, unit string, path string) error {
	if actual < min {
		return Fail(path, "has fewer %s (%d) than the allowed minimum (%d)", unit, actual, min)
	}
	return nil
}

// assertMore fails when a length or size is above max.
func assertMore(max int, actual int, unit string, path string) error {
	if actual > max {
		return Fail(path, "has more %s (%d) than the allowed maximum (%d)", unit, actual, max)
	}
	return nil
}

// assertLarger fails when a number is below min.
func assertLarger[N int64 | float64](min N, actual N, path string) error {
	if actual < min {
		return Fail(path, "is smaller (%s) than the allowed minimum (%s)", formatNumber(actual), formatNumber(min))
	}
	return nil
}

// assertSmaller fails when a number is above max.
func assertSmaller[N int64 | float64](max N, actual N, path string) error {
	if actual > max {
		return Fail(path, "is larger (%s) than the allowed maximum (%s)", formatNumber(actual), formatNumber(max))
	}
	return nil
}

// checkRange applies optional inclusive bounds to a number.
func checkRange[N int64 | float64](min, max *N, actual N, path string) error {
	if min != nil {
		if err := assertLarger(*min, actual, path); err != nil {
			return err
		}
	}
	if max != nil {
		if err := assertSmaller(*max, actual, path); err != nil {
			return err
		}
	}
	return nil
}

// checkCount applies optional inclusive bounds to a length or key count.
func checkCount(min, max *int, actual int, unit string, path string) error {
	if min != nil {
		if err := assertFewer(*min, actual, unit, path); err != nil {
			return err
		}
	}
	if max != nil {
		if err := assertMore(*max, actual, unit, path); err != nil {
			return err
		}
	}
	return nil
}
