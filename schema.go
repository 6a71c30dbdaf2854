package pave

import (
	"log/slog"
	"reflect"
)

// SchemaOpts configures a Schema.
//
// Registry defaults to the global parser registry. Logger defaults to a
// logger that discards everything.
type SchemaOpts struct {
	Registry *ParserRegistry
	Logger   *slog.Logger
}

// Schema is the root of a validator tree. It names the root path label and
// ties the tree to the registry used to decode raw sources.
//
// Decode and validation failures are logged at debug level. The errors are
// returned unchanged.
type Schema[T any] struct {
	label     string
	validator Validator[T]
	registry  *ParserRegistry
	logger    *slog.Logger
}

// NewSchema returns a Schema validating with v. label is the root path label
// that prefixes every failure path.
func NewSchema[T any](label string, v Validator[T], opts ...SchemaOpts) *Schema[T] {
	o := firstOpt(opts)
	if o.Registry == nil {
		o.Registry = _gParserRegistry
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}

	return &Schema[T]{
		label:     label,
		validator: v,
		registry:  o.Registry,
		logger:    o.Logger.With(slog.String("schema", label)),
	}
}

// Label returns the root path label.
func (s *Schema[T]) Label() string {
	return s.label
}

// Validate validates an already decoded value.
func (s *Schema[T]) Validate(value any) (T, error) {
	out, err := s.validator.Validate(value, s.label)
	if err != nil {
		s.logFailure(err)
	}
	return out, err
}

// Parse decodes source with the only parser registered for its type, then
// validates the result.
func (s *Schema[T]) Parse(source any) (T, error) {
	value, err := s.registry.Decode(source)
	if err != nil {
		s.logger.Debug("failed to decode source",
			slog.String("source_type", typeName(source)),
			slog.Any("error", err),
		)
		var zero T
		return zero, err
	}
	return s.Validate(value)
}

// ParseWith is Parse using the named parser.
func (s *Schema[T]) ParseWith(parserName string, source any) (T, error) {
	value, err := s.registry.WithParser(parserName).Decode(source)
	if err != nil {
		s.logger.Debug("failed to decode source",
			slog.String("parser", parserName),
			slog.String("source_type", typeName(source)),
			slog.Any("error", err),
		)
		var zero T
		return zero, err
	}
	return s.Validate(value)
}

func (s *Schema[T]) logFailure(err error) {
	if verr, ok := AsValidationError(err); ok {
		s.logger.Debug("validation failed",
			slog.String("path", verr.Path),
			slog.Int("branches", len(verr.Branches)),
			slog.String("error", verr.Message),
		)
		return
	}
	s.logger.Debug("validator returned an error", slog.Any("error", err))
}

func typeName(value any) string {
	if value == nil {
		return "nil"
	}
	return reflect.TypeOf(value).String()
}
