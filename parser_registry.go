package pave

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// ParserRegistry holds the Parsers that turn raw sources into decoded
// values.
//
// Multiple Parsers can be registered for each source type. If only one
// parser is registered for a type, it will be used automatically. If
// multiple parsers are registered, you must use WithParser() to specify
// which one to use.
//
// A ParserRegistry is safe for concurrent use.
type ParserRegistry struct {
	mu sync.RWMutex
	m  map[reflect.Type]map[string]Parser // source type -> parser name -> parser
}

// ParserRegistryContext provides a curried Registry with a specific parser selection
type ParserRegistryContext struct {
	registry   *ParserRegistry
	parserName string
}

var (
	_defaultParsers []Parser = nil
)

type ParserRegistryOpts struct {
	Parsers         []Parser
	ExcludeDefaults bool
}

func NewParserRegistry(opts ParserRegistryOpts) (*ParserRegistry, error) {
	reg := &ParserRegistry{
		m: make(map[reflect.Type]map[string]Parser),
	}

	if !opts.ExcludeDefaults {
		for _, parser := range defaultParsers() {
			err := reg.Register(parser)
			if err != nil {
				return nil, err
			}
		}
	}

	for _, parser := range opts.Parsers {
		err := reg.Register(parser)
		if err != nil {
			return nil, err
		}
	}

	return reg, nil
}

// Register adds parser under its source type and name. Registering a second
// parser with the same name for the same source type fails with
// ErrParserAlreadyRegistered.
func (reg *ParserRegistry) Register(parser Parser) error {
	typ := parser.SourceType()
	name := parser.Name()

	reg.mu.Lock()
	defer reg.mu.Unlock()

	if reg.m[typ] == nil {
		reg.m[typ] = make(map[string]Parser)
	}
	if _, exists := reg.m[typ][name]; exists {
		return fmt.Errorf("%w: %s for %s", ErrParserAlreadyRegistered, name, typ)
	}

	reg.m[typ][name] = parser
	return nil
}

// WithParser returns a ParserRegistryContext that will use the specified
// parser for decoding. This is useful when multiple parsers are registered
// for the same source type.
func (reg *ParserRegistry) WithParser(parserName string) *ParserRegistryContext {
	return &ParserRegistryContext{
		registry:   reg,
		parserName: parserName,
	}
}

// Decode converts source with the named parser.
func (regCtx *ParserRegistryContext) Decode(source any) (any, error) {
	parser, err := regCtx.registry.ParserByName(source, regCtx.parserName)
	if err != nil {
		return nil, err
	}
	return decodeWith(parser, source)
}

// Decode converts source into a decoded value.
//
// It only succeeds if there is exactly one parser registered
// for source's type. To use a specific parser, you must
// use the WithParser() method to specify which one to use.
func (reg *ParserRegistry) Decode(source any) (any, error) {
	parser, err := reg.Parser(source)
	if err != nil {
		return nil, err
	}
	return decodeWith(parser, source)
}

func decodeWith(parser Parser, source any) (any, error) {
	value, err := parser.Decode(source)
	if err != nil {
		return nil, fmt.Errorf("failed to decode with %s: %w", parser.Name(), err)
	}
	return value, nil
}

// Parser retrieves the only parser registered for source's type.
//
// If multiple parsers are found for the same source type, it returns
// ErrMultipleParsersAvailable.
func (reg *ParserRegistry) Parser(source any) (Parser, error) {
	return reg.ParserByName(source, "")
}

// ParserByName retrieves a specific parser by name for source's type.
//
// No name provided: If there is only one parser registered for the type,
// it returns that parser. If multiple parsers are registered, it returns an error
func (reg *ParserRegistry) ParserByName(source any, parserName string) (Parser, error) {
	t := reflect.TypeOf(source)

	reg.mu.RLock()
	defer reg.mu.RUnlock()

	parsersForType := reg.m[t]
	if len(parsersForType) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoParserRegistered, t)
	}

	if parserName == "" {
		if len(parsersForType) > 1 {
			return nil, fmt.Errorf("%w: %v has %v", ErrMultipleParsersAvailable, t, parserNames(parsersForType))
		}
		for _, parser := range parsersForType {
			return parser, nil
		}
	}

	if parser, found := parsersForType[parserName]; found {
		return parser, nil
	}
	return nil, fmt.Errorf("%w: %s for %v", ErrParserNotFound, parserName, t)
}

func parserNames(parsers map[string]Parser) []string {
	names := make([]string, 0, len(parsers))
	for name := range parsers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

///////////////////////////////////////////////////////////////////////////////
// Parse
///////////////////////////////////////////////////////////////////////////////

// ParseFrom decodes source through reg and validates the result with v,
// rooted at path.
func ParseFrom[T any](reg *ParserRegistry, v Validator[T], source any, path string) (T, error) {
	value, err := reg.Decode(source)
	if err != nil {
		var zero T
		return zero, err
	}
	return v.Validate(value, path)
}

// ParseFromWith is ParseFrom using the named parser.
func ParseFromWith[T any](reg *ParserRegistry, parserName string, v Validator[T], source any, path string) (T, error) {
	value, err := reg.WithParser(parserName).Decode(source)
	if err != nil {
		var zero T
		return zero, err
	}
	return v.Validate(value, path)
}

///////////////////////////////////////////////////////////////////////////////
// Global Singleton and Package Functions
///////////////////////////////////////////////////////////////////////////////

var _gParserRegistry *ParserRegistry = nil

func defaultParsers() []Parser {
	return _defaultParsers
}

func init() {
	_defaultParsers = []Parser{
		NewJSONByteSliceParser(),
		NewJSONStringParser(),
		NewJSONRawMessageParser(),
		NewHTTPRequestParser(),
		NewStringMapParser(),
		NewStringAnyMapParser(),
	}

	var err error
	_gParserRegistry, err = NewParserRegistry(ParserRegistryOpts{ExcludeDefaults: false})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize global ParserRegistry: %v", err))
	}
}

// Package-level functions that delegate to the global ParserRegistry instance

func RegisterParser(parser Parser) error {
	return _gParserRegistry.Register(parser)
}

func Decode(source any) (any, error) {
	return _gParserRegistry.Decode(source)
}

func WithParser(parserName string) *ParserRegistryContext {
	return _gParserRegistry.WithParser(parserName)
}

func GetParser(source any) (Parser, error) {
	return _gParserRegistry.Parser(source)
}

func GetParserByName(source any, parserName string) (Parser, error) {
	return _gParserRegistry.ParserByName(source, parserName)
}

// Parse decodes source with the global registry and validates the result
// with v, rooted at path.
func Parse[T any](v Validator[T], source any, path string) (T, error) {
	return ParseFrom(_gParserRegistry, v, source, path)
}

// ParseWith is Parse using the named parser.
func ParseWith[T any](parserName string, v Validator[T], source any, path string) (T, error) {
	return ParseFromWith(_gParserRegistry, parserName, v, source, path)
}
