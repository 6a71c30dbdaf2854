package pave

import "reflect"

var (
	_ Parser = (*StringMapParser)(nil)
	_ Parser = (*StringAnyMapParser)(nil)
)

// StringMapParser decodes flat string maps, such as environment or form
// data, into an object of strings. Pair it with the StringTo validators.
type StringMapParser struct{}

func NewStringMapParser() *StringMapParser {
	return &StringMapParser{}
}

func (mp *StringMapParser) SourceType() reflect.Type {
	return StringMapType
}

func (mp *StringMapParser) Name() string {
	return StringMapParserName
}

func (mp *StringMapParser) Decode(source any) (any, error) {
	return TypeErasureDecodeWrapper(func(source map[string]string) (any, error) {
		out := make(map[string]any, len(source))
		for key, value := range source {
			out[key] = value
		}
		return out, nil
	})(source)
}

// StringAnyMapParser passes already decoded objects through unchanged.
type StringAnyMapParser struct{}

func NewStringAnyMapParser() *StringAnyMapParser {
	return &StringAnyMapParser{}
}

func (mp *StringAnyMapParser) SourceType() reflect.Type {
	return StringAnyMapType
}

func (mp *StringAnyMapParser) Name() string {
	return StringAnyMapParserName
}

func (mp *StringAnyMapParser) Decode(source any) (any, error) {
	return TypeErasureDecodeWrapper(func(source map[string]any) (any, error) {
		return source, nil
	})(source)
}
