package pave

import (
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

var _ Parser = (*YAMLByteSliceParser)(nil)

// YAMLByteSliceParser decodes YAML documents held in a []byte. It is not a
// default parser; register it and select it with WithParser:
//
//	pave.RegisterParser(pave.NewYAMLByteSliceParser())
//	value, err := pave.WithParser(pave.YAMLByteSliceParserName).Decode(data)
type YAMLByteSliceParser struct{}

func NewYAMLByteSliceParser() *YAMLByteSliceParser {
	return &YAMLByteSliceParser{}
}

func (yp *YAMLByteSliceParser) SourceType() reflect.Type {
	return JSONByteSliceType
}

func (yp *YAMLByteSliceParser) Name() string {
	return YAMLByteSliceParserName
}

func (yp *YAMLByteSliceParser) Decode(source any) (any, error) {
	return TypeErasureDecodeWrapper(decodeYAMLBytes)(source)
}

func decodeYAMLBytes(data []byte) (any, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return normalizeYAML(raw), nil
}

// normalizeYAML rewrites mappings with non-string keys, which YAML allows,
// into map[string]any.
func normalizeYAML(value any) any {
	switch v := value.(type) {
	case map[string]any:
		for key, item := range v {
			v[key] = normalizeYAML(item)
		}
		return v
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = normalizeYAML(item)
		}
		return out
	case []any:
		for i, item := range v {
			v[i] = normalizeYAML(item)
		}
		return v
	default:
		return v
	}
}
