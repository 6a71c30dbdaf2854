package pave

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/tidwall/gjson"
)

var (
	_ Parser = (*JSONByteSliceParser)(nil)
	_ Parser = (*JSONStringParser)(nil)
	_ Parser = (*JSONRawMessageParser)(nil)
)

type JSONByteSliceParser struct{}

func NewJSONByteSliceParser() *JSONByteSliceParser {
	return &JSONByteSliceParser{}
}

func (jp *JSONByteSliceParser) SourceType() reflect.Type {
	return JSONByteSliceType
}

func (jp *JSONByteSliceParser) Name() string {
	return JSONByteSliceParserName
}

func (jp *JSONByteSliceParser) Decode(source any) (any, error) {
	return TypeErasureDecodeWrapper(decodeJSONBytes)(source)
}

type JSONStringParser struct{}

func NewJSONStringParser() *JSONStringParser {
	return &JSONStringParser{}
}

func (jp *JSONStringParser) SourceType() reflect.Type {
	return StringType
}

func (jp *JSONStringParser) Name() string {
	return JSONStringParserName
}

func (jp *JSONStringParser) Decode(source any) (any, error) {
	return TypeErasureDecodeWrapper(func(source string) (any, error) {
		return decodeJSONBytes([]byte(source))
	})(source)
}

type JSONRawMessageParser struct{}

func NewJSONRawMessageParser() *JSONRawMessageParser {
	return &JSONRawMessageParser{}
}

func (jp *JSONRawMessageParser) SourceType() reflect.Type {
	return JSONRawMessageType
}

func (jp *JSONRawMessageParser) Name() string {
	return JSONRawMessageParserName
}

func (jp *JSONRawMessageParser) Decode(source any) (any, error) {
	return TypeErasureDecodeWrapper(func(source json.RawMessage) (any, error) {
		return decodeJSONBytes(source)
	})(source)
}

// decodeJSONBytes decodes a JSON document. Numbers are kept as json.Number
// so that large integers survive untouched.
func decodeJSONBytes(data []byte) (any, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("error decoding JSON data: %w", ErrInvalidJSON)
	}
	return jsonValue(gjson.ParseBytes(data)), nil
}

func jsonValue(result gjson.Result) any {
	switch result.Type {
	case gjson.Null:
		return nil
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.Number:
		return json.Number(result.Raw)
	case gjson.String:
		return result.Str
	}

	if result.IsArray() {
		items := make([]any, 0)
		result.ForEach(func(_, item gjson.Result) bool {
			items = append(items, jsonValue(item))
			return true
		})
		return items
	}

	object := make(map[string]any)
	result.ForEach(func(key, item gjson.Result) bool {
		object[key.Str] = jsonValue(item)
		return true
	})
	return object
}
