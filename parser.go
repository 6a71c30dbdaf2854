package pave

import (
	"fmt"
	"reflect"
)

///////////////////////////////////////////////////////////////////////////////
// Parser Interface
///////////////////////////////////////////////////////////////////////////////

// Parser turns a raw source, such as a request body or a query string, into
// a decoded value that validators consume: nil, bool, json.Number or another
// Go number, string, []any and map[string]any.
//
// A Parser is registered for exactly one source type. Several parsers may
// share a source type as long as their names differ.
//
// # The following are implemented by default:
//   - JSONByteSliceParser: JSON documents held in a []byte.
//   - JSONStringParser: JSON documents held in a string.
//   - JSONRawMessageParser: JSON documents held in a json.RawMessage.
//   - StringMapParser: map[string]string, such as flattened env or form data.
//   - StringAnyMapParser: already decoded map[string]any.
//   - HTTPRequestParser: *http.Request JSON bodies or query parameters.
//
// YAMLByteSliceParser is available but not registered by default because it
// shares []byte with JSONByteSliceParser.
type Parser interface {
	// Decode converts source into the decoded value model.
	Decode(source any) (any, error)
	// SourceType returns the reflect.Type of the source this parser works with
	SourceType() reflect.Type
	// Name returns a unique identifier for this parser within its source type
	Name() string
}

// TypeErasureDecodeWrapper adapts a decode function over a concrete source
// type S to the type erased Parser.Decode signature.
func TypeErasureDecodeWrapper[S any](decode func(source S) (any, error)) func(source any) (any, error) {
	return func(source any) (any, error) {
		typed, ok := source.(S)
		if !ok {
			var want S
			return nil, fmt.Errorf("%w: expected %T, got %T", ErrUnexpectedSourceType, want, source)
		}
		return decode(typed)
	}
}
