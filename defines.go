package pave

import (
	"encoding/json"
	"net/http"
	"reflect"
)

// constants for path segments appended while descending
const (
	FieldPathSeparator     = "."
	IndexPathOpen          = "["
	IndexPathClose         = "]"
	AlternativePathPrefix  = ".@alternative("
	AlternativePathSuffix  = ")"
	EnumeratedValueDivider = " | "
)

// constants for the expected-kind names used in type mismatch messages
const (
	KindNameBoolean = "a boolean"
	KindNameInteger = "an integer"
	KindNameFloat   = "a float"
	KindNameString  = "a string"
	KindNameObject  = "an object"
	KindNameArray   = "an array"
)

// constants for the units used in length and size bound messages
const (
	UnitCharacters = "characters"
	UnitItems      = "items"
	UnitKeys       = "keys"
)

// Parser Name constants for built in parsers.
const (
	HTTPRequestParserName    = "http-request-parser"
	JSONByteSliceParserName  = "json-[]byte-parser"
	JSONStringParserName     = "json-string-parser"
	JSONRawMessageParserName = "json-rawmessage-parser"
	YAMLByteSliceParserName  = "yaml-[]byte-parser"
	StringMapParserName      = "stringmap-parser"
	StringAnyMapParserName   = "map-parser"
)

// Mime Type constants for content types.
const (
	ContentTypeApplicationJSON string = "application/json"
	ContentTypeDelimiter              = ";"
	ContentTypeHeader                 = "Content-Type"
)

// reflect.TypeOf constants for source type checks
var (
	HTTPRequestType    = reflect.TypeOf((*http.Request)(nil))
	JSONByteSliceType  = reflect.TypeOf([]byte{})
	JSONRawMessageType = reflect.TypeOf(json.RawMessage{})
	StringType         = reflect.TypeOf("")
	StringMapType      = reflect.TypeOf(map[string]string{})
	StringAnyMapType   = reflect.TypeOf(map[string]any{})
)
