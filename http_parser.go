package pave

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
)

var _ Parser = (*HTTPRequestParser)(nil)

// HTTPRequestParser decodes the payload of an *http.Request.
//
// Requests with a JSON Content-Type decode their body, and an empty body
// decodes to an empty object. The body is restored afterwards so handlers
// can still read it. All other requests decode their URL query parameters
// into an object: a parameter given once becomes a string and a repeated
// parameter becomes an array of strings.
type HTTPRequestParser struct{}

func NewHTTPRequestParser() *HTTPRequestParser {
	return &HTTPRequestParser{}
}

func (hp *HTTPRequestParser) SourceType() reflect.Type {
	return HTTPRequestType
}

func (hp *HTTPRequestParser) Name() string {
	return HTTPRequestParserName
}

func (hp *HTTPRequestParser) Decode(source any) (any, error) {
	return TypeErasureDecodeWrapper(hp.decode)(source)
}

func (hp *HTTPRequestParser) decode(request *http.Request) (any, error) {
	if request == nil {
		return nil, fmt.Errorf("%w: nil *http.Request", ErrUnexpectedSourceType)
	}

	if isJSONContentType(request.Header.Get(ContentTypeHeader)) {
		return hp.decodeJSONBody(request)
	}
	return hp.decodeQuery(request), nil
}

func (hp *HTTPRequestParser) decodeJSONBody(request *http.Request) (any, error) {
	if request.Body == nil || request.Body == http.NoBody {
		return map[string]any{}, nil
	}

	// The body is replaced below, the deferred call closes the original.
	defer request.Body.Close()

	body, err := io.ReadAll(request.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	request.Body = io.NopCloser(bytes.NewReader(body))

	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{}, nil
	}
	return decodeJSONBytes(body)
}

func (hp *HTTPRequestParser) decodeQuery(request *http.Request) map[string]any {
	out := make(map[string]any)
	if request.URL == nil {
		return out
	}

	for key, values := range request.URL.Query() {
		switch len(values) {
		case 0:
		case 1:
			out[key] = values[0]
		default:
			items := make([]any, len(values))
			for i, value := range values {
				items[i] = value
			}
			out[key] = items
		}
	}
	return out
}

// isJSONContentType reports whether a Content-Type header names JSON,
// ignoring parameters such as charset.
func isJSONContentType(contentType string) bool {
	mediaType, _, _ := strings.Cut(contentType, ContentTypeDelimiter)
	return strings.EqualFold(strings.TrimSpace(mediaType), ContentTypeApplicationJSON)
}
