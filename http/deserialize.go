package http

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AutoDeserializer picks a parsing strategy from the response
// Content-Type: JSON bodies are unmarshaled, text bodies are assigned to
// *string targets, and anything else is handed over as raw bytes. It is
// the default strategy on every new Request.
type AutoDeserializer struct{}

// Deserialize parses the response into target based on its Content-Type.
func (AutoDeserializer) Deserialize(resp *Response, target interface{}) error {
	contentType := resp.ContentType()

	switch {
	case contentType == "application/json" || strings.HasSuffix(contentType, "+json"):
		return JSONDeserializer{}.Deserialize(resp, target)
	case strings.HasPrefix(contentType, "text/"):
		if s, ok := target.(*string); ok {
			*s = resp.GetBodyAsString()
			return nil
		}
		return JSONDeserializer{}.Deserialize(resp, target)
	default:
		return RawDeserializer{}.Deserialize(resp, target)
	}
}

// JSONDeserializer unmarshals the response body as JSON regardless of the
// Content-Type header.
type JSONDeserializer struct{}

// Deserialize unmarshals the body into target.
func (JSONDeserializer) Deserialize(resp *Response, target interface{}) error {
	return json.Unmarshal(resp.GetBody(), target)
}

// RawDeserializer hands the response body over without parsing. The
// target must be a *[]byte or a *string.
type RawDeserializer struct{}

// Deserialize copies the body into target.
func (RawDeserializer) Deserialize(resp *Response, target interface{}) error {
	switch t := target.(type) {
	case *[]byte:
		*t = resp.GetBody()
		return nil
	case *string:
		*t = resp.GetBodyAsString()
		return nil
	default:
		return fmt.Errorf("raw deserializer: unsupported target type %T", target)
	}
}
