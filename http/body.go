package http

import (
	"encoding/json"
	"io"
	"net/url"
)

// JSONContent marshals an arbitrary value as a JSON request body.
type JSONContent struct {
	value interface{}
}

// NewJSONContent wraps v for sending as JSON.
func NewJSONContent(v interface{}) *JSONContent {
	return &JSONContent{value: v}
}

// WriteTo marshals the wrapped value into w.
func (c *JSONContent) WriteTo(w io.Writer, host string) error {
	return json.NewEncoder(w).Encode(c.value)
}

// ContentType reports application/json.
func (c *JSONContent) ContentType() string {
	return "application/json"
}

// StringContent sends a literal string body with the given media type.
type StringContent struct {
	body      string
	mediaType string
}

// NewStringContent wraps body for sending as-is. mediaType may be empty.
func NewStringContent(body, mediaType string) *StringContent {
	return &StringContent{body: body, mediaType: mediaType}
}

// WriteTo writes the string into w.
func (c *StringContent) WriteTo(w io.Writer, host string) error {
	_, err := io.WriteString(w, c.body)
	return err
}

// ContentType reports the media type given at construction.
func (c *StringContent) ContentType() string {
	return c.mediaType
}

// BytesContent sends a raw byte slice with the given media type.
type BytesContent struct {
	body      []byte
	mediaType string
}

// NewBytesContent wraps body for sending as-is. mediaType may be empty.
func NewBytesContent(body []byte, mediaType string) *BytesContent {
	return &BytesContent{body: body, mediaType: mediaType}
}

// WriteTo writes the bytes into w.
func (c *BytesContent) WriteTo(w io.Writer, host string) error {
	_, err := w.Write(c.body)
	return err
}

// ContentType reports the media type given at construction.
func (c *BytesContent) ContentType() string {
	return c.mediaType
}

// FormContent sends URL-encoded form data.
type FormContent struct {
	fields map[string]string
}

// NewFormContent wraps the given fields for sending as a form body.
func NewFormContent(fields map[string]string) *FormContent {
	return &FormContent{fields: fields}
}

// WriteTo encodes the fields as application/x-www-form-urlencoded into w.
func (c *FormContent) WriteTo(w io.Writer, host string) error {
	values := url.Values{}
	for key, value := range c.fields {
		values.Set(key, value)
	}
	_, err := io.WriteString(w, values.Encode())
	return err
}

// ContentType reports application/x-www-form-urlencoded.
func (c *FormContent) ContentType() string {
	return "application/x-www-form-urlencoded"
}
