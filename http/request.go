package http

import (
	"time"
)

// Method is an HTTP request method.
type Method string

// Supported request methods.
const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
)

// KeepAlive expresses whether the connection should be held open after the
// request. The zero value defers to the client's default behavior.
type KeepAlive int

const (
	// KeepAliveDefault lets the executing client decide.
	KeepAliveDefault KeepAlive = iota
	// KeepAliveOn asks for the connection to be reused.
	KeepAliveOn
	// KeepAliveOff asks for the connection to be closed after the response.
	KeepAliveOff
)

// Request describes an outbound HTTP request: method, path, query
// parameters, headers, body content, stream transforms, timeout,
// connection-reuse intent, and the strategy used to parse the response.
// It is built through chained calls and then handed to a Client, which
// treats it as read-only.
//
// Example:
//
//	req := http.NewGet("users").
//	    WithParam("limit", 10).
//	    WithHeader("Accept", "application/json")
//
// A Request is not safe for concurrent mutation. Callers that need to
// issue the same request in parallel should CopyFor a fresh descriptor
// per attempt.
type Request struct {
	method       Method
	path         string
	headers      map[string]string
	queryParams  map[string]string
	content      Content
	encoder      Encoder
	decoder      Encoder
	deserializer ResponseDeserializer
	keepAlive    KeepAlive
	timeout      time.Duration
}

// NewRequest creates a request with the given method and sub-path. The
// path may be empty and may already carry a query fragment ("items?sort=asc").
// The response deserializer defaults to AutoDeserializer.
func NewRequest(method Method, path string) *Request {
	return &Request{
		method:       method,
		path:         path,
		headers:      make(map[string]string),
		queryParams:  make(map[string]string),
		deserializer: AutoDeserializer{},
	}
}

// NewGet creates a GET request for the given sub-path.
func NewGet(path string) *Request {
	return NewRequest(MethodGet, path)
}

// NewPost creates a POST request for the given sub-path.
func NewPost(path string) *Request {
	return NewRequest(MethodPost, path)
}

// NewPut creates a PUT request for the given sub-path.
func NewPut(path string) *Request {
	return NewRequest(MethodPut, path)
}

// NewDelete creates a DELETE request for the given sub-path.
func NewDelete(path string) *Request {
	return NewRequest(MethodDelete, path)
}

// NewJSONPost creates a POST request whose body is v marshaled as JSON.
// Pass an empty path to post to the root.
func NewJSONPost(path string, v interface{}) *Request {
	return NewPost(path).WithContent(NewJSONContent(v))
}

// NewJSONPut creates a PUT request whose body is v marshaled as JSON.
// Pass an empty path to put to the root.
func NewJSONPut(path string, v interface{}) *Request {
	return NewPut(path).WithContent(NewJSONContent(v))
}

// Method returns the request method. The method is fixed at construction.
func (r *Request) Method() Method {
	return r.method
}

// WithHeader sets a header, replacing any existing value for the key.
// Header keys are case-sensitive as stored; duplicates collapse to the
// last write. Returns the Request to allow method chaining.
func (r *Request) WithHeader(key, value string) *Request {
	r.headers[key] = value
	return r
}

// WithHeaders sets multiple headers, replacing existing values.
// Returns the Request to allow method chaining.
func (r *Request) WithHeaders(headers map[string]string) *Request {
	for key, value := range headers {
		r.headers[key] = value
	}
	return r
}

// AddHeader sets a header like WithHeader but returns a
// *DuplicateHeaderError if the key is already present, leaving the
// existing value in place. Use it for headers that must not be silently
// overwritten, such as Authorization.
func (r *Request) AddHeader(key, value string) error {
	if _, ok := r.headers[key]; ok {
		return &DuplicateHeaderError{Key: key}
	}
	r.headers[key] = value
	return nil
}

// Headers returns the request headers. The returned map is the live map,
// not a copy; it is exposed for the executing client.
func (r *Request) Headers() map[string]string {
	return r.headers
}

// AddParam serializes value with FormatParamValue and sets it as a query
// parameter, replacing any existing value for name. It returns an
// *InvalidParamError when name is empty or value is nil, in which case
// the parameter map is left untouched.
func (r *Request) AddParam(name string, value interface{}) error {
	if name == "" {
		return &InvalidParamError{Reason: "name must not be empty"}
	}
	if value == nil {
		return &InvalidParamError{Name: name, Reason: "value must not be nil"}
	}
	r.queryParams[name] = FormatParamValue(value)
	return nil
}

// WithParam is the chaining form of AddParam for known-good arguments.
// It panics if name is empty or value is nil; use AddParam when the
// arguments come from outside the program.
func (r *Request) WithParam(name string, value interface{}) *Request {
	if err := r.AddParam(name, value); err != nil {
		panic(err)
	}
	return r
}

// QueryParams returns the serialized query parameters. Like Headers, the
// returned map is the live map.
func (r *Request) QueryParams() map[string]string {
	return r.queryParams
}

// SetEncoder installs the transform applied to the request body, e.g.
// GzipEncoder. The encoder slot is write-once: a second call returns an
// *AlreadySetError and the first encoder stays in effect.
func (r *Request) SetEncoder(encoder Encoder) error {
	if r.encoder != nil {
		return &AlreadySetError{Field: "request encoder"}
	}
	r.encoder = encoder
	return nil
}

// SetDecoder installs the transform applied to the response body. Like
// the encoder, the decoder slot is write-once; a second call returns an
// *AlreadySetError.
func (r *Request) SetDecoder(decoder Encoder) error {
	if r.decoder != nil {
		return &AlreadySetError{Field: "response decoder"}
	}
	r.decoder = decoder
	return nil
}

// Encoder returns the request-body transform, or nil.
func (r *Request) Encoder() Encoder {
	return r.encoder
}

// Decoder returns the response-body transform, or nil.
func (r *Request) Decoder() Encoder {
	return r.decoder
}

// WithKeepAlive forces connection reuse on or off for this request.
// Without this call the client's default applies.
// Returns the Request to allow method chaining.
func (r *Request) WithKeepAlive(on bool) *Request {
	if on {
		r.keepAlive = KeepAliveOn
	} else {
		r.keepAlive = KeepAliveOff
	}
	return r
}

// KeepAlive returns the connection-reuse intent.
func (r *Request) KeepAlive() KeepAlive {
	return r.keepAlive
}

// WithDeserializer replaces the response parsing strategy. Unlike the
// encoder and decoder slots this may be called any number of times.
// Returns the Request to allow method chaining.
func (r *Request) WithDeserializer(d ResponseDeserializer) *Request {
	r.deserializer = d
	return r
}

// Deserializer returns the response parsing strategy.
func (r *Request) Deserializer() ResponseDeserializer {
	return r.deserializer
}

// WithContent replaces the request body content.
// Returns the Request to allow method chaining.
func (r *Request) WithContent(content Content) *Request {
	r.content = content
	return r
}

// Content returns the request body content, or nil.
func (r *Request) Content() Content {
	return r.content
}

// WithTimeout sets a per-request timeout. Zero means "use the client's
// timeout". Returns the Request to allow method chaining.
func (r *Request) WithTimeout(timeout time.Duration) *Request {
	r.timeout = timeout
	return r
}

// Timeout returns the per-request timeout, zero when unset.
func (r *Request) Timeout() time.Duration {
	return r.timeout
}

// AbsolutePath returns the path and merged query string, starting with "/".
func (r *Request) AbsolutePath() string {
	return BuildAbsolutePath(r.path, r.queryParams)
}

// URI returns the complete request URI for the given host.
func (r *Request) URI(host string) string {
	return BuildURI(host, r.path, r.queryParams)
}

// Data serializes the request body and returns it as bytes. With no
// content set it returns empty bytes without touching the encoder. Any
// failure from the content or the encoder comes back as a
// *SerializationError wrapping the cause; the request itself is left
// unmodified and can be retried.
func (r *Request) Data(host string) ([]byte, error) {
	if r.content == nil {
		return nil, nil
	}
	data, err := encodeContent(r.content, r.encoder, host)
	if err != nil {
		return nil, &SerializationError{Cause: err}
	}
	return data, nil
}

// CopyFor returns a request like this one addressed to a different
// sub-path, for reuse across retries or redirects. The copy gets its own
// header and query maps, so later mutation of either request leaves the
// other alone, while the content, encoder, and deserializer are shared by
// reference. The response decoder is not carried over; set it again on
// the copy if the response needs decoding.
func (r *Request) CopyFor(path string) *Request {
	copied := NewRequest(r.method, path)
	for key, value := range r.headers {
		copied.headers[key] = value
	}
	for name, value := range r.queryParams {
		copied.queryParams[name] = value
	}
	copied.content = r.content
	copied.encoder = r.encoder
	copied.deserializer = r.deserializer
	copied.keepAlive = r.keepAlive
	copied.timeout = r.timeout
	return copied
}
