package http

import (
	"io"
	"net/http"
	"strings"
	"time"
)

// TimingInfo stores detailed timing information for an HTTP request.
// All durations represent the time spent in each phase of the request.
type TimingInfo struct {
	// StartTime is when the request started
	StartTime time.Time

	// DNSLookupTime is the time spent looking up the DNS address
	DNSLookupTime time.Duration

	// TCPConnectTime is the time spent establishing a TCP connection
	TCPConnectTime time.Duration

	// TLSHandshakeTime is the time spent performing the TLS handshake (for HTTPS)
	TLSHandshakeTime time.Duration

	// TimeToFirstByte is the time from connection established to the first byte
	TimeToFirstByte time.Duration

	// ContentTransferTime is the time spent reading the response body
	ContentTransferTime time.Duration

	// TotalTime is the total time from request start to completion
	TotalTime time.Duration
}

// Response represents an HTTP response with timing information. The body
// is read eagerly by the client (after running it through the request's
// decoder, when one is set) and cached, so the accessors below can be
// called any number of times.
type Response struct {
	// StatusCode is the HTTP status code (e.g., 200, 404, 500)
	StatusCode int

	// Status is the HTTP status string (e.g., "200 OK")
	Status string

	// Headers contains the response headers
	Headers http.Header

	// Timing contains detailed timing information
	Timing TimingInfo

	body []byte
}

// GetBody returns the response body bytes.
func (r *Response) GetBody() []byte {
	return r.body
}

// GetBodyAsString returns the response body as a string.
func (r *Response) GetBodyAsString() string {
	return string(r.body)
}

// GetBodyAsJSON unmarshals the response body into the provided value.
//
// Example:
//
//	var users []User
//	if err := resp.GetBodyAsJSON(&users); err != nil {
//	    log.Fatal(err)
//	}
func (r *Response) GetBodyAsJSON(v interface{}) error {
	return JSONDeserializer{}.Deserialize(r, v)
}

// GetHeader returns the value of the specified header.
// Returns an empty string if the header is not present.
func (r *Response) GetHeader(key string) string {
	return r.Headers.Get(key)
}

// ContentType returns the media type of the response, without parameters.
func (r *Response) ContentType() string {
	contentType := r.Headers.Get("Content-Type")
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.TrimSpace(contentType)
}

// IsSuccess returns true if the response status code is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsRedirect returns true if the response status code is in the 3xx range.
func (r *Response) IsRedirect() bool {
	return r.StatusCode >= 300 && r.StatusCode < 400
}

// IsClientError returns true if the response status code is in the 4xx range.
func (r *Response) IsClientError() bool {
	return r.StatusCode >= 400 && r.StatusCode < 500
}

// IsServerError returns true if the response status code is in the 5xx range.
func (r *Response) IsServerError() bool {
	return r.StatusCode >= 500 && r.StatusCode < 600
}

// GetResponseTimeMillis returns the total response time in milliseconds.
func (r *Response) GetResponseTimeMillis() int64 {
	return r.Timing.TotalTime.Milliseconds()
}

// GetTimeToFirstByteMillis returns the time to first byte in milliseconds.
func (r *Response) GetTimeToFirstByteMillis() int64 {
	return r.Timing.TimeToFirstByte.Milliseconds()
}

// readBody drains rc into the response cache. The decoder, when given,
// wraps the raw stream first.
func (r *Response) readBody(rc io.ReadCloser, decoder Encoder) error {
	defer rc.Close()

	reader := io.Reader(rc)
	if decoder != nil {
		wrapped, err := decoder.Decode(rc)
		if err != nil {
			return err
		}
		defer wrapped.Close()
		reader = wrapped
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	r.body = body
	return nil
}
