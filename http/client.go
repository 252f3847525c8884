package http

import (
	"bytes"
	"context"
	"crypto/tls"
	"net/http"
	"net/http/httptrace"
	"time"
)

// Client executes Requests against a base URL. It applies the
// descriptor's headers, body, transforms, keep-alive intent, and timeout;
// it deliberately adds no retry, redirect, or pooling logic of its own
// beyond what net/http provides.
//
// Client is safe for concurrent use by multiple goroutines.
type Client struct {
	httpClient *http.Client
	baseURL    string
	headers    map[string]string
}

// ClientOption is a function that configures a Client.
type ClientOption func(*Client)

// NewClient creates a new HTTP client with the given options.
//
// Example:
//
//	client := http.NewClient(
//	    http.WithBaseURL("https://api.example.com"),
//	    http.WithTimeout(30*time.Second),
//	    http.WithHeader("Authorization", "Bearer token"),
//	)
func NewClient(options ...ClientOption) *Client {
	client := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		headers: make(map[string]string),
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// WithBaseURL sets the base URL for all requests made by this client.
// Each Request's absolute path is appended to it.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the timeout for all requests made by this client.
// The default timeout is 30 seconds. A per-request timeout set on the
// Request itself takes precedence.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHeader adds a default header to all requests made by this client.
// Headers set on individual requests override these defaults.
func WithHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.headers[key] = value
	}
}

// WithHTTPClient sets a custom *http.Client for this client.
// Use this for advanced configuration like custom transports or TLS settings.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithInsecureSkipVerify disables TLS certificate verification.
// WARNING: This should only be used for testing purposes.
func WithInsecureSkipVerify() ClientOption {
	return func(c *Client) {
		c.httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
}

// Do executes a Request and returns the response with detailed timing
// information. The request body is produced through the descriptor's
// content and encoder, and the response body is read back through its
// decoder when one is set.
//
// Example:
//
//	req := http.NewGet("users").WithParam("limit", 10)
//
//	resp, err := client.Do(context.Background(), req)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Status: %d, TTFB: %v\n", resp.StatusCode, resp.Timing.TimeToFirstByte)
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if timeout := req.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	httpReq, err := c.build(ctx, req)
	if err != nil {
		return nil, err
	}

	timing := TimingInfo{
		StartTime: time.Now(),
	}

	// Capture per-phase timings. Each phase is measured from the end of
	// the previous one so the numbers add up to the total.
	var dnsStart, connectStart, tlsStart time.Time
	lastPhaseEnd := timing.StartTime

	trace := &httptrace.ClientTrace{
		DNSStart: func(httptrace.DNSStartInfo) {
			dnsStart = time.Now()
		},
		DNSDone: func(httptrace.DNSDoneInfo) {
			now := time.Now()
			timing.DNSLookupTime = now.Sub(dnsStart)
			lastPhaseEnd = now
		},
		ConnectStart: func(network, addr string) {
			connectStart = time.Now()
		},
		ConnectDone: func(network, addr string, err error) {
			if err == nil {
				now := time.Now()
				timing.TCPConnectTime = now.Sub(connectStart)
				lastPhaseEnd = now
			}
		},
		TLSHandshakeStart: func() {
			tlsStart = time.Now()
		},
		TLSHandshakeDone: func(state tls.ConnectionState, err error) {
			if err == nil {
				now := time.Now()
				timing.TLSHandshakeTime = now.Sub(tlsStart)
				lastPhaseEnd = now
			}
		},
		GotFirstResponseByte: func() {
			timing.TimeToFirstByte = time.Since(lastPhaseEnd)
		},
	}

	httpReq = httpReq.WithContext(httptrace.WithClientTrace(httpReq.Context(), trace))

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Headers:    httpResp.Header,
	}

	transferStart := time.Now()
	if err := resp.readBody(httpResp.Body, req.Decoder()); err != nil {
		return nil, err
	}
	timing.ContentTransferTime = time.Since(transferStart)
	timing.TotalTime = time.Since(timing.StartTime)
	resp.Timing = timing

	return resp, nil
}

// Receive executes the request and parses the response body into target
// using the descriptor's deserializer.
func (c *Client) Receive(ctx context.Context, req *Request, target interface{}) (*Response, error) {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	if target != nil {
		if err := req.Deserializer().Deserialize(resp, target); err != nil {
			return resp, err
		}
	}
	return resp, nil
}

// build assembles the net/http request from the descriptor.
func (c *Client) build(ctx context.Context, req *Request) (*http.Request, error) {
	data, err := req.Data(c.baseURL)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, string(req.Method()), req.URI(c.baseURL), bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	for key, value := range c.headers {
		httpReq.Header.Set(key, value)
	}
	for key, value := range req.Headers() {
		httpReq.Header.Set(key, value)
	}

	if content := req.Content(); content != nil {
		if mediaType := content.ContentType(); mediaType != "" && httpReq.Header.Get("Content-Type") == "" {
			httpReq.Header.Set("Content-Type", mediaType)
		}
	}
	if encoder := req.Encoder(); encoder != nil {
		httpReq.Header.Set("Content-Encoding", encoder.Name())
	}
	if decoder := req.Decoder(); decoder != nil {
		// Setting Accept-Encoding explicitly also tells net/http not to
		// decompress the body itself; the descriptor's decoder owns that.
		httpReq.Header.Set("Accept-Encoding", decoder.Name())
	}

	switch req.KeepAlive() {
	case KeepAliveOn:
		httpReq.Header.Set("Connection", "keep-alive")
	case KeepAliveOff:
		httpReq.Close = true
	}

	return httpReq, nil
}

// Get is a convenience method for making GET requests.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, NewGet(path))
}

// Post is a convenience method for making POST requests with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, NewJSONPost(path, body))
}

// Put is a convenience method for making PUT requests with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, NewJSONPut(path, body))
}

// Delete is a convenience method for making DELETE requests.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, NewDelete(path))
}
