// Package http builds outbound HTTP requests and executes them with
// detailed timing metrics.
//
// The center of the package is Request, a fluent descriptor that collects
// everything a transport needs: method, path, query parameters, headers,
// body content, encode/decode transforms, timeout, and connection-reuse
// intent. A Request is assembled once through chained calls and then
// handed to a Client, which treats it as read-only.
//
// Basic usage:
//
//	client := http.NewClient(
//	    http.WithBaseURL("https://api.example.com"),
//	    http.WithTimeout(30*time.Second),
//	)
//
//	req := http.NewGet("users").
//	    WithParam("limit", 10).
//	    WithHeader("Accept", "application/json")
//
//	resp, err := client.Do(context.Background(), req)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Status: %d\n", resp.StatusCode)
//
// JSON bodies:
//
//	req := http.NewJSONPost("items", map[string]string{"name": "a"})
//
// Compressed bodies route through an Encoder. The encoder and decoder
// slots are write-once; trying to replace one is an error:
//
//	req := http.NewJSONPost("items", item)
//	if err := req.SetEncoder(http.GzipEncoder{}); err != nil {
//	    log.Fatal(err)
//	}
//
// Reuse against a different sub-path (for retries or redirects) goes
// through CopyFor, which gives the copy independent header and query
// maps while sharing the body content:
//
//	retry := req.CopyFor("items/retry")
//
// Thread safety:
//
// Client is safe for concurrent use. Request is not safe for concurrent
// mutation; copy first when issuing the same request in parallel.
package http
