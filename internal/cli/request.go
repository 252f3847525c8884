package cli

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/riposte-http/riposte/http"
)

// requestFlags are the flags shared by the method commands.
type requestFlags struct {
	headers   []string
	queries   []string
	body      string
	form      []string
	gzip      bool
	gunzip    bool
	keepAlive bool
	timeout   time.Duration
	verbose   bool
	noColor   bool
}

// addRequestFlags registers the shared flags on a method command.
func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("header", "H", []string{}, "HTTP header as 'Key: Value' (can be used multiple times)")
	cmd.Flags().StringArrayP("query", "q", []string{}, "Query parameter as 'name=value' (can be used multiple times)")
	cmd.Flags().StringP("json", "j", "", "JSON request body")
	cmd.Flags().StringArrayP("form", "f", []string{}, "Form field as 'name=value'; sends a urlencoded body")
	cmd.Flags().Bool("gzip", false, "Compress the request body with gzip")
	cmd.Flags().Bool("gunzip", false, "Ask for and decompress a gzip response body")
	cmd.Flags().Bool("keep-alive", true, "Reuse the connection for later requests")
	cmd.Flags().DurationP("timeout", "t", 30*time.Second, "Request timeout")
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	cmd.Flags().Bool("no-color", false, "Disable colored output")
}

// readRequestFlags collects the shared flag values.
func readRequestFlags(cmd *cobra.Command) requestFlags {
	var flags requestFlags
	flags.headers, _ = cmd.Flags().GetStringArray("header")
	flags.queries, _ = cmd.Flags().GetStringArray("query")
	flags.body, _ = cmd.Flags().GetString("json")
	flags.form, _ = cmd.Flags().GetStringArray("form")
	flags.gzip, _ = cmd.Flags().GetBool("gzip")
	flags.gunzip, _ = cmd.Flags().GetBool("gunzip")
	flags.keepAlive, _ = cmd.Flags().GetBool("keep-alive")
	flags.timeout, _ = cmd.Flags().GetDuration("timeout")
	flags.verbose, _ = cmd.Flags().GetBool("verbose")
	flags.noColor, _ = cmd.Flags().GetBool("no-color")
	return flags
}

// buildRequest assembles a descriptor from a method, path, and flags.
func buildRequest(method http.Method, path string, flags requestFlags) (*http.Request, error) {
	req := http.NewRequest(method, path)

	for _, header := range flags.headers {
		parts := strings.SplitN(header, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid header %q, expected 'Key: Value'", header)
		}
		req.WithHeader(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
	}

	for _, query := range flags.queries {
		parts := strings.SplitN(query, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid query parameter %q, expected 'name=value'", query)
		}
		if err := req.AddParam(parts[0], parts[1]); err != nil {
			return nil, err
		}
	}

	if flags.body != "" && len(flags.form) > 0 {
		return nil, fmt.Errorf("--json and --form are mutually exclusive")
	}
	if flags.body != "" {
		req.WithContent(http.NewStringContent(flags.body, "application/json"))
	}
	if len(flags.form) > 0 {
		fields := make(map[string]string, len(flags.form))
		for _, field := range flags.form {
			parts := strings.SplitN(field, "=", 2)
			if len(parts) != 2 {
				return nil, fmt.Errorf("invalid form field %q, expected 'name=value'", field)
			}
			fields[parts[0]] = parts[1]
		}
		req.WithContent(http.NewFormContent(fields))
	}

	if flags.gzip {
		if err := req.SetEncoder(http.GzipEncoder{}); err != nil {
			return nil, err
		}
	}
	if flags.gunzip {
		if err := req.SetDecoder(http.GzipEncoder{}); err != nil {
			return nil, err
		}
	}

	req.WithKeepAlive(flags.keepAlive)
	req.WithTimeout(flags.timeout)

	return req, nil
}

// parseURL splits a URL into host and path-with-query.
func parseURL(fullURL string) (string, string) {
	if !strings.HasPrefix(fullURL, "http://") && !strings.HasPrefix(fullURL, "https://") {
		fullURL = "http://" + fullURL
	}

	parsed, err := url.Parse(fullURL)
	if err != nil {
		return fullURL, "/"
	}

	host := fmt.Sprintf("%s://%s", parsed.Scheme, parsed.Host)
	if parsed.User != nil {
		host = fmt.Sprintf("%s://%s@%s", parsed.Scheme, parsed.User.String(), parsed.Host)
	}

	path := parsed.Path
	if path == "" {
		path = "/"
	}
	if parsed.RawQuery != "" {
		path = path + "?" + parsed.RawQuery
	}

	return host, path
}
