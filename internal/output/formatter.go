package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/riposte-http/riposte/http"
)

// Formatter renders requests and responses for terminal display.
type Formatter struct {
	Verbose bool
	scheme  *ColorScheme
}

// NewFormatter creates a formatter. Color is dropped when noColor is set
// or when stdout is not a terminal.
func NewFormatter(verbose, noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor || !IsTerminal() {
		scheme = NoColorScheme()
	}
	return &Formatter{
		Verbose: verbose,
		scheme:  scheme,
	}
}

// FormatRequest renders the request line, headers, and body preview.
func (f *Formatter) FormatRequest(req *http.Request, host string) string {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf("▶ REQUEST: %s %s\n",
		f.scheme.Method.Sprint(req.Method()),
		f.scheme.URL.Sprint(req.URI(host))))

	if f.Verbose || len(req.Headers()) > 0 {
		buf.WriteString("  Headers:\n")
		for key, value := range req.Headers() {
			buf.WriteString(fmt.Sprintf("    %s: %s\n",
				f.scheme.HeaderKey.Sprint(key),
				f.scheme.HeaderValue.Sprint(value)))
		}
	}

	if req.Content() != nil {
		data, err := req.Data(host)
		if err != nil {
			buf.WriteString(fmt.Sprintf("  Body: <%v>\n", err))
		} else if req.Encoder() != nil {
			buf.WriteString(fmt.Sprintf("  Body: <%d bytes, %s encoded>\n", len(data), req.Encoder().Name()))
		} else {
			buf.WriteString("  Body: " + indentJSON(string(data)) + "\n")
		}
	}

	return buf.String()
}

// FormatResponse renders the status line, timing, headers, and body.
func (f *Formatter) FormatResponse(resp *http.Response) string {
	var buf strings.Builder

	status := f.scheme.StatusError
	if resp.IsSuccess() {
		status = f.scheme.StatusOK
	} else if resp.IsRedirect() {
		status = f.scheme.StatusWarn
	}

	buf.WriteString(fmt.Sprintf("◀ RESPONSE: %s (%dms)\n",
		status.Sprint(resp.Status),
		resp.GetResponseTimeMillis()))

	if f.Verbose {
		buf.WriteString("  Timing:\n")
		buf.WriteString(fmt.Sprintf("    DNS Lookup:         %s\n", resp.Timing.DNSLookupTime))
		buf.WriteString(fmt.Sprintf("    TCP Connection:     %s\n", resp.Timing.TCPConnectTime))
		buf.WriteString(fmt.Sprintf("    TLS Handshake:      %s\n", resp.Timing.TLSHandshakeTime))
		buf.WriteString(fmt.Sprintf("    Time to First Byte: %s\n", resp.Timing.TimeToFirstByte))
		buf.WriteString(fmt.Sprintf("    Content Transfer:   %s\n", resp.Timing.ContentTransferTime))
		buf.WriteString(fmt.Sprintf("    Total:              %s\n", resp.Timing.TotalTime))

		buf.WriteString("  Headers:\n")
		for key, values := range resp.Headers {
			for _, value := range values {
				buf.WriteString(fmt.Sprintf("    %s: %s\n",
					f.scheme.HeaderKey.Sprint(key),
					f.scheme.HeaderValue.Sprint(value)))
			}
		}
	}

	if body := resp.GetBodyAsString(); body != "" {
		buf.WriteString("  Body: " + indentJSON(body) + "\n")
	}

	return buf.String()
}

// indentJSON pretty-prints s when it is valid JSON and returns it
// untouched otherwise.
func indentJSON(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		return trimmed
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(trimmed), "  ", "  "); err != nil {
		return trimmed
	}
	return buf.String()
}
