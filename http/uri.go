package http

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// BuildAbsolutePath merges a literal path with additional query parameters
// and returns the resulting path-plus-query string, always starting with "/".
//
// The path may already carry its own query fragment ("items?sort=asc"); extra
// parameters are appended with "&" rather than replacing it. Parameter values
// are expected to be pre-serialized strings (see FormatParamValue) and are
// percent-escaped here.
func BuildAbsolutePath(path string, params map[string]string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	if len(params) == 0 {
		return path
	}

	query := url.Values{}
	for name, value := range params {
		query.Set(name, value)
	}

	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}

	return path + separator + query.Encode()
}

// BuildURI prepends the given host to the merged path and query, taking care
// not to produce a double slash at the join point.
//
// Example:
//
//	BuildURI("https://api.example.com", "users", map[string]string{"id": "42"})
//	// https://api.example.com/users?id=42
func BuildURI(host, path string, params map[string]string) string {
	return strings.TrimRight(host, "/") + BuildAbsolutePath(path, params)
}

// FormatParamValue converts a query-parameter value to its string form.
//
// Formatting is deterministic and locale-independent: numbers always use "."
// as the decimal separator and times are rendered as RFC 3339 in UTC, so the
// same value produces the same URI on every machine.
func FormatParamValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	case time.Duration:
		return v.String()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
