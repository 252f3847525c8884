package http

import (
	"net/http"
	"testing"
)

func responseWith(contentType, body string) *Response {
	headers := http.Header{}
	if contentType != "" {
		headers.Set("Content-Type", contentType)
	}
	return &Response{
		StatusCode: 200,
		Status:     "200 OK",
		Headers:    headers,
		body:       []byte(body),
	}
}

func TestAutoDeserializer(t *testing.T) {
	t.Run("json content type", func(t *testing.T) {
		resp := responseWith("application/json; charset=utf-8", `{"name":"a"}`)

		var got struct {
			Name string `json:"name"`
		}
		if err := (AutoDeserializer{}).Deserialize(resp, &got); err != nil {
			t.Fatalf("Deserialize returned error: %v", err)
		}
		if got.Name != "a" {
			t.Errorf("Expected name %q, got %q", "a", got.Name)
		}
	})

	t.Run("json suffix content type", func(t *testing.T) {
		resp := responseWith("application/problem+json", `{"title":"oops"}`)

		var got map[string]string
		if err := (AutoDeserializer{}).Deserialize(resp, &got); err != nil {
			t.Fatalf("Deserialize returned error: %v", err)
		}
		if got["title"] != "oops" {
			t.Errorf("Unexpected result %v", got)
		}
	})

	t.Run("text content type into string", func(t *testing.T) {
		resp := responseWith("text/plain", "hello")

		var got string
		if err := (AutoDeserializer{}).Deserialize(resp, &got); err != nil {
			t.Fatalf("Deserialize returned error: %v", err)
		}
		if got != "hello" {
			t.Errorf("Expected %q, got %q", "hello", got)
		}
	})

	t.Run("unknown content type into bytes", func(t *testing.T) {
		resp := responseWith("application/octet-stream", "\x01\x02")

		var got []byte
		if err := (AutoDeserializer{}).Deserialize(resp, &got); err != nil {
			t.Fatalf("Deserialize returned error: %v", err)
		}
		if string(got) != "\x01\x02" {
			t.Errorf("Unexpected bytes %v", got)
		}
	})
}

func TestRawDeserializer_UnsupportedTarget(t *testing.T) {
	resp := responseWith("application/octet-stream", "data")

	var got int
	if err := (RawDeserializer{}).Deserialize(resp, &got); err == nil {
		t.Error("Expected an error for an unsupported target type")
	}
}

func TestResponse_ContentType(t *testing.T) {
	tests := []struct {
		header   string
		expected string
	}{
		{"application/json", "application/json"},
		{"application/json; charset=utf-8", "application/json"},
		{"text/html ; charset=iso-8859-1", "text/html"},
		{"", ""},
	}

	for _, tt := range tests {
		resp := responseWith(tt.header, "")
		if got := resp.ContentType(); got != tt.expected {
			t.Errorf("ContentType for header %q = %q, want %q", tt.header, got, tt.expected)
		}
	}
}
