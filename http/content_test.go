package http

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestEncodeContent_NoEncoder(t *testing.T) {
	data, err := encodeContent(NewStringContent("hello", "text/plain"), nil, "https://api.example.com")
	if err != nil {
		t.Fatalf("encodeContent returned error: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("Expected %q, got %q", "hello", string(data))
	}
}

func TestEncodeContent_GzipRoundTrip(t *testing.T) {
	payload := strings.Repeat("compress me ", 100)

	data, err := encodeContent(NewStringContent(payload, "text/plain"), GzipEncoder{}, "https://api.example.com")
	if err != nil {
		t.Fatalf("encodeContent returned error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Expected non-empty encoded bytes")
	}
	if len(data) >= len(payload) {
		t.Errorf("Expected compression to shrink %d bytes, got %d", len(payload), len(data))
	}

	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Encoded bytes are not valid gzip: %v", err)
	}
	defer reader.Close()

	decoded, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("Error decoding: %v", err)
	}
	if string(decoded) != payload {
		t.Error("Decoded payload does not match original")
	}
}

// closeTrackingEncoder wraps GzipEncoder and records whether the wrap
// writer got closed.
type closeTrackingEncoder struct {
	closed *bool
}

func (e closeTrackingEncoder) Name() string { return "gzip" }

func (e closeTrackingEncoder) Encode(w io.Writer) (io.WriteCloser, error) {
	inner, err := GzipEncoder{}.Encode(w)
	if err != nil {
		return nil, err
	}
	return &closeTracker{WriteCloser: inner, closed: e.closed}, nil
}

func (e closeTrackingEncoder) Decode(r io.Reader) (io.ReadCloser, error) {
	return GzipEncoder{}.Decode(r)
}

type closeTracker struct {
	io.WriteCloser
	closed *bool
}

func (c *closeTracker) Close() error {
	*c.closed = true
	return c.WriteCloser.Close()
}

func TestEncodeContent_EncoderClosedOnContentFailure(t *testing.T) {
	closed := false
	cause := errors.New("write refused")

	_, err := encodeContent(brokenContent{err: cause}, closeTrackingEncoder{closed: &closed}, "")
	if !errors.Is(err, cause) {
		t.Fatalf("Expected the content error, got %v", err)
	}
	if !closed {
		t.Error("Encoder wrap was not closed on the failure path")
	}
}

func TestJSONContent(t *testing.T) {
	content := NewJSONContent(map[string]int{"count": 3})

	var buf bytes.Buffer
	if err := content.WriteTo(&buf, "https://api.example.com"); err != nil {
		t.Fatalf("WriteTo returned error: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != `{"count":3}` {
		t.Errorf("Expected %q, got %q", `{"count":3}`, got)
	}
	if content.ContentType() != "application/json" {
		t.Errorf("Unexpected content type %q", content.ContentType())
	}
}

func TestFormContent(t *testing.T) {
	content := NewFormContent(map[string]string{
		"grant_type": "client_credentials",
		"client id":  "abc",
	})

	var buf bytes.Buffer
	if err := content.WriteTo(&buf, ""); err != nil {
		t.Fatalf("WriteTo returned error: %v", err)
	}
	if got := buf.String(); got != "client+id=abc&grant_type=client_credentials" {
		t.Errorf("Unexpected form encoding %q", got)
	}
	if content.ContentType() != "application/x-www-form-urlencoded" {
		t.Errorf("Unexpected content type %q", content.ContentType())
	}
}

func TestBytesContent(t *testing.T) {
	content := NewBytesContent([]byte{0x1, 0x2, 0x3}, "application/octet-stream")

	var buf bytes.Buffer
	if err := content.WriteTo(&buf, ""); err != nil {
		t.Fatalf("WriteTo returned error: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x1, 0x2, 0x3}) {
		t.Errorf("Unexpected bytes %v", buf.Bytes())
	}
}
