package http

import (
	"bytes"
	"io"
)

// Content is a request body that knows how to write itself to an output
// sink. The target host URI is passed through so content that embeds
// absolute links can render them.
type Content interface {
	// WriteTo writes the serialized body to w. host is the URI of the
	// server the request is addressed to.
	WriteTo(w io.Writer, host string) error

	// ContentType reports the media type for the Content-Type header.
	ContentType() string
}

// Encoder transforms bytes flowing through a stream, gzip compression
// being the typical case. The same implementation serves both directions:
// wrapping a writer when encoding a request body and wrapping a reader
// when decoding a response body.
type Encoder interface {
	// Name reports the Content-Encoding token, e.g. "gzip".
	Name() string

	// Encode wraps w so that bytes written through the returned writer
	// are transformed. The writer must be closed to flush buffered data.
	Encode(w io.Writer) (io.WriteCloser, error)

	// Decode wraps r so that reads see the transformed-back bytes.
	Decode(r io.Reader) (io.ReadCloser, error)
}

// ResponseDeserializer parses a response body into a typed target value.
type ResponseDeserializer interface {
	Deserialize(resp *Response, target interface{}) error
}

// encodeContent serializes content into an in-memory buffer, routing the
// bytes through the encoder's wrapping stream when one is given. The wrap
// is closed before the buffer is read back, on error paths too, so the
// encoder always gets to flush its trailing bytes.
func encodeContent(content Content, encoder Encoder, host string) ([]byte, error) {
	var buf bytes.Buffer

	if encoder == nil {
		if err := content.WriteTo(&buf, host); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	wrap, err := encoder.Encode(&buf)
	if err != nil {
		return nil, err
	}

	if err := content.WriteTo(wrap, host); err != nil {
		wrap.Close()
		return nil, err
	}

	if err := wrap.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
