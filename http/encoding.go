package http

import (
	"compress/gzip"
	"io"
)

// GzipEncoder compresses request bodies and decompresses response bodies
// with gzip. The zero value is ready to use.
type GzipEncoder struct {
	// Level is a compress/gzip compression level. Zero means
	// gzip.DefaultCompression.
	Level int
}

// Name reports the Content-Encoding token "gzip".
func (GzipEncoder) Name() string {
	return "gzip"
}

// Encode wraps w in a gzip writer. The returned writer must be closed to
// flush the gzip trailer.
func (e GzipEncoder) Encode(w io.Writer) (io.WriteCloser, error) {
	level := e.Level
	if level == 0 {
		level = gzip.DefaultCompression
	}
	return gzip.NewWriterLevel(w, level)
}

// Decode wraps r in a gzip reader.
func (GzipEncoder) Decode(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}
