package pointio

import (
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// NewDecoder wraps r with a decompressor chosen by the name suffix.
// Supported suffixes are ".zst", ".lz4" and ".gz"; any other name passes
// through unchanged.
func NewDecoder(r io.Reader, name string) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(name, ".zst"):
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	case strings.HasSuffix(name, ".lz4"):
		return io.NopCloser(lz4.NewReader(r)), nil
	case strings.HasSuffix(name, ".gz"):
		return gzip.NewReader(r)
	default:
		return io.NopCloser(r), nil
	}
}
