// Package blobstore abstracts access to immutable dataset blobs.
//
// Point and centroid datasets are plain files from the index's point of
// view; a Store decides where those files actually live (local disk,
// memory, S3, or any S3-compatible endpoint).
package blobstore

import (
	"bytes"
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for reading immutable data blobs.
type Store interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	io.ReaderAt
	io.Closer

	// Size returns the size of the blob in bytes.
	Size() int64
}

// NewBytesBlob wraps an in-memory byte slice as a Blob. Remote stores use
// it after downloading an object; datasets are read start to finish, so
// buffering the whole object is the simple and correct choice.
func NewBytesBlob(data []byte) Blob {
	return &bytesBlob{Reader: bytes.NewReader(data)}
}

type bytesBlob struct {
	*bytes.Reader
}

func (b *bytesBlob) Close() error { return nil }

func (b *bytesBlob) Size() int64 { return b.Reader.Size() }
