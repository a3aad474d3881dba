package blobstore

import (
	"context"
)

// MemoryStore is an in-memory Store, primarily for tests.
type MemoryStore struct {
	blobs map[string][]byte
}

// Compile-time check.
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Put stores data under name, replacing any previous blob. Put must not be
// called concurrently with Open.
func (s *MemoryStore) Put(name string, data []byte) {
	s.blobs[name] = data
}

// Open opens a blob for reading.
func (s *MemoryStore) Open(_ context.Context, name string) (Blob, error) {
	data, ok := s.blobs[name]
	if !ok {
		return nil, ErrNotFound
	}
	return NewBytesBlob(data), nil
}
