package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, b Blob) []byte {
	t.Helper()
	data, err := io.ReadAll(io.NewSectionReader(b, 0, b.Size()))
	require.NoError(t, err)
	return data
}

func TestLocalStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "points.csv"), []byte("X,Y\n1,2\n"), 0o644))

	store := NewLocalStore(dir)

	t.Run("Open", func(t *testing.T) {
		blob, err := store.Open(ctx, "points.csv")
		require.NoError(t, err)
		defer blob.Close()

		assert.Equal(t, int64(8), blob.Size())
		assert.Equal(t, []byte("X,Y\n1,2\n"), readAll(t, blob))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := store.Open(ctx, "missing.csv")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	store := NewMemoryStore()
	store.Put("points.csv", []byte("1,1\n2,2\n"))

	t.Run("Open", func(t *testing.T) {
		blob, err := store.Open(ctx, "points.csv")
		require.NoError(t, err)
		defer blob.Close()

		assert.Equal(t, []byte("1,1\n2,2\n"), readAll(t, blob))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := store.Open(ctx, "missing.csv")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
