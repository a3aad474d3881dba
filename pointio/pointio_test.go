package pointio

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/quadgo/blobstore"
	"github.com/hupe1980/quadgo/geom"
)

func TestReadPoints(t *testing.T) {
	t.Run("SkipsHeader", func(t *testing.T) {
		points, err := ReadPoints(strings.NewReader("X,Y\n1,2\n3,4\n"))
		require.NoError(t, err)
		assert.Equal(t, []geom.Point{{X: 1, Y: 2}, {X: 3, Y: 4}}, points)
	})

	t.Run("NoHeader", func(t *testing.T) {
		points, err := ReadPoints(strings.NewReader("1,2\n3,4\n"), func(o *Options) {
			o.Header = false
		})
		require.NoError(t, err)
		assert.Equal(t, []geom.Point{{X: 1, Y: 2}, {X: 3, Y: 4}}, points)
	})

	t.Run("SkipsAndWarnsOnMalformedRows", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		input := "X,Y\n1,2\nnot-a-number,5\n7\n3,oops\n4,5\n"
		points, err := ReadPoints(strings.NewReader(input), func(o *Options) {
			o.Logger = logger
		})
		require.NoError(t, err)

		assert.Equal(t, []geom.Point{{X: 1, Y: 2}, {X: 4, Y: 5}}, points)
		assert.Equal(t, 3, strings.Count(buf.String(), "invalid line"))
	})

	t.Run("ToleratesWhitespace", func(t *testing.T) {
		points, err := ReadPoints(strings.NewReader("X,Y\n 1.5 , -2.5 \n"))
		require.NoError(t, err)
		assert.Equal(t, []geom.Point{{X: 1.5, Y: -2.5}}, points)
	})

	t.Run("ExtraColumnsIgnored", func(t *testing.T) {
		points, err := ReadPoints(strings.NewReader("X,Y,LABEL\n1,2,city\n"))
		require.NoError(t, err)
		assert.Equal(t, []geom.Point{{X: 1, Y: 2}}, points)
	})

	t.Run("Empty", func(t *testing.T) {
		points, err := ReadPoints(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, points)
	})
}

func TestReadFromStore(t *testing.T) {
	ctx := context.Background()
	payload := []byte("X,Y\n1,2\n3,4\n")
	want := []geom.Point{{X: 1, Y: 2}, {X: 3, Y: 4}}

	t.Run("Plain", func(t *testing.T) {
		store := blobstore.NewMemoryStore()
		store.Put("points.csv", payload)

		points, err := ReadFromStore(ctx, store, "points.csv")
		require.NoError(t, err)
		assert.Equal(t, want, points)
	})

	t.Run("Zstd", func(t *testing.T) {
		var buf bytes.Buffer
		zw, err := zstd.NewWriter(&buf)
		require.NoError(t, err)
		_, err = zw.Write(payload)
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		store := blobstore.NewMemoryStore()
		store.Put("points.csv.zst", buf.Bytes())

		points, err := ReadFromStore(ctx, store, "points.csv.zst")
		require.NoError(t, err)
		assert.Equal(t, want, points)
	})

	t.Run("LZ4", func(t *testing.T) {
		var buf bytes.Buffer
		lw := lz4.NewWriter(&buf)
		_, err := lw.Write(payload)
		require.NoError(t, err)
		require.NoError(t, lw.Close())

		store := blobstore.NewMemoryStore()
		store.Put("points.csv.lz4", buf.Bytes())

		points, err := ReadFromStore(ctx, store, "points.csv.lz4")
		require.NoError(t, err)
		assert.Equal(t, want, points)
	})

	t.Run("Gzip", func(t *testing.T) {
		var buf bytes.Buffer
		gw := gzip.NewWriter(&buf)
		_, err := gw.Write(payload)
		require.NoError(t, err)
		require.NoError(t, gw.Close())

		store := blobstore.NewMemoryStore()
		store.Put("points.csv.gz", buf.Bytes())

		points, err := ReadFromStore(ctx, store, "points.csv.gz")
		require.NoError(t, err)
		assert.Equal(t, want, points)
	})

	t.Run("NotFound", func(t *testing.T) {
		store := blobstore.NewMemoryStore()
		_, err := ReadFromStore(ctx, store, "missing.csv")
		assert.ErrorIs(t, err, blobstore.ErrNotFound)
	})
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "points.csv")
	require.NoError(t, os.WriteFile(path, []byte("X,Y\n1,2\n"), 0o644))

	points, err := ReadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{{X: 1, Y: 2}}, points)
}
