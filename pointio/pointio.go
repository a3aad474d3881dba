// Package pointio reads planar points from line-oriented "x,y" text data.
//
// Malformed rows are never fatal: they are skipped with a warning so that a
// single bad record cannot abort the load of a large dataset.
package pointio

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hupe1980/quadgo/blobstore"
	"github.com/hupe1980/quadgo/geom"
)

// Options contains configuration options for reading points.
type Options struct {
	// Header indicates the first row is a header and must be skipped.
	Header bool

	// Logger receives warnings about skipped rows. If nil, slog.Default()
	// is used.
	Logger *slog.Logger
}

// DefaultOptions contains the default configuration options for reading
// points.
var DefaultOptions = Options{
	Header: true,
}

// ReadPoints parses "x,y" rows from r. Unparseable rows are skipped with a
// warning. The only error conditions are I/O failures of r itself.
func ReadPoints(r io.Reader, optFns ...func(o *Options)) ([]geom.Point, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	var points []geom.Point

	sc := bufio.NewScanner(r)
	skip := opts.Header
	line := 0
	for sc.Scan() {
		line++
		if skip {
			skip = false
			continue
		}

		text := sc.Text()
		fields := strings.SplitN(text, ",", 3)
		if len(fields) < 2 {
			opts.Logger.Warn("invalid line", "line", line, "text", text)
			continue
		}

		x, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			opts.Logger.Warn("invalid line", "line", line, "text", text)
			continue
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			opts.Logger.Warn("invalid line", "line", line, "text", text)
			continue
		}

		points = append(points, geom.Point{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return points, nil
}

// ReadFromStore opens the named blob, transparently decompresses it based
// on its name suffix, and parses its points.
func ReadFromStore(ctx context.Context, store blobstore.Store, name string, optFns ...func(o *Options)) ([]geom.Point, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer blob.Close()

	dec, err := NewDecoder(io.NewSectionReader(blob, 0, blob.Size()), name)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	return ReadPoints(dec, optFns...)
}

// ReadFile reads points from a local file.
func ReadFile(ctx context.Context, path string, optFns ...func(o *Options)) ([]geom.Point, error) {
	store := blobstore.NewLocalStore(filepath.Dir(path))
	return ReadFromStore(ctx, store, filepath.Base(path), optFns...)
}
