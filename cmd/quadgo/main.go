// Command quadgo answers proximity queries over a point dataset.
//
// Usage:
//
//	quadgo [flags] POINTS_FILE CENTROIDS_FILE
//
// Both files hold "x,y" rows (with a header by default) and may be plain,
// zstd-, lz4- or gzip-compressed. Files can also live in object storage:
// s3://bucket/key uses the ambient AWS configuration, and
// minio://endpoint/bucket/key uses AWS-style credentials from the
// environment.
//
// With -radius, the matched count (or the points themselves with
// -list-points) is printed. With -target-percent, the radius is adjusted
// until approximately that share of the dataset matches.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hupe1980/quadgo"
	"github.com/hupe1980/quadgo/blobstore"
	miniostore "github.com/hupe1980/quadgo/blobstore/minio"
	s3store "github.com/hupe1980/quadgo/blobstore/s3"
	"github.com/hupe1980/quadgo/geom"
	"github.com/hupe1980/quadgo/pointio"
)

var (
	radius        = flag.Float64("radius", 5.0, "the radius in which to search for points")
	targetPercent = flag.Float64("target-percent", 0, "the target percentage of points to find; the radius is adjusted until the target is reached")
	listPoints    = flag.Bool("list-points", false, "list the found points, rather than just their count")
	header        = flag.Bool("header", true, "skip the first row of each input file")
	resolution    = flag.Float64("resolution", 2.5, "quadtree resolution (leaf halfwidth threshold)")
	verbose       = flag.Bool("v", false, "enable debug logging")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] POINTS_FILE CENTROIDS_FILE\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := quadgo.NewTextLogger(level)

	if err := run(context.Background(), logger, flag.Arg(0), flag.Arg(1)); err != nil {
		logger.Error("quadgo failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *quadgo.Logger, pointsLoc, centroidsLoc string) error {
	points, err := readPoints(ctx, logger, pointsLoc)
	if err != nil {
		return fmt.Errorf("read points: %w", err)
	}
	logger.Info("read points", "count", len(points))

	idx, err := quadgo.Build(points,
		quadgo.WithResolution(*resolution),
		quadgo.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}

	centroids, err := readPoints(ctx, logger, centroidsLoc)
	if err != nil {
		return fmt.Errorf("read centroids: %w", err)
	}
	logger.Info("read centroids", "count", len(centroids))

	if *targetPercent > 0 {
		target := int(math.Round(float64(len(points)) * *targetPercent / 100))
		logger.Info("solving for radius", "target", target)

		res, err := idx.SolveRadius(ctx, centroids, *radius, target)
		if err != nil {
			return err
		}

		fmt.Printf("%d points within radius %f.\n", res.Count, res.Radius)
		return nil
	}

	matches, err := idx.Near(ctx, centroids, *radius)
	if err != nil {
		return err
	}

	if *listPoints {
		fmt.Println("X,Y")
		for p := range matches.All() {
			fmt.Printf("%f,%f\n", p.X, p.Y)
		}
		return nil
	}

	fmt.Printf("%d points within %f of the given centroids.\n", matches.Len(), *radius)
	return nil
}

// readPoints loads a dataset from a local path, s3://bucket/key or
// minio://endpoint/bucket/key.
func readPoints(ctx context.Context, logger *quadgo.Logger, location string) ([]geom.Point, error) {
	withOpts := func(o *pointio.Options) {
		o.Header = *header
		o.Logger = logger.Logger
	}

	store, name, err := resolveStore(ctx, location)
	if err != nil {
		return nil, err
	}

	return pointio.ReadFromStore(ctx, store, name, withOpts)
}

func resolveStore(ctx context.Context, location string) (blobstore.Store, string, error) {
	switch {
	case strings.HasPrefix(location, "s3://"):
		bucket, key, ok := strings.Cut(strings.TrimPrefix(location, "s3://"), "/")
		if !ok {
			return nil, "", fmt.Errorf("malformed s3 location %q", location)
		}
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, "", err
		}
		return s3store.NewStore(awss3.NewFromConfig(cfg), bucket, ""), key, nil

	case strings.HasPrefix(location, "minio://"):
		rest := strings.TrimPrefix(location, "minio://")
		parts := strings.SplitN(rest, "/", 3)
		if len(parts) != 3 {
			return nil, "", fmt.Errorf("malformed minio location %q", location)
		}
		client, err := minio.New(parts[0], &minio.Options{
			Creds:  credentials.NewEnvAWS(),
			Secure: true,
		})
		if err != nil {
			return nil, "", err
		}
		return miniostore.NewStore(client, parts[1], ""), parts[2], nil

	default:
		return blobstore.NewLocalStore(filepath.Dir(location)), filepath.Base(location), nil
	}
}
