// Package quadgo answers proximity queries over a fixed set of planar
// points: which points lie within radius r of any of a set of centroids,
// and, inversely, what radius r yields approximately N matching points.
//
// Points are indexed once into a region-adaptive quadtree; all queries are
// then read-only and safe for concurrent use.
//
// # Quick Start
//
//	points, _ := pointio.ReadFile(ctx, "points.csv")
//	idx, _ := quadgo.Build(points)
//
//	// Which points lie within 5 units of the centroids?
//	matches, _ := idx.Near(ctx, centroids, 5.0)
//	fmt.Println(matches.Len())
//
//	// What radius captures ~100 points?
//	res, _ := idx.SolveRadius(ctx, centroids, 5.0, 100)
//	fmt.Println(res.Radius, res.Count)
//
// # Key Features
//
//   - Region-adaptive quadtree with geometric pruning for box and radius
//     queries
//   - Deduplicated multi-centroid search backed by Roaring Bitmaps
//   - Quadratic-interpolation-guided radius solving with a bisection-style
//     bracket fallback
//   - Dataset loading from local disk, S3 or any S3-compatible store, with
//     transparent zstd/lz4/gzip decompression
package quadgo
