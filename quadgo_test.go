package quadgo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/quadgo/geom"
	"github.com/hupe1980/quadgo/testutil"
)

func TestBuild(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		_, err := Build(nil, WithLogger(NoopLogger()))
		assert.ErrorIs(t, err, ErrEmptyPointSet)
	})

	t.Run("DedupLen", func(t *testing.T) {
		idx, err := Build([]geom.Point{
			{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 1},
		}, WithLogger(NoopLogger()))
		require.NoError(t, err)

		assert.Equal(t, 2, idx.Len())
	})
}

func TestIndexNear(t *testing.T) {
	ctx := context.Background()

	idx, err := Build([]geom.Point{
		{X: -8, Y: -8}, {X: 8, Y: 8}, {X: 0, Y: 8},
		{X: 8, Y: 0}, {X: 0, Y: 0}, {X: 4, Y: 4},
	}, WithLogger(NoopLogger()))
	require.NoError(t, err)

	got, err := idx.Near(ctx, []geom.Point{{X: 0, Y: 0}}, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Len())

	got, err = idx.Near(ctx, []geom.Point{{X: 6, Y: 6}, {X: -6, Y: -6}}, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Len())
}

func TestIndexSolveRadius(t *testing.T) {
	ctx := context.Background()

	rng := testutil.NewRNG(4711)
	centroids := []geom.Point{{X: 25, Y: 25}, {X: -25, Y: -25}}
	points := rng.ClusteredPoints(centroids, 50, 10)

	idx, err := Build(points, WithLogger(NoopLogger()))
	require.NoError(t, err)

	res, err := idx.SolveRadius(ctx, centroids, 1, 40)
	require.NoError(t, err)

	// The exact radius depends on the generated data, but the solved count
	// must be reproducible at the solved radius.
	check, err := idx.Near(ctx, centroids, res.Radius)
	require.NoError(t, err)
	assert.Equal(t, res.Count, check.Len())
	assert.Equal(t, res.Count, res.Matches.Len())

	if res.Converged {
		assert.Equal(t, 40, res.Count)
	}
}
