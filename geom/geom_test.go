package geom

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointEquality(t *testing.T) {
	t.Run("MapKey", func(t *testing.T) {
		seen := make(map[Point]struct{})
		seen[Point{X: 1.5, Y: -2.5}] = struct{}{}
		seen[Point{X: 1.5, Y: -2.5}] = struct{}{}
		seen[Point{X: 1.5, Y: 2.5}] = struct{}{}

		assert.Len(t, seen, 2)
	})

	t.Run("ParsedCoordinatesDedup", func(t *testing.T) {
		// Two parses of the same textual coordinate must produce the
		// same point value.
		x1, err := strconv.ParseFloat("3.14159", 64)
		require.NoError(t, err)
		x2, err := strconv.ParseFloat("3.14159", 64)
		require.NoError(t, err)

		assert.Equal(t, Point{X: x1, Y: 0}, Point{X: x2, Y: 0})
	})
}

func TestSquaredDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64
	}{
		{name: "Zero", a: Point{}, b: Point{}, want: 0},
		{name: "Axis", a: Point{X: 3}, b: Point{}, want: 9},
		{name: "Diagonal", a: Point{X: 1, Y: 1}, b: Point{X: 4, Y: 5}, want: 25},
		{name: "Symmetric", a: Point{X: -1, Y: -1}, b: Point{X: 1, Y: 1}, want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SquaredDistance(tt.a, tt.b))
			assert.Equal(t, tt.want, SquaredDistance(tt.b, tt.a))
		})
	}
}
