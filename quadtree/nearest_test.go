package quadtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/gfaview/geom"
	"github.com/hupe1980/gfaview/testutil"
)

func TestNearestEmpty(t *testing.T) {
	qt := New[int](unitSquare())
	_, ok := qt.Nearest(geom.Pt(0.5, 0.5))
	assert.False(t, ok)
}

func TestNearest(t *testing.T) {
	qt := New[string](unitSquare())
	require.NoError(t, qt.Insert(geom.Pt(0.1, 0.1), "A"))
	require.NoError(t, qt.Insert(geom.Pt(0.9, 0.9), "B"))
	require.NoError(t, qt.Insert(geom.Pt(0.5, 0.4), "C"))

	e, ok := qt.Nearest(geom.Pt(0.55, 0.45))
	require.True(t, ok)
	assert.Equal(t, "C", e.Data)

	e, ok = qt.Nearest(geom.Pt(0, 0))
	require.True(t, ok)
	assert.Equal(t, "A", e.Data)
}

func TestNearestLeaf(t *testing.T) {
	qt := New[string](unitSquare())
	_, ok := qt.NearestLeaf(geom.Pt(0.5, 0.5))
	assert.False(t, ok)

	require.NoError(t, qt.Insert(geom.Pt(0.1, 0.1), "A"))
	require.NoError(t, qt.Insert(geom.Pt(0.9, 0.9), "B"))

	leaf, ok := qt.NearestLeaf(geom.Pt(0.1, 0.2))
	require.True(t, ok)
	assert.True(t, leaf.Boundary().Contains(geom.Pt(0.1, 0.1)))
}

// Nearest must agree with a linear scan.
func TestNearestMatchesLinearScan(t *testing.T) {
	rng := testutil.NewRNG(23)
	bounds := unitSquare()
	pts := rng.UniformPoints(200, bounds)

	qt := New[int](bounds)
	for i, p := range pts {
		require.NoError(t, qt.Insert(p, i))
	}

	for _, probe := range rng.UniformPoints(50, bounds) {
		best := 0
		for i, p := range pts {
			if p.DistSqr(probe) < pts[best].DistSqr(probe) {
				best = i
			}
		}

		e, ok := qt.Nearest(probe)
		require.True(t, ok)
		assert.Equal(t, pts[best].DistSqr(probe), e.Point.DistSqr(probe))
	}
}

func TestDeleteNearest(t *testing.T) {
	qt := New[string](unitSquare())
	require.NoError(t, qt.Insert(geom.Pt(0.1, 0.1), "A"))
	require.NoError(t, qt.Insert(geom.Pt(0.9, 0.9), "B"))

	assert.True(t, qt.DeleteNearest(geom.Pt(0, 0)))
	assert.Equal(t, 1, qt.Len())

	e, ok := qt.Nearest(geom.Pt(0, 0))
	require.True(t, ok)
	assert.Equal(t, "B", e.Data)

	assert.True(t, qt.DeleteNearest(geom.Pt(0, 0)))
	assert.False(t, qt.DeleteNearest(geom.Pt(0, 0)))
	assert.Equal(t, 0, qt.Len())
}
