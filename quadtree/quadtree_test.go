package quadtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/gfaview/geom"
	"github.com/hupe1980/gfaview/testutil"
)

func unitSquare() geom.Rect {
	return geom.NewRect(geom.Pt(0, 0), geom.Pt(1, 1))
}

func TestInsertOutOfBounds(t *testing.T) {
	qt := New[string](unitSquare())

	assert.NoError(t, qt.Insert(geom.Pt(0.5, 0.5), "in"))
	assert.ErrorIs(t, qt.Insert(geom.Pt(1.5, 0.5), "out"), ErrOutOfBounds)
	assert.ErrorIs(t, qt.Insert(geom.Pt(-0.1, 0.5), "out"), ErrOutOfBounds)
	assert.Equal(t, 1, qt.Len())
}

func TestSubdivision(t *testing.T) {
	qt := New[string](unitSquare())

	require.NoError(t, qt.Insert(geom.Pt(0.1, 0.1), "A"))
	require.NoError(t, qt.Insert(geom.Pt(0.9, 0.9), "B"))
	require.NoError(t, qt.Insert(geom.Pt(0.2, 0.8), "C"))
	require.NoError(t, qt.Insert(geom.Pt(0.8, 0.2), "D"))
	assert.True(t, qt.IsLeaf())

	// Fifth insertion splits the root; entries land one per quadrant
	// and the interior node keeps none.
	require.NoError(t, qt.Insert(geom.Pt(0.5, 0.5), "E"))
	assert.False(t, qt.IsLeaf())
	assert.Equal(t, 0, qt.NodeLen())
	assert.Equal(t, 5, qt.Len())

	for leaf := range qt.Leaves() {
		assert.LessOrEqual(t, leaf.NodeLen(), 2)
	}

	got := qt.QueryRange(geom.NewRect(geom.Pt(0, 0), geom.Pt(0.5, 0.5)))
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Data)

	got = qt.QueryRange(geom.NewRect(geom.Pt(0.4, 0.4), geom.Pt(0.6, 0.6)))
	require.Len(t, got, 1)
	assert.Equal(t, "E", got[0].Data)
}

// Query results must be exactly the inserted points inside the query
// rectangle.
func TestQueryRangeExact(t *testing.T) {
	rng := testutil.NewRNG(7)
	bounds := unitSquare()
	pts := rng.UniformPoints(500, bounds)

	qt := New[int](bounds)
	for i, p := range pts {
		require.NoError(t, qt.Insert(p, i))
	}

	query := geom.NewRect(geom.Pt(0.25, 0.25), geom.Pt(0.75, 0.75))
	got := make(map[int]geom.Point)
	for _, e := range qt.QueryRange(query) {
		got[e.Data] = e.Point
	}

	for i, p := range pts {
		inside := p.X >= 0.25 && p.X < 0.75 && p.Y >= 0.25 && p.Y < 0.75
		_, found := got[i]
		assert.Equal(t, inside, found, "point %v", p)
	}
}

func TestIterVisitsAll(t *testing.T) {
	rng := testutil.NewRNG(11)
	bounds := unitSquare()
	pts := rng.UniformPoints(300, bounds)

	qt := New[int](bounds)
	for i, p := range pts {
		require.NoError(t, qt.Insert(p, i))
	}

	seen := make(map[int]bool)
	for _, data := range qt.Iter() {
		assert.False(t, seen[data], "entry %d visited twice", data)
		seen[data] = true
	}
	assert.Len(t, seen, len(pts))
	assert.Equal(t, len(pts), qt.Len())
}

func TestQueryRadius(t *testing.T) {
	qt := New[string](unitSquare())
	require.NoError(t, qt.Insert(geom.Pt(0.5, 0.5), "center"))
	require.NoError(t, qt.Insert(geom.Pt(0.9, 0.9), "corner"))

	got := qt.QueryRadius(geom.Pt(0.5, 0.5), 0.2)
	require.Len(t, got, 1)
	assert.Equal(t, "center", got[0].Data)

	got = qt.QueryRadius(geom.Pt(0.5, 0.5), 1.0)
	assert.Len(t, got, 2)
}

func TestBoundaryEdgePoints(t *testing.T) {
	qt := New[string](unitSquare())

	// Points on the outer max edge are inside the root boundary and
	// must stay insertable after subdivision.
	pts := []geom.Point{
		{X: 1, Y: 1},
		{X: 1, Y: 0.3},
		{X: 0.3, Y: 1},
		{X: 0, Y: 0},
		{X: 0.5, Y: 0.5},
		{X: 0.5, Y: 1},
		{X: 1, Y: 0.5},
	}
	for i, p := range pts {
		require.NoError(t, qt.Insert(p, "p"), "point %d %v", i, p)
	}
	assert.Equal(t, len(pts), qt.Len())
}

func TestRects(t *testing.T) {
	qt := New[int](unitSquare())
	rects := qt.Rects()
	require.Len(t, rects, 1)
	assert.Equal(t, unitSquare(), rects[0])

	rng := testutil.NewRNG(3)
	for i, p := range rng.UniformPoints(20, unitSquare()) {
		require.NoError(t, qt.Insert(p, i))
	}
	assert.Greater(t, len(qt.Rects()), 1)
}
