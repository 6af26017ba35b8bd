package pathindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/gfaview/graph"
	"github.com/hupe1980/gfaview/testutil"
)

func TestStepOffsets(t *testing.T) {
	g := testutil.LinearGraph("P", 10, 20, 30, 40, 50)
	ix := New(g)

	pid, ok := g.PathID("P")
	require.True(t, ok)

	steps, ok := ix.PathSteps(pid)
	require.True(t, ok)
	require.Len(t, steps, 5)

	wantBases := []int{0, 10, 30, 60, 100}
	for i, s := range steps {
		assert.Equal(t, wantBases[i], s.Base)
		assert.Equal(t, graph.NodeID(i+1), s.Handle.ID())
		assert.Equal(t, graph.StepAt(i), s.Step)
	}

	n, ok := ix.PathBaseLen(pid)
	require.True(t, ok)
	assert.Equal(t, 150, n)
}

// Consecutive step offsets must differ by exactly the node length of
// the earlier step.
func TestConsecutiveOffsets(t *testing.T) {
	g := testutil.LinearGraph("P", 7, 1, 13, 2, 30, 5)
	ix := New(g)
	pid, _ := g.PathID("P")

	steps, ok := ix.PathSteps(pid)
	require.True(t, ok)

	for i := 1; i < len(steps); i++ {
		prev, cur := steps[i-1], steps[i]
		assert.Equal(t, g.NodeLen(prev.Handle), cur.Base-prev.Base)

		pos, ok := ix.StepPosition(pid, cur.Step)
		require.True(t, ok)
		assert.Equal(t, cur.Base, pos)
	}
}

func TestStepAtBase(t *testing.T) {
	g := testutil.LinearGraph("P", 10, 20, 30, 40, 50)
	ix := New(g)
	pid, _ := g.PathID("P")

	tests := []struct {
		name string
		base int
		want graph.StepPtr
		ok   bool
	}{
		{"first base", 0, graph.StepAt(0), true},
		{"inside first node", 9, graph.StepAt(0), true},
		{"boundary", 10, graph.StepAt(1), true},
		{"inside third node", 45, graph.StepAt(2), true},
		{"last base", 149, graph.StepAt(4), true},
		{"past end", 150, graph.NullStep, false},
		{"negative", -1, graph.NullStep, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ix.StepAtBase(pid, tt.base)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestHandlePositions(t *testing.T) {
	g := testutil.LinearGraph("P", 10, 20, 30)
	ix := New(g)
	pid, _ := g.PathID("P")

	pos, ok := ix.HandlePositions(graph.Forward(2))
	require.True(t, ok)
	require.Len(t, pos, 1)
	assert.Equal(t, pid, pos[0].Path)
	assert.Equal(t, 10, pos[0].Base)

	_, ok = ix.HandlePositions(graph.Forward(99))
	assert.False(t, ok)
}

func TestMissingPath(t *testing.T) {
	g := testutil.LinearGraph("P", 10)
	ix := New(g)

	_, ok := ix.PathSteps(graph.PathID(42))
	assert.False(t, ok)

	_, ok = ix.StepPosition(graph.PathID(42), graph.StepAt(0))
	assert.False(t, ok)

	_, ok = ix.PathBaseLen(graph.PathID(42))
	assert.False(t, ok)
}

func TestPathCounts(t *testing.T) {
	g := testutil.LinearGraph("P", 10, 20)
	ix := New(g)
	pid, _ := g.PathID("P")

	assert.Equal(t, 1, ix.PathCount())

	n, ok := ix.PathStepCount(pid)
	require.True(t, ok)
	assert.Equal(t, 2, n)
}
