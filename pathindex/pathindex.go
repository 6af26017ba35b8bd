// Package pathindex maps every step of every embedded path to its
// cumulative base offset, supporting constant-time step-to-base and
// logarithmic base-to-step lookups.
//
// The index is built once from a frozen graph and immutable afterwards;
// all queries are safe for concurrent readers.
package pathindex

import (
	"sort"

	"github.com/hupe1980/gfaview/graph"
)

// Step is one path step together with its starting base offset along
// the path.
type Step struct {
	Handle graph.Handle
	Step   graph.StepPtr
	Base   int
}

// Position locates one occurrence of a node on a path.
type Position struct {
	Path graph.PathID
	Step graph.StepPtr
	Base int
}

type pathOffsets struct {
	handles []graph.Handle
	offsets []int // offsets[i] is the base at which step i starts
	baseLen int
}

// Index is the path position index.
type Index struct {
	paths     map[graph.PathID]*pathOffsets
	handlePos map[graph.NodeID][]Position
}

// New builds the index by walking every path of g once.
func New(g *graph.Graph) *Index {
	ix := &Index{
		paths:     make(map[graph.PathID]*pathOffsets, g.PathCount()),
		handlePos: make(map[graph.NodeID][]Position),
	}

	for pid := range g.PathCount() {
		path := graph.PathID(pid)
		n, _ := g.PathLen(path)
		po := &pathOffsets{
			handles: make([]graph.Handle, 0, n),
			offsets: make([]int, 0, n),
		}

		base := 0
		for step, h := range g.PathSteps(path) {
			po.handles = append(po.handles, h)
			po.offsets = append(po.offsets, base)
			ix.handlePos[h.ID()] = append(ix.handlePos[h.ID()], Position{
				Path: path,
				Step: step,
				Base: base,
			})
			base += g.NodeLen(h)
		}
		po.baseLen = base
		ix.paths[path] = po
	}

	return ix
}

// StepPosition returns the base offset at which the step starts along
// its path. O(1).
func (ix *Index) StepPosition(path graph.PathID, step graph.StepPtr) (int, bool) {
	po, ok := ix.paths[path]
	if !ok {
		return 0, false
	}
	i := step.Index()
	if i < 0 || i >= len(po.offsets) {
		return 0, false
	}
	return po.offsets[i], true
}

// StepAtBase returns the step whose half-open base range contains
// base. O(log k) for a path of k steps.
func (ix *Index) StepAtBase(path graph.PathID, base int) (graph.StepPtr, bool) {
	po, ok := ix.paths[path]
	if !ok || base < 0 || base >= po.baseLen {
		return graph.NullStep, false
	}
	// First step starting after base; the step containing base is the
	// one before it.
	i := sort.Search(len(po.offsets), func(i int) bool { return po.offsets[i] > base })
	return graph.StepAt(i - 1), true
}

// HandlePositions returns every occurrence of the handle's node across
// all paths, each with its base offset. The second return is false
// when the node occurs on no path.
func (ix *Index) HandlePositions(h graph.Handle) ([]Position, bool) {
	pos, ok := ix.handlePos[h.ID()]
	if !ok {
		return nil, false
	}
	out := make([]Position, len(pos))
	copy(out, pos)
	return out, true
}

// PathBaseLen returns the summed node lengths along the path.
func (ix *Index) PathBaseLen(path graph.PathID) (int, bool) {
	po, ok := ix.paths[path]
	if !ok {
		return 0, false
	}
	return po.baseLen, true
}

// PathSteps returns the full ordered step list of a path, each with
// handle and base offset. The slice is freshly allocated.
func (ix *Index) PathSteps(path graph.PathID) ([]Step, bool) {
	po, ok := ix.paths[path]
	if !ok {
		return nil, false
	}
	out := make([]Step, len(po.handles))
	for i, h := range po.handles {
		out[i] = Step{Handle: h, Step: graph.StepAt(i), Base: po.offsets[i]}
	}
	return out, true
}

// PathStepCount returns the number of steps indexed for the path.
func (ix *Index) PathStepCount(path graph.PathID) (int, bool) {
	po, ok := ix.paths[path]
	if !ok {
		return 0, false
	}
	return len(po.handles), true
}

// PathCount returns the number of indexed paths.
func (ix *Index) PathCount() int { return len(ix.paths) }
