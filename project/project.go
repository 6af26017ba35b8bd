// Package project maps annotation intervals onto the graph: it
// resolves records to step ranges along a path, collects the node sets
// they cover, and clusters their labels by screen proximity for
// display.
package project

import (
	"sort"

	"github.com/hupe1980/gfaview/annot"
	"github.com/hupe1980/gfaview/graph"
	"github.com/hupe1980/gfaview/pathindex"
)

// StepRange is a half-open slice [Lo, Hi) into a path's ordered step
// list.
type StepRange struct {
	Lo int
	Hi int
}

// IsEmpty reports whether the range covers no steps.
func (r StepRange) IsEmpty() bool { return r.Lo >= r.Hi }

// Len returns the number of steps in the range.
func (r StepRange) Len() int {
	if r.IsEmpty() {
		return 0
	}
	return r.Hi - r.Lo
}

// FindStepRange returns the slice of steps a base interval
// [start, end) overlaps on a path of pathLen total bases. The first
// step is the one whose base range contains start; the last is the one
// before the first step starting at or past end. An interval entirely
// outside [0, pathLen) yields an empty range.
func FindStepRange(steps []pathindex.Step, pathLen, start, end int) StepRange {
	if len(steps) == 0 || start >= end || end <= 0 || start >= pathLen {
		return StepRange{}
	}

	lo := sort.Search(len(steps), func(i int) bool { return steps[i].Base > start })
	if lo > 0 {
		lo--
	}
	hi := sort.Search(len(steps), func(i int) bool { return steps[i].Base >= end })
	return StepRange{Lo: lo, Hi: hi}
}

// RecordRange resolves an annotation record to a step range on a path,
// shifting the record coordinates by the range embedded in the path
// name when one is present.
func RecordRange[K annot.ColumnKey](g *graph.Graph, ix *pathindex.Index, path graph.PathID, rec annot.Record[K]) (StepRange, bool) {
	steps, ok := ix.PathSteps(path)
	if !ok {
		return StepRange{}, false
	}

	start, end := rec.Start(), rec.End()
	if name, nameOK := g.PathName(path); nameOK {
		if offset, hasOffset := annot.PathNameOffset([]byte(name)); hasOffset {
			start -= offset
			end -= offset
		}
	}
	if start < 0 {
		start = 0
	}

	pathLen, _ := ix.PathBaseLen(path)

	return FindStepRange(steps, pathLen, start, end), true
}

// RecordNodes returns the set of nodes an annotation record covers on
// a path, in step order without duplicates.
func RecordNodes[K annot.ColumnKey](g *graph.Graph, ix *pathindex.Index, path graph.PathID, rec annot.Record[K]) []graph.NodeID {
	r, ok := RecordRange(g, ix, path, rec)
	if !ok || r.IsEmpty() {
		return nil
	}
	steps, _ := ix.PathSteps(path)

	seen := make(map[graph.NodeID]struct{}, r.Len())
	var out []graph.NodeID
	for i := r.Lo; i < r.Hi; i++ {
		id := steps[i].Handle.ID()
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Labels maps nodes to the annotation labels attached to them.
type Labels map[graph.NodeID][]string

// CollectLabels projects a set of records onto a path, labelling each
// covered node with the record's value in the chosen column. Records
// that resolve to an empty step range contribute nothing.
func CollectLabels[K annot.ColumnKey, R annot.Record[K]](g *graph.Graph, ix *pathindex.Index, path graph.PathID, recs []R, col K) Labels {
	labels := make(Labels)
	for _, rec := range recs {
		val, ok := rec.GetFirst(col)
		if !ok || len(val) == 0 {
			continue
		}
		for _, id := range RecordNodes[K](g, ix, path, rec) {
			labels[id] = append(labels[id], string(val))
		}
	}
	return labels
}
