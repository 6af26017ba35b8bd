package gfaview

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/gfaview/graph"
	"github.com/hupe1980/gfaview/overlay"
	"github.com/hupe1980/gfaview/pathindex"
	"github.com/hupe1980/gfaview/task"
)

// GraphQuery is the shared query service: the immutable graph, its
// path position index, and the worker pool for background queries.
// A GraphQuery is safe for concurrent use; Close releases the pool.
type GraphQuery struct {
	graph  *graph.Graph
	index  *pathindex.Index
	pool   *task.Pool
	logger *Logger
}

// New builds the query service for a frozen graph.
func New(g *graph.Graph, optFns ...Option) *GraphQuery {
	opts := options{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	start := time.Now()
	ix := pathindex.New(g)
	q := &GraphQuery{
		graph:  g,
		index:  ix,
		pool:   task.NewPool(opts.poolOptions...),
		logger: opts.logger,
	}
	q.logger.LogBuild(context.Background(), g.NodeCount(), g.PathCount(), time.Since(start))

	return q
}

// Graph returns the underlying graph.
func (q *GraphQuery) Graph() *graph.Graph { return q.graph }

// PathIndex returns the path position index.
func (q *GraphQuery) PathIndex() *pathindex.Index { return q.index }

// Close shuts down the worker pool. Idempotent.
func (q *GraphQuery) Close() {
	q.pool.Close()
}

// PathPosSteps returns the full step list of a path with base offsets.
func (q *GraphQuery) PathPosSteps(path graph.PathID) ([]pathindex.Step, error) {
	steps, ok := q.index.PathSteps(path)
	if !ok {
		return nil, &ErrPathNotFound{PathID: path}
	}
	return steps, nil
}

// PathRange returns the steps of a path between two step pointers,
// inclusive on both ends.
func (q *GraphQuery) PathRange(path graph.PathID, start, end graph.StepPtr) ([]pathindex.Step, error) {
	steps, ok := q.index.PathSteps(path)
	if !ok {
		return nil, &ErrPathNotFound{PathID: path}
	}
	lo, hi := start.Index(), end.Index()
	if lo < 0 || lo >= len(steps) {
		return nil, &ErrStepOutOfRange{PathID: path, Step: start}
	}
	if hi < lo || hi >= len(steps) {
		return nil, &ErrStepOutOfRange{PathID: path, Step: end}
	}
	return steps[lo : hi+1], nil
}

// PathBasepairRange returns the steps of a path covering the base
// interval [startBp, endBp]. It scans for the first steps whose
// cumulative offsets pass each bound, then delegates to PathRange.
func (q *GraphQuery) PathBasepairRange(path graph.PathID, startBp, endBp int) ([]pathindex.Step, error) {
	steps, ok := q.index.PathSteps(path)
	if !ok {
		return nil, &ErrPathNotFound{PathID: path}
	}
	if len(steps) == 0 || startBp > endBp {
		return nil, nil
	}

	start := graph.NullStep
	end := graph.StepAt(len(steps) - 1)
	for _, s := range steps {
		if start.IsNull() && s.Base+q.graph.NodeLen(s.Handle) > startBp {
			start = s.Step
		}
		if s.Base > endBp {
			end = graph.StepAt(s.Step.Index() - 1)
			break
		}
	}
	if start.IsNull() || end.Index() < start.Index() {
		return nil, nil
	}

	return q.PathRange(path, start, end)
}

// NodeStatsOf returns the per-node scalars served by the blocking
// worker.
func (q *GraphQuery) NodeStatsOf(id graph.NodeID) (NodeStats, error) {
	if !q.graph.HasNode(id) {
		return NodeStats{}, &ErrNodeNotFound{NodeID: id}
	}
	h := graph.Forward(id)
	return NodeStats{
		NodeID:      id,
		Len:         q.graph.NodeLen(h),
		DegreeLeft:  q.graph.Degree(h, graph.DirLeft),
		DegreeRight: q.graph.Degree(h, graph.DirRight),
		Coverage:    q.graph.NodeCoverage(id),
	}, nil
}

// GraphStatsOf returns the whole-graph scalars.
func (q *GraphQuery) GraphStatsOf() GraphStats {
	return GraphStats{
		NodeCount: q.graph.NodeCount(),
		EdgeCount: q.graph.EdgeCount(),
		PathCount: q.graph.PathCount(),
		TotalLen:  q.graph.TotalLength(),
	}
}

// PathStatsOf returns the per-path scalars.
func (q *GraphQuery) PathStatsOf(id graph.PathID) (PathStats, error) {
	n, ok := q.index.PathStepCount(id)
	if !ok {
		return PathStats{}, &ErrPathNotFound{PathID: id}
	}
	return PathStats{PathID: id, StepCount: n}, nil
}

// NodeSeqOf returns a node's forward-strand sequence.
func (q *GraphQuery) NodeSeqOf(id graph.NodeID) (NodeSeq, error) {
	seq, ok := q.graph.Sequence(graph.Forward(id))
	if !ok {
		return NodeSeq{}, &ErrNodeNotFound{NodeID: id}
	}
	return NodeSeq{NodeID: id, Seq: seq, Len: len(seq)}, nil
}

// RunQuery schedules fn on the shared pool and returns a polling
// handle for its value.
func RunQuery[T any](ctx context.Context, q *GraphQuery, fn func(*GraphQuery) T) (*task.Result[T], error) {
	res, err := task.Go(ctx, q.pool, func() T {
		return fn(q)
	})
	if err == task.ErrClosed {
		return nil, ErrClosed
	}
	return res, err
}

// overlayIDs returns the graph's node IDs in ascending order. The
// output slot of node ids[i] is index i, so overlay builds stay
// deterministic regardless of scheduling.
func (q *GraphQuery) overlayIDs() []graph.NodeID {
	ids := make([]graph.NodeID, 0, q.graph.NodeCount())
	for h := range q.graph.Handles() {
		ids = append(ids, h.ID())
	}
	return ids
}

// BuildOverlay computes a per-node color overlay in parallel. fn is
// called once per existing node, in any order.
func (q *GraphQuery) BuildOverlay(ctx context.Context, fn func(graph.NodeID) overlay.RGBA) (*overlay.Data, error) {
	ids := q.overlayIDs()
	data := overlay.NewRGB(len(ids))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	const chunk = 1024
	for lo := 0; lo < len(ids); lo += chunk {
		hi := min(lo+chunk, len(ids))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				data.SetRGB(i, fn(ids[i]))
			}
			return nil
		})
	}

	err := g.Wait()
	q.logger.LogOverlay(ctx, len(ids), err)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// BuildValueOverlay computes a per-node scalar overlay in parallel.
func (q *GraphQuery) BuildValueOverlay(ctx context.Context, fn func(graph.NodeID) float32) (*overlay.Data, error) {
	ids := q.overlayIDs()
	data := overlay.NewValue(len(ids))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	const chunk = 1024
	for lo := 0; lo < len(ids); lo += chunk {
		hi := min(lo+chunk, len(ids))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				data.SetValue(i, fn(ids[i]))
			}
			return nil
		})
	}

	err := g.Wait()
	q.logger.LogOverlay(ctx, len(ids), err)
	if err != nil {
		return nil, err
	}
	return data, nil
}
