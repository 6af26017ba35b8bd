package gfaview

import (
	"context"
	"sync"
	"time"

	"github.com/hupe1980/gfaview/graph"
)

// RequestKind enumerates the blocking worker's request messages.
type RequestKind uint8

const (
	// ReqGraphStats asks for the whole-graph scalars.
	ReqGraphStats RequestKind = iota
	// ReqNodeStats asks for one node's scalars.
	ReqNodeStats
	// ReqPathStats asks for one path's scalars.
	ReqPathStats
	// ReqNodeSeq asks for one node's sequence.
	ReqNodeSeq
)

// String implements fmt.Stringer.
func (k RequestKind) String() string {
	switch k {
	case ReqGraphStats:
		return "graph_stats"
	case ReqNodeStats:
		return "node_stats"
	case ReqPathStats:
		return "path_stats"
	case ReqNodeSeq:
		return "node_seq"
	default:
		return "unknown"
	}
}

// Request is one message to the blocking worker.
type Request struct {
	Kind RequestKind
	Node graph.NodeID
	Path graph.PathID
}

// GraphStats carries the whole-graph scalars.
type GraphStats struct {
	NodeCount int
	EdgeCount int
	PathCount int
	TotalLen  int
}

// NodeStats carries one node's scalars.
type NodeStats struct {
	NodeID      graph.NodeID
	Len         int
	DegreeLeft  int
	DegreeRight int
	Coverage    int
}

// PathStats carries one path's scalars.
type PathStats struct {
	PathID    graph.PathID
	StepCount int
}

// NodeSeq carries one node's forward-strand sequence.
type NodeSeq struct {
	NodeID graph.NodeID
	Seq    []byte
	Len    int
}

// Response mirrors the request kinds. Exactly the field matching Kind
// is populated; Err carries lookup failures.
type Response struct {
	Kind  RequestKind
	Graph GraphStats
	Node  NodeStats
	Path  PathStats
	Seq   NodeSeq
	Err   error
}

// QueryThread serves blocking requests on a dedicated goroutine over a
// rendezvous channel pair: Ask blocks until the worker takes the
// request, and the worker replies before taking the next one, so
// in-flight work is bounded to one and requests are served in FIFO
// order of arrival.
type QueryThread struct {
	q      *GraphQuery
	reqCh  chan Request
	respCh chan Response

	askMu   sync.Mutex
	closeMu sync.Mutex
	closed  bool
	done    chan struct{}
}

// NewQueryThread starts the worker.
func NewQueryThread(q *GraphQuery) *QueryThread {
	t := &QueryThread{
		q:      q,
		reqCh:  make(chan Request),
		respCh: make(chan Response),
		done:   make(chan struct{}),
	}
	go t.run()
	return t
}

// run is the worker loop. It exits cleanly when the request channel
// closes.
func (t *QueryThread) run() {
	defer close(t.done)

	for req := range t.reqCh {
		start := time.Now()
		resp := t.serve(req)
		t.q.logger.LogQuery(context.Background(), req.Kind.String(), time.Since(start))
		t.respCh <- resp
	}
}

func (t *QueryThread) serve(req Request) Response {
	resp := Response{Kind: req.Kind}
	switch req.Kind {
	case ReqGraphStats:
		resp.Graph = t.q.GraphStatsOf()
	case ReqNodeStats:
		resp.Node, resp.Err = t.q.NodeStatsOf(req.Node)
	case ReqPathStats:
		resp.Path, resp.Err = t.q.PathStatsOf(req.Path)
	case ReqNodeSeq:
		resp.Seq, resp.Err = t.q.NodeSeqOf(req.Node)
	}
	return resp
}

// Ask sends one request and blocks for its response. Callers must not
// hold locks the worker could need. Ask after Close returns ErrClosed.
func (t *QueryThread) Ask(req Request) (Response, error) {
	t.askMu.Lock()
	defer t.askMu.Unlock()

	t.closeMu.Lock()
	if t.closed {
		t.closeMu.Unlock()
		return Response{}, ErrClosed
	}
	t.closeMu.Unlock()

	t.reqCh <- req
	return <-t.respCh, nil
}

// GraphStats is a convenience wrapper for ReqGraphStats.
func (t *QueryThread) GraphStats() (GraphStats, error) {
	resp, err := t.Ask(Request{Kind: ReqGraphStats})
	if err != nil {
		return GraphStats{}, err
	}
	return resp.Graph, nil
}

// NodeStats is a convenience wrapper for ReqNodeStats.
func (t *QueryThread) NodeStats(id graph.NodeID) (NodeStats, error) {
	resp, err := t.Ask(Request{Kind: ReqNodeStats, Node: id})
	if err != nil {
		return NodeStats{}, err
	}
	return resp.Node, resp.Err
}

// PathStats is a convenience wrapper for ReqPathStats.
func (t *QueryThread) PathStats(id graph.PathID) (PathStats, error) {
	resp, err := t.Ask(Request{Kind: ReqPathStats, Path: id})
	if err != nil {
		return PathStats{}, err
	}
	return resp.Path, resp.Err
}

// NodeSeq is a convenience wrapper for ReqNodeSeq.
func (t *QueryThread) NodeSeq(id graph.NodeID) (NodeSeq, error) {
	resp, err := t.Ask(Request{Kind: ReqNodeSeq, Node: id})
	if err != nil {
		return NodeSeq{}, err
	}
	return resp.Seq, resp.Err
}

// Close stops the worker and waits for it to exit. Idempotent.
func (t *QueryThread) Close() {
	t.closeMu.Lock()
	if t.closed {
		t.closeMu.Unlock()
		return
	}
	t.closed = true
	t.closeMu.Unlock()

	// Wait for any in-flight Ask to finish before closing the channel.
	t.askMu.Lock()
	close(t.reqCh)
	t.askMu.Unlock()

	<-t.done
}
