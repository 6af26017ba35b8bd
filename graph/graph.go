// Package graph provides a read-only, in-memory handle graph: a
// bidirected sequence graph with embedded paths.
//
// A graph is assembled once through a Builder and immutable afterwards,
// so every query method is safe for concurrent use by any number of
// readers without locking.
package graph

import "iter"

// NodeID is a dense, 1-based node identifier. It doubles as an array
// index via id-1 and is stable for the lifetime of a loaded graph.
type NodeID uint64

// PathID identifies an embedded path.
type PathID uint64

// StepPtr is an opaque pointer to a step within a path. The zero value
// is the null step.
type StepPtr uint64

// NullStep is the null StepPtr.
const NullStep StepPtr = 0

// IsNull reports whether s is the null step.
func (s StepPtr) IsNull() bool { return s == NullStep }

// Index returns the zero-based ordinal of the step within its path.
func (s StepPtr) Index() int { return int(s) - 1 }

// StepAt returns the StepPtr for a zero-based step ordinal.
func StepAt(ix int) StepPtr { return StepPtr(ix + 1) }

// Handle addresses one orientation of a node. It packs the node ID and
// the orientation bit into a single integer.
type Handle uint64

// NewHandle packs a node ID and an orientation into a Handle.
func NewHandle(id NodeID, reverse bool) Handle {
	h := Handle(id) << 1
	if reverse {
		h |= 1
	}
	return h
}

// Forward returns the forward-oriented handle for id.
func Forward(id NodeID) Handle { return NewHandle(id, false) }

// Reverse returns the reverse-oriented handle for id.
func Reverse(id NodeID) Handle { return NewHandle(id, true) }

// ID returns the node the handle addresses.
func (h Handle) ID() NodeID { return NodeID(h >> 1) }

// IsReverse reports whether the handle is reverse-oriented.
func (h Handle) IsReverse() bool { return h&1 == 1 }

// Flip toggles the handle's orientation.
func (h Handle) Flip() Handle { return h ^ 1 }

// Canonical returns the forward-oriented handle for the same node.
func (h Handle) Canonical() Handle { return h &^ 1 }

// Direction selects one side of a node for degree and neighbor
// queries.
type Direction uint8

const (
	// DirLeft is the side entering the node in forward orientation.
	DirLeft Direction = iota
	// DirRight is the side leaving the node in forward orientation.
	DirRight
)

// Occurrence is one traversal of a node by a path step.
type Occurrence struct {
	Path PathID
	Step StepPtr
}

type node struct {
	seq   []byte
	left  []Handle // neighbors reachable from the node's left side
	right []Handle // neighbors reachable from the node's right side
}

type path struct {
	name  string
	steps []Handle
}

// Graph is the frozen handle graph. Construct it with a Builder.
type Graph struct {
	nodes     []node
	nodeIDs   []NodeID // sorted; nodeIDs[i] lives at nodes[i]
	idOffsets map[NodeID]uint32

	paths     []path
	pathIDs   map[string]PathID
	edgeCount int
	totalLen  int

	occurrences map[NodeID][]Occurrence
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// PathCount returns the number of embedded paths.
func (g *Graph) PathCount() int { return len(g.paths) }

// TotalLength returns the summed sequence length of all nodes.
func (g *Graph) TotalLength() int { return g.totalLen }

// HasNode reports whether the node exists.
func (g *Graph) HasNode(id NodeID) bool {
	_, ok := g.idOffsets[id]
	return ok
}

func (g *Graph) node(id NodeID) (*node, bool) {
	ix, ok := g.idOffsets[id]
	if !ok {
		return nil, false
	}
	return &g.nodes[ix], true
}

// Sequence returns the node sequence as read along the handle. For a
// reverse handle the sequence is reverse-complemented. The second
// return is false if the node does not exist.
func (g *Graph) Sequence(h Handle) ([]byte, bool) {
	n, ok := g.node(h.ID())
	if !ok {
		return nil, false
	}
	if h.IsReverse() {
		return reverseComplement(n.seq), true
	}
	seq := make([]byte, len(n.seq))
	copy(seq, n.seq)
	return seq, true
}

// NodeLen returns the sequence length of the handle's node.
func (g *Graph) NodeLen(h Handle) int {
	n, ok := g.node(h.ID())
	if !ok {
		return 0
	}
	return len(n.seq)
}

// Degree returns the number of edges on the given side of the handle.
// The sides follow the handle's orientation: for a reverse handle the
// left and right sides are swapped.
func (g *Graph) Degree(h Handle, dir Direction) int {
	n, ok := g.node(h.ID())
	if !ok {
		return 0
	}
	if h.IsReverse() {
		if dir == DirLeft {
			dir = DirRight
		} else {
			dir = DirLeft
		}
	}
	if dir == DirLeft {
		return len(n.left)
	}
	return len(n.right)
}

// Neighbors iterates the handles adjacent to h on the given side.
func (g *Graph) Neighbors(h Handle, dir Direction) iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		n, ok := g.node(h.ID())
		if !ok {
			return
		}
		d := dir
		if h.IsReverse() {
			if d == DirLeft {
				d = DirRight
			} else {
				d = DirLeft
			}
		}
		nbrs := n.right
		if d == DirLeft {
			nbrs = n.left
		}
		for _, nb := range nbrs {
			out := nb
			if h.IsReverse() {
				out = nb.Flip()
			}
			if !yield(out) {
				return
			}
		}
	}
}

// Handles iterates all forward handles in ascending node-ID order.
func (g *Graph) Handles() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		for _, id := range g.nodeIDs {
			if !yield(Forward(id)) {
				return
			}
		}
	}
}

// PathID resolves a path name. The second return is false when no such
// path exists.
func (g *Graph) PathID(name string) (PathID, bool) {
	id, ok := g.pathIDs[name]
	return id, ok
}

// PathName returns the name of a path.
func (g *Graph) PathName(id PathID) (string, bool) {
	if int(id) >= len(g.paths) {
		return "", false
	}
	return g.paths[id].name, true
}

// PathLen returns the number of steps in a path.
func (g *Graph) PathLen(id PathID) (int, bool) {
	if int(id) >= len(g.paths) {
		return 0, false
	}
	return len(g.paths[id].steps), true
}

// PathFirst returns the step pointer of the first step on the path.
func (g *Graph) PathFirst(id PathID) (StepPtr, bool) {
	if int(id) >= len(g.paths) || len(g.paths[id].steps) == 0 {
		return NullStep, false
	}
	return StepAt(0), true
}

// PathLast returns the step pointer of the last step on the path.
func (g *Graph) PathLast(id PathID) (StepPtr, bool) {
	n := 0
	if int(id) < len(g.paths) {
		n = len(g.paths[id].steps)
	}
	if n == 0 {
		return NullStep, false
	}
	return StepAt(n - 1), true
}

// PathHandleAt returns the handle traversed by the given step.
func (g *Graph) PathHandleAt(id PathID, step StepPtr) (Handle, bool) {
	if int(id) >= len(g.paths) {
		return 0, false
	}
	steps := g.paths[id].steps
	ix := step.Index()
	if ix < 0 || ix >= len(steps) {
		return 0, false
	}
	return steps[ix], true
}

// PathSteps iterates a path's steps in order.
func (g *Graph) PathSteps(id PathID) iter.Seq2[StepPtr, Handle] {
	return func(yield func(StepPtr, Handle) bool) {
		if int(id) >= len(g.paths) {
			return
		}
		for ix, h := range g.paths[id].steps {
			if !yield(StepAt(ix), h) {
				return
			}
		}
	}
}

// PathStepsRange iterates the steps in [start, end], both inclusive.
func (g *Graph) PathStepsRange(id PathID, start, end StepPtr) iter.Seq2[StepPtr, Handle] {
	return func(yield func(StepPtr, Handle) bool) {
		if int(id) >= len(g.paths) {
			return
		}
		steps := g.paths[id].steps
		lo, hi := start.Index(), end.Index()
		if lo < 0 {
			lo = 0
		}
		if hi >= len(steps) {
			hi = len(steps) - 1
		}
		for ix := lo; ix <= hi; ix++ {
			if !yield(StepAt(ix), steps[ix]) {
				return
			}
		}
	}
}

// StepsOnHandle iterates every path step that traverses the handle's
// node, in path order.
func (g *Graph) StepsOnHandle(h Handle) iter.Seq2[PathID, StepPtr] {
	return func(yield func(PathID, StepPtr) bool) {
		for _, occ := range g.occurrences[h.ID()] {
			if !yield(occ.Path, occ.Step) {
				return
			}
		}
	}
}

// NodeCoverage returns the number of path steps traversing the node.
func (g *Graph) NodeCoverage(id NodeID) int {
	return len(g.occurrences[id])
}

var complement = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = byte(i)
	}
	pairs := []struct{ a, b byte }{
		{'A', 'T'}, {'C', 'G'}, {'a', 't'}, {'c', 'g'},
	}
	for _, p := range pairs {
		t[p.a], t[p.b] = p.b, p.a
	}
	return t
}()

func reverseComplement(seq []byte) []byte {
	out := make([]byte, len(seq))
	for i, b := range seq {
		out[len(seq)-1-i] = complement[b]
	}
	return out
}
