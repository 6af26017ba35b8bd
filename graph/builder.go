package graph

import (
	"fmt"
	"sort"
)

// Builder assembles a Graph. Calls are not safe for concurrent use;
// the Graph returned by Build is.
type Builder struct {
	seqs    map[NodeID][]byte
	edges   []edge
	paths   []path
	pathIDs map[string]PathID
}

type edge struct {
	from Handle
	to   Handle
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		seqs:    make(map[NodeID][]byte),
		pathIDs: make(map[string]PathID),
	}
}

// AddNode adds a node with its sequence. Adding the same ID twice
// replaces the sequence.
func (b *Builder) AddNode(id NodeID, seq []byte) {
	s := make([]byte, len(seq))
	copy(s, seq)
	b.seqs[id] = s
}

// AddEdge adds a bidirected edge between two handles. Both nodes must
// have been added before Build is called.
func (b *Builder) AddEdge(from, to Handle) {
	b.edges = append(b.edges, edge{from: from, to: to})
}

// AddPath adds a named path traversing the given handles in order. It
// returns an error if the name is already taken.
func (b *Builder) AddPath(name string, steps ...Handle) (PathID, error) {
	if _, ok := b.pathIDs[name]; ok {
		return 0, fmt.Errorf("graph: duplicate path name %q", name)
	}
	id := PathID(len(b.paths))
	ss := make([]Handle, len(steps))
	copy(ss, steps)
	b.paths = append(b.paths, path{name: name, steps: ss})
	b.pathIDs[name] = id
	return id, nil
}

// Build freezes the builder into an immutable Graph. It returns an
// error if an edge or path step references a missing node.
func (b *Builder) Build() (*Graph, error) {
	ids := make([]NodeID, 0, len(b.seqs))
	for id := range b.seqs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	g := &Graph{
		nodes:       make([]node, len(ids)),
		nodeIDs:     ids,
		idOffsets:   make(map[NodeID]uint32, len(ids)),
		pathIDs:     b.pathIDs,
		occurrences: make(map[NodeID][]Occurrence),
	}
	for i, id := range ids {
		g.nodes[i].seq = b.seqs[id]
		g.idOffsets[id] = uint32(i)
		g.totalLen += len(b.seqs[id])
	}

	for _, e := range b.edges {
		if err := g.addEdge(e.from, e.to); err != nil {
			return nil, err
		}
	}
	g.edgeCount = len(b.edges)

	g.paths = b.paths
	for pid, p := range g.paths {
		for ix, h := range p.steps {
			id := h.ID()
			if !g.HasNode(id) {
				return nil, fmt.Errorf("graph: path %q step %d references missing node %d", p.name, ix, id)
			}
			g.occurrences[id] = append(g.occurrences[id], Occurrence{
				Path: PathID(pid),
				Step: StepAt(ix),
			})
		}
	}

	return g, nil
}

// addEdge records the edge on the appropriate side of both endpoints.
// An edge from handle a to handle b leaves a's right side and enters
// b's left side, with sides swapped for reverse orientations.
func (g *Graph) addEdge(from, to Handle) error {
	fn, ok := g.node(from.ID())
	if !ok {
		return fmt.Errorf("graph: edge references missing node %d", from.ID())
	}
	tn, ok := g.node(to.ID())
	if !ok {
		return fmt.Errorf("graph: edge references missing node %d", to.ID())
	}

	if from.IsReverse() {
		fn.left = append(fn.left, to)
	} else {
		fn.right = append(fn.right, to)
	}
	if to.IsReverse() {
		tn.right = append(tn.right, from.Flip())
	} else {
		tn.left = append(tn.left, from.Flip())
	}
	return nil
}
