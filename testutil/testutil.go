package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/gfaview/geom"
	"github.com/hupe1980/gfaview/graph"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// UniformPoints generates num random points inside bounds.
// Locks only once per call (preferred over calling Float32 in a loop).
func (r *RNG) UniformPoints(num int, bounds geom.Rect) []geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, h := bounds.Width(), bounds.Height()
	pts := make([]geom.Point, num)
	for i := range pts {
		pts[i] = geom.Pt(
			bounds.Min().X+r.rand.Float32()*w,
			bounds.Min().Y+r.rand.Float32()*h,
		)
	}
	return pts
}

// Sequence generates a random DNA sequence of length n.
func (r *RNG) Sequence(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	const bases = "ACGT"
	seq := make([]byte, n)
	for i := range seq {
		seq[i] = bases[r.rand.Intn(4)]
	}
	return seq
}

// LinearGraph builds a chain graph with one forward node per length,
// consecutive nodes joined by edges, and a single path named pathName
// walking all nodes in order. Node IDs are 1..len(lengths); sequences
// are deterministic repeats.
func LinearGraph(pathName string, lengths ...int) *graph.Graph {
	b := graph.NewBuilder()

	steps := make([]graph.Handle, 0, len(lengths))
	for i, n := range lengths {
		id := graph.NodeID(i + 1)
		seq := make([]byte, n)
		for j := range seq {
			seq[j] = "ACGT"[(i+j)%4]
		}
		b.AddNode(id, seq)
		steps = append(steps, graph.Forward(id))
		if i > 0 {
			b.AddEdge(graph.Forward(graph.NodeID(i)), graph.Forward(id))
		}
	}
	if _, err := b.AddPath(pathName, steps...); err != nil {
		panic(err)
	}

	g, err := b.Build()
	if err != nil {
		panic(err)
	}
	return g
}

// LinearPositions lays the nodes of a chain graph left to right on the
// x axis, one unit wide each, for projection and clustering tests.
func LinearPositions(n int) []geom.NodePos {
	out := make([]geom.NodePos, n)
	for i := range out {
		x := float32(i)
		out[i] = geom.NodePos{
			P0: geom.Pt(x, 0),
			P1: geom.Pt(x+1, 0),
		}
	}
	return out
}
