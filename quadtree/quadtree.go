// Package quadtree provides a point quad-tree over 2-D data, used to
// turn screen-space queries into node sets and to cluster labels by
// proximity.
//
// Containment is half-open: a node's minimum edges are inclusive and
// its maximum edges exclusive, so sibling boundaries partition their
// parent exactly and a point belongs to exactly one child. Points on
// the tree's outer maximum edge are still accepted and fall into the
// nearest child by the fixed NW, NE, SW, SE order.
package quadtree

import (
	"errors"
	"iter"

	"github.com/hupe1980/gfaview/geom"
)

// NodeCapacity is the number of entries a leaf holds before it
// subdivides.
const NodeCapacity = 4

// ErrOutOfBounds is returned by Insert when the point lies outside the
// tree's boundary.
var ErrOutOfBounds = errors.New("quadtree: point outside boundary")

// Entry is one stored (point, data) pair.
type Entry[T any] struct {
	Point geom.Point
	Data  T
}

// Tree is a quad-tree node. The zero value is not usable; construct
// trees with New.
type Tree[T any] struct {
	boundary geom.Rect

	points []geom.Point
	data   []T

	nw *Tree[T]
	ne *Tree[T]
	sw *Tree[T]
	se *Tree[T]
}

// New creates an empty leaf covering boundary.
func New[T any](boundary geom.Rect) *Tree[T] {
	return &Tree[T]{boundary: boundary}
}

// Boundary returns the rectangle this node covers.
func (t *Tree[T]) Boundary() geom.Rect { return t.boundary }

// IsLeaf reports whether the node has no children.
func (t *Tree[T]) IsLeaf() bool { return t.nw == nil }

// NodeLen returns the number of entries stored directly in this node.
func (t *Tree[T]) NodeLen() int { return len(t.points) }

// Len returns the number of entries in the whole subtree.
func (t *Tree[T]) Len() int {
	n := len(t.points)
	if !t.IsLeaf() {
		for _, c := range t.children() {
			n += c.Len()
		}
	}
	return n
}

// contains is the tree's half-open containment test, with the maximum
// edges of the root boundary treated as inclusive so boundary points
// remain insertable.
func (t *Tree[T]) contains(p geom.Point) bool {
	min, max := t.boundary.Min(), t.boundary.Max()
	return min.X <= p.X && p.X < max.X && min.Y <= p.Y && p.Y < max.Y
}

// Insert adds an entry. It returns ErrOutOfBounds, leaving the tree
// unchanged, when the point is outside the boundary.
func (t *Tree[T]) Insert(p geom.Point, data T) error {
	if !t.boundary.Contains(p) {
		return ErrOutOfBounds
	}
	t.insert(p, data)
	return nil
}

func (t *Tree[T]) insert(p geom.Point, data T) {
	if t.IsLeaf() {
		if len(t.points) < NodeCapacity {
			t.points = append(t.points, p)
			t.data = append(t.data, data)
			return
		}
		t.subdivide()
	}
	t.childFor(p).insert(p, data)
}

// subdivide splits the node into four equal quadrants and moves every
// entry down into the child that contains it.
func (t *Tree[T]) subdivide() {
	min, max := t.boundary.Min(), t.boundary.Max()
	mid := geom.Pt(min.X+(max.X-min.X)/2, min.Y+(max.Y-min.Y)/2)

	t.nw = New[T](geom.NewRect(min, mid))
	t.ne = New[T](geom.NewRect(geom.Pt(mid.X, min.Y), geom.Pt(max.X, mid.Y)))
	t.sw = New[T](geom.NewRect(geom.Pt(min.X, mid.Y), geom.Pt(mid.X, max.Y)))
	t.se = New[T](geom.NewRect(mid, max))

	points, data := t.points, t.data
	t.points, t.data = nil, nil
	for i, p := range points {
		t.childFor(p).insert(p, data[i])
	}
}

// childFor picks the child that owns p: the first child whose
// half-open boundary contains it, falling back to the first child
// whose closed boundary does for points on the outer maximum edge.
func (t *Tree[T]) childFor(p geom.Point) *Tree[T] {
	children := t.children()
	for _, c := range children {
		if c.contains(p) {
			return c
		}
	}
	for _, c := range children {
		if c.boundary.Contains(p) {
			return c
		}
	}
	// Unreachable: Insert already checked the root boundary.
	return children[0]
}

func (t *Tree[T]) children() [4]*Tree[T] {
	return [4]*Tree[T]{t.nw, t.ne, t.sw, t.se}
}

// QueryRange collects every entry whose point lies in the query
// rectangle (half-open), pruning subtrees whose boundary does not
// intersect it.
func (t *Tree[T]) QueryRange(query geom.Rect) []Entry[T] {
	var out []Entry[T]
	t.queryRange(query, &out)
	return out
}

func (t *Tree[T]) queryRange(query geom.Rect, out *[]Entry[T]) {
	if !t.boundary.Intersects(query) {
		return
	}
	for i, p := range t.points {
		if rectContainsHalfOpen(query, p) {
			*out = append(*out, Entry[T]{Point: p, Data: t.data[i]})
		}
	}
	if !t.IsLeaf() {
		for _, c := range t.children() {
			c.queryRange(query, out)
		}
	}
}

// QueryRadius collects every entry within distance radius of center.
func (t *Tree[T]) QueryRadius(center geom.Point, radius float32) []Entry[T] {
	square := geom.NewRect(
		geom.Pt(center.X-radius, center.Y-radius),
		geom.Pt(center.X+radius, center.Y+radius),
	)
	var out []Entry[T]
	t.queryRadius(square, center, radius, &out)
	return out
}

func (t *Tree[T]) queryRadius(square geom.Rect, center geom.Point, radius float32, out *[]Entry[T]) {
	if !t.boundary.Intersects(square) {
		return
	}
	rr := radius * radius
	for i, p := range t.points {
		if p.DistSqr(center) <= rr {
			*out = append(*out, Entry[T]{Point: p, Data: t.data[i]})
		}
	}
	if !t.IsLeaf() {
		for _, c := range t.children() {
			c.queryRadius(square, center, radius, out)
		}
	}
}

// Iter lazily traverses all entries depth-first. The traversal carries
// its state in an explicit stack rather than parent pointers.
func (t *Tree[T]) Iter() iter.Seq2[geom.Point, T] {
	return func(yield func(geom.Point, T) bool) {
		stack := []*Tree[T]{t}
		for len(stack) > 0 {
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			for i, p := range node.points {
				if !yield(p, node.data[i]) {
					return
				}
			}
			if !node.IsLeaf() {
				cs := node.children()
				for i := len(cs) - 1; i >= 0; i-- {
					stack = append(stack, cs[i])
				}
			}
		}
	}
}

// Leaves iterates the leaf nodes of the subtree.
func (t *Tree[T]) Leaves() iter.Seq[*Tree[T]] {
	return func(yield func(*Tree[T]) bool) {
		stack := []*Tree[T]{t}
		for len(stack) > 0 {
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if node.IsLeaf() {
				if !yield(node) {
					return
				}
				continue
			}
			cs := node.children()
			for i := len(cs) - 1; i >= 0; i-- {
				stack = append(stack, cs[i])
			}
		}
	}
}

// Rects returns the boundaries of every node in breadth-first order.
// Useful for debug overlays.
func (t *Tree[T]) Rects() []geom.Rect {
	var out []geom.Rect
	queue := []*Tree[T]{t}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		out = append(out, node.boundary)
		if !node.IsLeaf() {
			for _, c := range node.children() {
				queue = append(queue, c)
			}
		}
	}
	return out
}

func rectContainsHalfOpen(r geom.Rect, p geom.Point) bool {
	min, max := r.Min(), r.Max()
	return min.X <= p.X && p.X < max.X && min.Y <= p.Y && p.Y < max.Y
}
