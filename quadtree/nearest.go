package quadtree

import "github.com/hupe1980/gfaview/geom"

// Nearest returns the stored entry closest to p, searching leaves in
// best-first order and pruning nodes whose boundary is farther than
// the best distance found so far.
func (t *Tree[T]) Nearest(p geom.Point) (Entry[T], bool) {
	var (
		best     Entry[T]
		bestDist float32
		found    bool
	)

	stack := []*Tree[T]{t}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if found && rectDist(node.boundary, p) > bestDist {
			continue
		}

		for i, q := range node.points {
			d := q.Dist(p)
			if !found || d < bestDist {
				best = Entry[T]{Point: q, Data: node.data[i]}
				bestDist = d
				found = true
			}
		}
		if !node.IsLeaf() {
			// Push the closest child last so it is explored first.
			cs := node.children()
			order := [4]int{0, 1, 2, 3}
			for i := 0; i < 3; i++ {
				for j := i + 1; j < 4; j++ {
					if rectDist(cs[order[j]].boundary, p) > rectDist(cs[order[i]].boundary, p) {
						order[i], order[j] = order[j], order[i]
					}
				}
			}
			for _, ix := range order {
				stack = append(stack, cs[ix])
			}
		}
	}

	return best, found
}

// NearestLeaf returns the leaf node holding the entry closest to p.
// The second return is false when the tree is empty.
func (t *Tree[T]) NearestLeaf(p geom.Point) (*Tree[T], bool) {
	node, _ := t.nearestSlot(p)
	return node, node != nil
}

// DeleteNearest removes the entry closest to p. It reports whether an
// entry was removed.
func (t *Tree[T]) DeleteNearest(p geom.Point) bool {
	node, ix := t.nearestSlot(p)
	if node == nil {
		return false
	}
	node.points = append(node.points[:ix], node.points[ix+1:]...)
	node.data = append(node.data[:ix], node.data[ix+1:]...)
	return true
}

// nearestSlot locates the node and entry index of the closest entry.
func (t *Tree[T]) nearestSlot(p geom.Point) (*Tree[T], int) {
	var (
		bestNode *Tree[T]
		bestIx   int
		bestDist float32
		found    bool
	)

	stack := []*Tree[T]{t}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if found && rectDist(node.boundary, p) > bestDist {
			continue
		}
		for i, q := range node.points {
			d := q.Dist(p)
			if !found || d < bestDist {
				bestNode, bestIx, bestDist = node, i, d
				found = true
			}
		}
		if !node.IsLeaf() {
			for _, c := range node.children() {
				stack = append(stack, c)
			}
		}
	}

	if !found {
		return nil, 0
	}
	return bestNode, bestIx
}

// rectDist is the distance from p to the closest point of r, zero when
// p lies inside.
func rectDist(r geom.Rect, p geom.Point) float32 {
	min, max := r.Min(), r.Max()
	var dx, dy float32
	switch {
	case p.X < min.X:
		dx = min.X - p.X
	case p.X > max.X:
		dx = p.X - max.X
	}
	switch {
	case p.Y < min.Y:
		dy = min.Y - p.Y
	case p.Y > max.Y:
		dy = p.Y - max.Y
	}
	return geom.Pt(dx, dy).Length()
}
