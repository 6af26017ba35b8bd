package project

import (
	"github.com/hupe1980/gfaview/geom"
	"github.com/hupe1980/gfaview/graph"
	"github.com/hupe1980/gfaview/pathindex"
)

// Anchor places a merged group of labels at a node: Offset is the unit
// direction the labels are pushed away from the node run, Labels are
// the merged label strings in step order.
type Anchor struct {
	Offset geom.Point
	Labels []string
}

// cluster accumulates one run of labelled nodes during the walk.
type cluster struct {
	ids    []graph.NodeID
	labels []string
}

// ClusterLabels walks the step range in path order and merges the
// labels of nodes whose screen-space centres fall within radius of the
// cluster's first node. Each cluster is anchored at the middle node of
// its run; its offset is the normalised perpendicular of the vector
// from the first node's start point to the last node's end point.
//
// Nodes projecting to the same screen point always share a cluster.
// The output is deterministic for identical inputs.
func ClusterLabels(steps []pathindex.Step, rng StepRange, labels Labels, positions []geom.NodePos, view geom.View, radius float32) map[graph.NodeID]Anchor {
	out := make(map[graph.NodeID]Anchor)
	if rng.IsEmpty() {
		return out
	}

	var (
		cur      cluster
		curStart geom.Point
	)
	seen := make(map[graph.NodeID]struct{})

	flush := func() {
		if len(cur.ids) == 0 {
			return
		}
		first := nodePos(positions, cur.ids[0])
		last := nodePos(positions, cur.ids[len(cur.ids)-1])
		anchor := cur.ids[len(cur.ids)/2]
		out[anchor] = Anchor{
			Offset: last.P1.Sub(first.P0).Perp().Normalized(),
			Labels: cur.labels,
		}
		cur = cluster{}
	}

	for i := rng.Lo; i < rng.Hi && i < len(steps); i++ {
		id := steps[i].Handle.ID()
		nodeLabels, ok := labels[id]
		if !ok || len(nodeLabels) == 0 {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		center := view.Apply(nodePos(positions, id).Center())
		if len(cur.ids) == 0 || center.Dist(curStart) > radius {
			flush()
			curStart = center
		}
		cur.ids = append(cur.ids, id)
		cur.labels = append(cur.labels, nodeLabels...)
	}
	flush()

	return out
}

func nodePos(positions []geom.NodePos, id graph.NodeID) geom.NodePos {
	i := int(id) - 1
	if i < 0 || i >= len(positions) {
		return geom.NodePos{}
	}
	return positions[i]
}
