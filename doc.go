// Package gfaview provides the viewer core for pangenome variation
// graphs: an immutable handle-graph with embedded paths, a path
// position index, annotation parsing (GFF3, BED) with column-typed
// filtering, projection of annotation intervals onto node sets and
// label clusters, and a query service for interactive use.
//
// # Quick Start
//
//	b := graph.NewBuilder()
//	b.AddNode(1, []byte("GATTACA"))
//	b.AddNode(2, []byte("TTG"))
//	b.AddEdge(graph.Forward(1), graph.Forward(2))
//	b.AddPath("chr1", graph.Forward(1), graph.Forward(2))
//	g, _ := b.Build()
//
//	q := gfaview.New(g)
//	defer q.Close()
//
//	recs, _ := gff.ParseFile("genes.gff3.gz")
//	filtered := gff.ChrRangeFilter("chr1", 1, 10).Apply(recs)
//
// Long queries run on the shared worker pool and are observed by
// polling the returned handle:
//
//	res, _ := gfaview.RunQuery(ctx, q, func(q *gfaview.GraphQuery) int {
//		return q.Graph().TotalLength()
//	})
//	for !res.IsReady() { ... }
//	total, _ := res.TakeResultIfReady()
//
// The graph and its indexes are immutable after construction and safe
// to share across goroutines.
package gfaview
