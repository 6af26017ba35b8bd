// Package testutil provides testing utilities for gfaview.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for building small deterministic graphs and for
// generating seeded random points and sequences.
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(100, geom.NewRect(geom.Pt(0, 0), geom.Pt(1, 1)))
//
//	g := testutil.LinearGraph("P", 10, 20, 30, 40, 50)
package testutil
