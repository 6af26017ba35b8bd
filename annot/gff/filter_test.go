package gff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/gfaview/annot"
)

func parseSample(t *testing.T, input string) *Records {
	t.Helper()
	recs, err := ParseReader("test.gff3", strings.NewReader(input))
	require.NoError(t, err)
	return recs
}

func TestZeroFilterPassesAll(t *testing.T) {
	recs := parseSample(t, sample)
	got := NewFilter().Apply(recs)
	assert.Len(t, got, 3)
}

func TestTypeFilter(t *testing.T) {
	recs := parseSample(t, sample)

	f := NewFilter()
	f.Type = annot.FilterString{Op: annot.FilterStringEqual, Arg: "gene"}

	got := f.Apply(recs)
	require.Len(t, got, 1)
	assert.Equal(t, "gene", string(got[0].Type()))
}

func TestScoreFilterRequiresScore(t *testing.T) {
	recs := parseSample(t, sample)

	f := NewFilter()
	f.Score = annot.FilterNum[float64]{Op: annot.FilterNumGT, Arg1: 0.5}

	// Records without a score fail a score predicate.
	got := f.Apply(recs)
	require.Len(t, got, 2)
	for _, r := range got {
		score, ok := r.Score()
		require.True(t, ok)
		assert.Greater(t, score, 0.5)
	}
}

func TestAttributeFilter(t *testing.T) {
	recs := parseSample(t, sample)

	f := NewFilter()
	f.SetAttribute("Parent", annot.FilterString{Op: annot.FilterStringEqual, Arg: "gene1"})

	got := f.Apply(recs)
	require.Len(t, got, 1)
	assert.Equal(t, "CDS", string(got[0].Type()))
}

// Records must pass both the per-column filter and the quick filter.
func TestQuickFilterComposition(t *testing.T) {
	const input = `chr1	s	gene	1	10	.	+	.	ID=g1;Name=BRCA1
chr1	s	CDS	2	8	.	+	.	ID=BRCA1cds;Name=other
chr1	s	gene	1	10	.	+	.	ID=g2;Name=TP53
chr1	s	exon	3	4	.	+	.	ID=e1;Name=BRCA2
`
	recs := parseSample(t, input)

	f := NewFilter()
	f.Type = annot.FilterString{Op: annot.FilterStringContainedIn, Arg: "gene CDS"}
	f.Quick.Filter = annot.FilterString{Op: annot.FilterStringContains, Arg: "BRCA"}
	f.Quick.SetColumn(Attr("Name"), true)
	f.Quick.SetColumn(Attr("ID"), true)

	got := f.Apply(recs)
	require.Len(t, got, 2)
	// The exon matches the quick filter but not the type filter; TP53
	// matches the type filter but not the quick filter.
	assert.Equal(t, "gene", string(got[0].Type()))
	assert.Equal(t, "CDS", string(got[1].Type()))
}

func TestQuickFilterDisabledColumn(t *testing.T) {
	recs := parseSample(t, sample)

	f := NewFilter()
	f.Quick.Filter = annot.FilterString{Op: annot.FilterStringContains, Arg: "BRCA"}
	f.Quick.SetColumn(Attr("Name"), false)

	// No enabled columns: nothing matches.
	assert.Empty(t, f.Apply(recs))
}

func TestRangeFilter(t *testing.T) {
	const input = `chr1	s	gene	0	10	.	+	.	ID=a
chr1	s	gene	10	20	.	+	.	ID=b
chr1	s	gene	25	30	.	+	.	ID=c
`
	recs := parseSample(t, input)

	// Containment: a record passes only when [start, end] covers it.
	got := RangeFilter(5, 22).Apply(recs)
	require.Len(t, got, 1)
	id, _ := got[0].GetFirst(Attr("ID"))
	assert.Equal(t, "b", string(id))

	// Boundaries are inclusive.
	got = RangeFilter(10, 20).Apply(recs)
	require.Len(t, got, 1)
	id, _ = got[0].GetFirst(Attr("ID"))
	assert.Equal(t, "b", string(id))

	// A record reaching past the range end is excluded.
	got = RangeFilter(20, 28).Apply(recs)
	assert.Empty(t, got)
}

func TestChrRangeFilter(t *testing.T) {
	const input = `chr1	s	gene	5	10	.	+	.	ID=a
chr2	s	gene	5	10	.	+	.	ID=b
`
	recs := parseSample(t, input)

	got := ChrRangeFilter("chr1", 0, 100).Apply(recs)
	require.Len(t, got, 1)
	assert.Equal(t, "chr1", string(got[0].SeqID()))
}
