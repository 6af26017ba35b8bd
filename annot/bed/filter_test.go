package bed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/gfaview/annot"
)

func parseSample(t *testing.T) *Records {
	t.Helper()
	recs, err := ParseReader("test.bed", strings.NewReader(sample))
	require.NoError(t, err)
	return recs
}

func TestZeroFilterPassesAll(t *testing.T) {
	recs := parseSample(t)
	assert.Len(t, NewFilter().Apply(recs), recs.Len())
}

func TestChrFilter(t *testing.T) {
	recs := parseSample(t)

	f := NewFilter()
	f.Chr = annot.FilterString{Op: annot.FilterStringEqual, Arg: "chr1"}

	got := f.Apply(recs)
	require.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, "chr1", string(r.SeqID()))
	}
}

func TestScoreFilter(t *testing.T) {
	recs := parseSample(t)

	f := NewFilter()
	f.Score = annot.FilterNum[float64]{Op: annot.FilterNumGE, Arg1: 900}

	// Rows without a numeric score fail a score predicate.
	got := f.Apply(recs)
	require.Len(t, got, 1)
	name, _ := got[0].Name()
	assert.Equal(t, "feat1", string(name))
}

func TestRestFilter(t *testing.T) {
	recs := parseSample(t)

	f := NewFilter()
	f.SetRest(5, annot.FilterString{Op: annot.FilterStringEqual, Arg: "-"})

	got := f.Apply(recs)
	require.Len(t, got, 1)
	name, _ := got[0].Name()
	assert.Equal(t, "feat2", string(name))
}

func TestQuickFilter(t *testing.T) {
	recs := parseSample(t)

	f := NewFilter()
	f.Quick.Filter = annot.FilterString{Op: annot.FilterStringContains, Arg: "feat"}
	f.Quick.SetColumn(ColName, true)

	// Rows without a fourth column have no value to match.
	got := f.Apply(recs)
	assert.Len(t, got, 3)
}

func TestRangeFilter(t *testing.T) {
	recs := parseSample(t)

	// Containment: a record passes only when [start, end] covers it.
	got := RangeFilter(50, 260).Apply(recs)
	require.Len(t, got, 2)
	assert.Equal(t, 100, got[0].Start())
	assert.Equal(t, 150, got[1].Start())

	// Boundaries are inclusive; a record reaching past the range end
	// is excluded.
	got = RangeFilter(100, 200).Apply(recs)
	require.Len(t, got, 1)
	assert.Equal(t, 100, got[0].Start())

	got = RangeFilter(120, 160).Apply(recs)
	assert.Empty(t, got)
}

func TestChrRangeFilter(t *testing.T) {
	recs := parseSample(t)

	got := ChrRangeFilter("chr1", 50, 260).Apply(recs)
	require.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, "chr1", string(r.SeqID()))
	}
}
