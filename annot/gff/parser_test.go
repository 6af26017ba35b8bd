package gff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/gfaview/annot"
)

const sample = `##gff-version 3
# a comment
chr1	havana	gene	1000	2000	.	+	.	ID=gene1;Name=BRCA1
chr1	havana	CDS	1200	1500	0.9	-	0	ID=cds1;Parent=gene1
chr2	ensembl	exon	50	80	12	.	.	ID=exon1;Alias=a;Alias=b
`

func TestParseReader(t *testing.T) {
	recs, err := ParseReader("sample.gff3", strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, "sample.gff3", recs.FileName())
	require.Equal(t, 3, recs.Len())

	r := recs.Records()[0]
	assert.Equal(t, "chr1", string(r.SeqID()))
	assert.Equal(t, "havana", string(r.Source()))
	assert.Equal(t, "gene", string(r.Type()))
	assert.Equal(t, 1000, r.Start())
	assert.Equal(t, 2000, r.End())
	assert.Equal(t, annot.StrandPos, r.Strand())

	_, hasScore := r.Score()
	assert.False(t, hasScore)

	name, ok := r.GetFirst(Attr("Name"))
	require.True(t, ok)
	assert.Equal(t, "BRCA1", string(name))

	score, hasScore := recs.Records()[1].Score()
	require.True(t, hasScore)
	assert.InDelta(t, 0.9, score, 1e-9)
	assert.Equal(t, annot.StrandNeg, recs.Records()[1].Strand())
}

func TestParseDuplicateAttributeKeys(t *testing.T) {
	recs, err := ParseReader("x", strings.NewReader(sample))
	require.NoError(t, err)

	r := recs.Records()[2]
	vals := r.GetAll(Attr("Alias"))
	require.Len(t, vals, 2)
	assert.Equal(t, "a", string(vals[0]))
	assert.Equal(t, "b", string(vals[1]))
}

func TestAttributeKeyUnion(t *testing.T) {
	recs, err := ParseReader("x", strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, []string{"ID", "Name", "Parent", "Alias"}, recs.AttributeKeys())

	cols := recs.AllColumns()
	assert.Contains(t, cols, Attr("Alias"))
	assert.Contains(t, cols, ColSeqID)
	assert.Equal(t, []Column{ColSeqID, ColStart, ColEnd}, recs.MandatoryColumns())
}

func TestParseTrailingPartialLine(t *testing.T) {
	// No trailing newline: the last line is discarded.
	input := "chr1\ts\tgene\t1\t2\t.\t+\t.\tID=a\nchr1\ts\tgene\t3\t4\t.\t+\t.\tID=b"
	recs, err := ParseReader("x", strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, recs.Len())
}

func TestParseStrict(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"too few fields", "chr1\tsrc\tgene\t1\t2\n"},
		{"bad start", "chr1\tsrc\tgene\tx\t2\t.\t+\t.\tID=a\n"},
		{"bad end", "chr1\tsrc\tgene\t1\ty\t.\t+\t.\tID=a\n"},
		{"start after end", "chr1\tsrc\tgene\t5\t2\t.\t+\t.\tID=a\n"},
		{"bad score", "chr1\tsrc\tgene\t1\t2\tzz\t+\t.\tID=a\n"},
		{"bad strand", "chr1\tsrc\tgene\t1\t2\t.\t*\t.\tID=a\n"},
		{"attr without equals", "chr1\tsrc\tgene\t1\t2\t.\t+\t.\tbroken\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseReader("bad.gff3", strings.NewReader(tt.line))
			require.Error(t, err)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, "bad.gff3", pe.Name)
			assert.Equal(t, 1, pe.Line)
		})
	}
}

func TestParseErrorReportsLine(t *testing.T) {
	input := "# header\nchr1\ts\tgene\t1\t2\t.\t+\t.\tID=a\nbroken line\n"
	_, err := ParseReader("x", strings.NewReader(input))
	require.Error(t, err)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 3, pe.Line)
}

// Parsing a line and re-emitting it in canonical order must reproduce
// the input bytewise when no attribute key repeats.
func TestCanonicalLineRoundTrip(t *testing.T) {
	lines := []string{
		"chr1\thavana\tgene\t1000\t2000\t.\t+\t.\tID=gene1;Name=BRCA1",
		"chr1\thavana\tCDS\t1200\t1500\t0.9\t-\t0\tID=cds1;Parent=gene1",
		"scaffold_7\t.\tmatch\t1\t1\t250\t.\t.\tTarget=t1",
	}
	for _, line := range lines {
		recs, err := ParseReader("x", strings.NewReader(line+"\n"))
		require.NoError(t, err)
		require.Equal(t, 1, recs.Len())
		assert.Equal(t, line, string(recs.Records()[0].CanonicalLine()))
	}
}
