package annot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathNameChrRange(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantSeqID string
		wantStart int
		wantEnd   int
		ok        bool
	}{
		{"full form", "P#chr1:100-250", "chr1", 100, 250, true},
		{"no hash", "chr1:100-250", "", 0, 0, false},
		{"terminal hash", "P#", "", 0, 0, false},
		{"no colon", "P#chr1", "", 0, 0, false},
		{"empty seq id", "P#:100-250", "", 0, 0, false},
		{"no dash", "P#chr1:100", "", 0, 0, false},
		{"bad start", "P#chr1:x-250", "", 0, 0, false},
		{"bad end", "P#chr1:100-y", "", 0, 0, false},
		{"negative", "P#chr1:-5-10", "", 0, 0, false},
		{"second hash kept in seq", "a#b#c:1-2", "b#c", 1, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seqID, start, end, ok := PathNameChrRange([]byte(tt.input))
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.wantSeqID, string(seqID))
				assert.Equal(t, tt.wantStart, start)
				assert.Equal(t, tt.wantEnd, end)
			}
		})
	}
}

func TestPathNameRange(t *testing.T) {
	start, end, ok := PathNameRange([]byte("chr1:100-250"))
	require.True(t, ok)
	assert.Equal(t, 100, start)
	assert.Equal(t, 250, end)

	_, _, ok = PathNameRange([]byte("chr1"))
	assert.False(t, ok)
}

func TestPathNameOffset(t *testing.T) {
	off, ok := PathNameOffset([]byte("P#chr1:100-250"))
	require.True(t, ok)
	assert.Equal(t, 100, off)

	_, ok = PathNameOffset([]byte("P"))
	assert.False(t, ok)
}

func TestStrand(t *testing.T) {
	tests := []struct {
		input string
		want  Strand
		ok    bool
	}{
		{"+", StrandPos, true},
		{"-", StrandNeg, true},
		{".", StrandNone, true},
		{"x", StrandNone, false},
		{"", StrandNone, false},
		{"++", StrandNone, false},
	}
	for _, tt := range tests {
		got, ok := ParseStrand([]byte(tt.input))
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}

	assert.Equal(t, "+", StrandPos.String())
	assert.Equal(t, "-", StrandNeg.String())
	assert.Equal(t, ".", StrandNone.String())
}
