// Package annot defines the uniform record and collection contracts
// shared by the annotation dialects (GFF3, BED), the column-typed
// filter engine, and the path-name coordinate helpers.
//
// Annotation values are byte strings throughout: the dialects compare
// and store raw bytes and only convert to UTF-8 at presentation
// boundaries.
package annot

import "fmt"

// ColumnKey is implemented by the per-dialect column enumerations.
// Keys must be usable as map keys.
type ColumnKey interface {
	comparable
	fmt.Stringer

	// Optional reports whether the column may be absent from a record.
	Optional() bool
}

// Record is one annotation row: an interval on a named target sequence
// plus dialect-specific columns.
type Record[K ColumnKey] interface {
	// SeqID is the target sequence name the interval refers to.
	SeqID() []byte
	// Start is the 0-based inclusive interval start.
	Start() int
	// End is the 0-based exclusive interval end. Start <= End.
	End() int
	// Score returns the record score if the dialect carries one.
	Score() (float64, bool)

	// Columns enumerates the keys this record has values for.
	Columns() []K
	// GetFirst returns the first value of a column.
	GetFirst(key K) ([]byte, bool)
	// GetAll returns every value of a column, in input order.
	GetAll(key K) [][]byte
}

// Collection is a parsed annotation file.
type Collection[K ColumnKey, R Record[K]] interface {
	// FileName is the name of the source file.
	FileName() string
	// Len returns the number of records.
	Len() int
	// Records returns the record slice, in file order.
	Records() []R

	// AllColumns enumerates every column key the collection uses.
	AllColumns() []K
	// MandatoryColumns returns the keys every record has a value for.
	MandatoryColumns() []K
	// OptionalColumns returns the remaining keys.
	OptionalColumns() []K
}

// Strand is a feature's orientation relative to its target sequence.
type Strand int8

const (
	// StrandNone marks features with no meaningful strand.
	StrandNone Strand = iota
	// StrandPos is the forward strand.
	StrandPos
	// StrandNeg is the reverse strand.
	StrandNeg
)

// ParseStrand decodes the single-character strand field: "+", "-" or
// ".".
func ParseStrand(field []byte) (Strand, bool) {
	if len(field) != 1 {
		return StrandNone, false
	}
	switch field[0] {
	case '+':
		return StrandPos, true
	case '-':
		return StrandNeg, true
	case '.':
		return StrandNone, true
	default:
		return StrandNone, false
	}
}

// String implements fmt.Stringer.
func (s Strand) String() string {
	switch s {
	case StrandPos:
		return "+"
	case StrandNeg:
		return "-"
	default:
		return "."
	}
}
