// Package bed implements the BED annotation dialect: records, a
// lenient streaming parser, and the column-typed filter.
//
// BED columns beyond the mandatory first three are addressed by their
// absolute index in the row; an optional single-line header may give
// trailing columns names.
package bed

import "strconv"

// ColumnKind discriminates the mandatory BED columns from the open
// indexed arm.
type ColumnKind uint8

const (
	// KindChr is the target sequence name column.
	KindChr ColumnKind = iota
	// KindStart is the interval start column.
	KindStart
	// KindEnd is the interval end column.
	KindEnd
	// KindIndex is the open arm: a trailing column addressed by its
	// absolute 0-based index in the row, always at least 3.
	KindIndex
)

// Column is a BED column key. For KindIndex, Ix carries the absolute
// column index; it is zero otherwise.
type Column struct {
	Kind ColumnKind
	Ix   int
}

// The mandatory BED columns.
var (
	ColChr   = Column{Kind: KindChr}
	ColStart = Column{Kind: KindStart}
	ColEnd   = Column{Kind: KindEnd}
)

// Index returns the column key for the trailing column at absolute
// index ix. ix must be at least 3.
func Index(ix int) Column {
	return Column{Kind: KindIndex, Ix: ix}
}

// ColName is the conventional fourth column.
var ColName = Index(3)

// Optional implements annot.ColumnKey.
func (c Column) Optional() bool {
	return c.Kind == KindIndex
}

// String implements fmt.Stringer.
func (c Column) String() string {
	switch c.Kind {
	case KindChr:
		return "chr"
	case KindStart:
		return "start"
	case KindEnd:
		return "end"
	case KindIndex:
		return "column_" + strconv.Itoa(c.Ix)
	default:
		return "unknown"
	}
}

// Header is one named trailing column from the optional '#' header
// line.
type Header struct {
	Ix   int
	Name string
}
