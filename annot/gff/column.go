// Package gff implements the GFF3 annotation dialect: records, a
// strict streaming parser, and the column-typed filter.
package gff

// ColumnKind discriminates the fixed GFF3 columns from the open
// attribute arm.
type ColumnKind uint8

const (
	// KindSeqID is the target sequence name column.
	KindSeqID ColumnKind = iota
	// KindSource is the source column.
	KindSource
	// KindType is the feature type column.
	KindType
	// KindStart is the interval start column.
	KindStart
	// KindEnd is the interval end column.
	KindEnd
	// KindScore is the score column.
	KindScore
	// KindStrand is the strand column.
	KindStrand
	// KindFrame is the frame column.
	KindFrame
	// KindAttribute is the open arm: one key of the ninth field's
	// attribute list.
	KindAttribute
)

// Column is a GFF3 column key. For KindAttribute, Name carries the
// attribute key; it is empty otherwise.
type Column struct {
	Kind ColumnKind
	Name string
}

// The fixed GFF3 columns.
var (
	ColSeqID  = Column{Kind: KindSeqID}
	ColSource = Column{Kind: KindSource}
	ColType   = Column{Kind: KindType}
	ColStart  = Column{Kind: KindStart}
	ColEnd    = Column{Kind: KindEnd}
	ColScore  = Column{Kind: KindScore}
	ColStrand = Column{Kind: KindStrand}
	ColFrame  = Column{Kind: KindFrame}
)

// Attr returns the column key for a named attribute.
func Attr(name string) Column {
	return Column{Kind: KindAttribute, Name: name}
}

// Optional implements annot.ColumnKey. Only seq_id, start and end are
// mandatory.
func (c Column) Optional() bool {
	switch c.Kind {
	case KindSeqID, KindStart, KindEnd:
		return false
	default:
		return true
	}
}

// String implements fmt.Stringer.
func (c Column) String() string {
	switch c.Kind {
	case KindSeqID:
		return "seq_id"
	case KindSource:
		return "source"
	case KindType:
		return "type"
	case KindStart:
		return "start"
	case KindEnd:
		return "end"
	case KindScore:
		return "score"
	case KindStrand:
		return "strand"
	case KindFrame:
		return "frame"
	case KindAttribute:
		return c.Name
	default:
		return "unknown"
	}
}
