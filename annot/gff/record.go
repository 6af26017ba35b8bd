package gff

import (
	"bytes"
	"strconv"

	"github.com/hupe1980/gfaview/annot"
)

// Record is one GFF3 feature line. Attribute values with duplicate
// keys accumulate in input order.
type Record struct {
	seqID  []byte
	source []byte
	typ    []byte

	start int
	end   int

	score    float64
	hasScore bool

	strand annot.Strand
	frame  []byte

	attrs    map[string][][]byte
	attrKeys []string // attribute keys in first-seen order
}

// SeqID implements annot.Record.
func (r *Record) SeqID() []byte { return r.seqID }

// Start implements annot.Record.
func (r *Record) Start() int { return r.start }

// End implements annot.Record.
func (r *Record) End() int { return r.end }

// Score implements annot.Record. A "." score field parses as absent.
func (r *Record) Score() (float64, bool) { return r.score, r.hasScore }

// Source returns the source column.
func (r *Record) Source() []byte { return r.source }

// Type returns the feature type column.
func (r *Record) Type() []byte { return r.typ }

// Strand returns the strand column.
func (r *Record) Strand() annot.Strand { return r.strand }

// Frame returns the frame column.
func (r *Record) Frame() []byte { return r.frame }

// AttributeKeys returns the record's attribute keys in first-seen
// order.
func (r *Record) AttributeKeys() []string { return r.attrKeys }

// Attributes returns the values of one attribute key.
func (r *Record) Attributes(key string) [][]byte { return r.attrs[key] }

// Columns implements annot.Record.
func (r *Record) Columns() []Column {
	cols := []Column{
		ColSeqID, ColSource, ColType, ColStart, ColEnd,
		ColScore, ColStrand, ColFrame,
	}
	for _, key := range r.attrKeys {
		cols = append(cols, Attr(key))
	}
	return cols
}

// GetFirst implements annot.Record.
func (r *Record) GetFirst(key Column) ([]byte, bool) {
	vals := r.GetAll(key)
	if len(vals) == 0 {
		return nil, false
	}
	return vals[0], true
}

// GetAll implements annot.Record.
func (r *Record) GetAll(key Column) [][]byte {
	switch key.Kind {
	case KindSeqID:
		return [][]byte{r.seqID}
	case KindSource:
		return [][]byte{r.source}
	case KindType:
		return [][]byte{r.typ}
	case KindStart:
		return [][]byte{[]byte(strconv.Itoa(r.start))}
	case KindEnd:
		return [][]byte{[]byte(strconv.Itoa(r.end))}
	case KindScore:
		if !r.hasScore {
			return nil
		}
		return [][]byte{[]byte(strconv.FormatFloat(r.score, 'g', -1, 64))}
	case KindStrand:
		return [][]byte{[]byte(r.strand.String())}
	case KindFrame:
		return [][]byte{r.frame}
	case KindAttribute:
		return r.attrs[key.Name]
	default:
		return nil
	}
}

// CanonicalLine re-emits the record as a tab-separated GFF3 line with
// attributes in first-seen key order. For records without duplicate
// attribute keys this reproduces the parsed input bytewise.
func (r *Record) CanonicalLine() []byte {
	var buf bytes.Buffer
	buf.Write(r.seqID)
	buf.WriteByte('\t')
	buf.Write(r.source)
	buf.WriteByte('\t')
	buf.Write(r.typ)
	buf.WriteByte('\t')
	buf.WriteString(strconv.Itoa(r.start))
	buf.WriteByte('\t')
	buf.WriteString(strconv.Itoa(r.end))
	buf.WriteByte('\t')
	if r.hasScore {
		buf.WriteString(strconv.FormatFloat(r.score, 'g', -1, 64))
	} else {
		buf.WriteByte('.')
	}
	buf.WriteByte('\t')
	buf.WriteString(r.strand.String())
	buf.WriteByte('\t')
	buf.Write(r.frame)
	buf.WriteByte('\t')
	for i, key := range r.attrKeys {
		for j, val := range r.attrs[key] {
			if i > 0 || j > 0 {
				buf.WriteByte(';')
			}
			buf.WriteString(key)
			buf.WriteByte('=')
			buf.Write(val)
		}
	}
	return buf.Bytes()
}
