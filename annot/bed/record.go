package bed

import "strconv"

// Record is one BED row: the mandatory chr/start/end triple plus any
// trailing columns, kept as raw bytes.
type Record struct {
	chr   []byte
	start int
	end   int
	rest  [][]byte
}

// SeqID implements annot.Record.
func (r *Record) SeqID() []byte { return r.chr }

// Start implements annot.Record.
func (r *Record) Start() int { return r.start }

// End implements annot.Record.
func (r *Record) End() int { return r.end }

// Score implements annot.Record. The conventional fifth column is
// parsed lazily; a missing or non-numeric value reads as absent.
func (r *Record) Score() (float64, bool) {
	raw, ok := r.Rest(4)
	if !ok {
		return 0, false
	}
	score, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return 0, false
	}
	return score, true
}

// Name returns the conventional fourth column.
func (r *Record) Name() ([]byte, bool) { return r.Rest(3) }

// Rest returns the trailing column at absolute index ix (ix >= 3).
func (r *Record) Rest(ix int) ([]byte, bool) {
	i := ix - 3
	if i < 0 || i >= len(r.rest) {
		return nil, false
	}
	return r.rest[i], true
}

// RestLen returns the number of trailing columns.
func (r *Record) RestLen() int { return len(r.rest) }

// Columns implements annot.Record.
func (r *Record) Columns() []Column {
	cols := []Column{ColChr, ColStart, ColEnd}
	for i := range r.rest {
		cols = append(cols, Index(i+3))
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
	case KindChr:
		return [][]byte{r.chr}
	case KindStart:
		return [][]byte{[]byte(strconv.Itoa(r.start))}
	case KindEnd:
		return [][]byte{[]byte(strconv.Itoa(r.end))}
	case KindIndex:
		if v, ok := r.Rest(key.Ix); ok {
			return [][]byte{v}
		}
		return nil
	default:
		return nil
	}
}
