package bed

import "github.com/hupe1980/gfaview/annot"

// Filter is the per-column BED filter. A record passes when the quick
// filter matches and every per-column predicate matches; the zero
// Filter passes every record.
type Filter struct {
	Chr   annot.FilterString
	Start annot.FilterNum[int]
	End   annot.FilterNum[int]
	Score annot.FilterNum[float64]

	// Rest holds predicates over trailing columns, keyed by absolute
	// column index. A predicate on an index the record lacks fails the
	// record.
	Rest map[int]annot.FilterString

	Quick annot.QuickFilter[Column]
}

// NewFilter returns a pass-through filter.
func NewFilter() *Filter {
	return &Filter{
		Rest:  make(map[int]annot.FilterString),
		Quick: annot.NewQuickFilter[Column](),
	}
}

// SetRest installs a predicate on the trailing column at absolute
// index ix.
func (f *Filter) SetRest(ix int, fs annot.FilterString) {
	if f.Rest == nil {
		f.Rest = make(map[int]annot.FilterString)
	}
	f.Rest[ix] = fs
}

// Match applies the filter to a record.
func (f *Filter) Match(rec *Record) bool {
	if !f.Quick.Match(rec) {
		return false
	}
	if !f.Chr.Match(rec.SeqID()) {
		return false
	}
	if !f.Start.Match(rec.Start()) {
		return false
	}
	if !f.End.Match(rec.End()) {
		return false
	}
	if f.Score.Op != annot.FilterNumNone {
		score, ok := rec.Score()
		if !ok || !f.Score.Match(score) {
			return false
		}
	}
	for ix, fs := range f.Rest {
		if fs.Op == annot.FilterStringNone {
			continue
		}
		val, ok := rec.Rest(ix)
		if !ok || !fs.Match(val) {
			return false
		}
	}
	return true
}

// Apply returns the records that pass the filter, in file order.
func (f *Filter) Apply(recs *Records) []*Record {
	var out []*Record
	for _, rec := range recs.Records() {
		if f.Match(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// RangeFilter returns a filter matching records contained in the
// closed interval [start, end].
func RangeFilter(start, end int) *Filter {
	if start > 0 {
		start--
	}
	f := NewFilter()
	f.Start.Op, f.Start.Arg1 = annot.FilterNumGT, start
	f.End.Op, f.End.Arg1 = annot.FilterNumLT, end+1
	return f
}

// ChrRangeFilter returns a filter matching records contained in
// [start, end] on the named target sequence.
func ChrRangeFilter(chr string, start, end int) *Filter {
	f := RangeFilter(start, end)
	f.Chr = annot.FilterString{Op: annot.FilterStringContainedIn, Arg: chr}
	return f
}
