package gff

import "github.com/hupe1980/gfaview/annot"

// Filter is the per-column GFF3 filter. A record passes when the quick
// filter matches and every per-column predicate matches; zero-valued
// predicates match anything, so the zero Filter passes every record.
type Filter struct {
	SeqID  annot.FilterString
	Source annot.FilterString
	Type   annot.FilterString
	Start  annot.FilterNum[int]
	End    annot.FilterNum[int]
	Score  annot.FilterNum[float64]
	Strand annot.FilterString
	Frame  annot.FilterString

	// Attributes holds per-key predicates over the ninth field. A
	// predicate on a key the record lacks fails the record.
	Attributes map[string]annot.FilterString

	Quick annot.QuickFilter[Column]
}

// NewFilter returns a pass-through filter.
func NewFilter() *Filter {
	return &Filter{
		Attributes: make(map[string]annot.FilterString),
		Quick:      annot.NewQuickFilter[Column](),
	}
}

// SetAttribute installs a predicate on one attribute key.
func (f *Filter) SetAttribute(key string, fs annot.FilterString) {
	if f.Attributes == nil {
		f.Attributes = make(map[string]annot.FilterString)
	}
	f.Attributes[key] = fs
}

// Match applies the filter to a record.
func (f *Filter) Match(rec *Record) bool {
	if !f.Quick.Match(rec) {
		return false
	}
	if !f.SeqID.Match(rec.SeqID()) {
		return false
	}
	if !f.Source.Match(rec.Source()) {
		return false
	}
	if !f.Type.Match(rec.Type()) {
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
	if !f.Strand.Match([]byte(rec.Strand().String())) {
		return false
	}
	if !f.Frame.Match(rec.Frame()) {
		return false
	}
	for key, fs := range f.Attributes {
		if fs.Op == annot.FilterStringNone {
			continue
		}
		if !fs.MatchAny(rec.Attributes(key)) {
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
// [start, end] on the named target sequence. The sequence predicate is
// "contained in" so that records whose seq_id is a prefix fragment of a
// full path name still match.
func ChrRangeFilter(seqID string, start, end int) *Filter {
	f := RangeFilter(start, end)
	f.SeqID = annot.FilterString{Op: annot.FilterStringContainedIn, Arg: seqID}
	return f
}
