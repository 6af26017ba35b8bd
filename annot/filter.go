package annot

import "bytes"

// FilterStringOp enumerates the string predicate operators.
type FilterStringOp uint8

const (
	// FilterStringNone matches anything.
	FilterStringNone FilterStringOp = iota
	// FilterStringEqual matches exact byte equality.
	FilterStringEqual
	// FilterStringContains matches values containing the argument.
	FilterStringContains
	// FilterStringContainedIn matches values contained in the argument.
	FilterStringContainedIn
	// FilterStringNotContained matches values not contained in the
	// argument.
	FilterStringNotContained
)

// FilterString is a string predicate over byte-string column values.
// The zero value matches anything.
type FilterString struct {
	Op  FilterStringOp
	Arg string
}

// Match applies the predicate to a raw column value.
func (f FilterString) Match(value []byte) bool {
	arg := []byte(f.Arg)
	switch f.Op {
	case FilterStringEqual:
		return bytes.Equal(value, arg)
	case FilterStringContains:
		return bytes.Contains(value, arg)
	case FilterStringContainedIn:
		return bytes.Contains(arg, value)
	case FilterStringNotContained:
		return !bytes.Contains(arg, value)
	default:
		return true
	}
}

// MatchAny reports whether any of the values matches.
func (f FilterString) MatchAny(values [][]byte) bool {
	if f.Op == FilterStringNone {
		return true
	}
	for _, v := range values {
		if f.Match(v) {
			return true
		}
	}
	return false
}

// FilterNumOp enumerates the numeric predicate operators.
type FilterNumOp uint8

const (
	// FilterNumNone matches anything.
	FilterNumNone FilterNumOp = iota
	// FilterNumLT matches values below the argument.
	FilterNumLT
	// FilterNumLE matches values at or below the argument.
	FilterNumLE
	// FilterNumEQ matches the argument exactly.
	FilterNumEQ
	// FilterNumGE matches values at or above the argument.
	FilterNumGE
	// FilterNumGT matches values above the argument.
	FilterNumGT
	// FilterNumInRange matches the half-open range [Arg1, Arg2).
	FilterNumInRange
)

// Numeric covers the column value types the numeric filter can order.
type Numeric interface {
	~int | ~int64 | ~uint64 | ~float64
}

// FilterNum is a numeric predicate. The zero value matches anything.
type FilterNum[T Numeric] struct {
	Op   FilterNumOp
	Arg1 T
	Arg2 T
}

// Match applies the predicate to a value.
func (f FilterNum[T]) Match(v T) bool {
	switch f.Op {
	case FilterNumLT:
		return v < f.Arg1
	case FilterNumLE:
		return v <= f.Arg1
	case FilterNumEQ:
		return v == f.Arg1
	case FilterNumGE:
		return v >= f.Arg1
	case FilterNumGT:
		return v > f.Arg1
	case FilterNumInRange:
		return f.Arg1 <= v && v < f.Arg2
	default:
		return true
	}
}

// QuickFilter applies one string predicate across a chosen subset of a
// record's columns, OR-combined: the record matches when any enabled
// column has any matching value. With no operator set it matches every
// record.
type QuickFilter[K ColumnKey] struct {
	Filter  FilterString
	Columns map[K]bool
}

// NewQuickFilter returns a pass-through quick filter.
func NewQuickFilter[K ColumnKey]() QuickFilter[K] {
	return QuickFilter[K]{Columns: make(map[K]bool)}
}

// SetColumn enables or disables a column for the quick filter.
func (q *QuickFilter[K]) SetColumn(key K, enabled bool) {
	if q.Columns == nil {
		q.Columns = make(map[K]bool)
	}
	q.Columns[key] = enabled
}

// Match applies the quick filter to a record.
func (q QuickFilter[K]) Match(rec Record[K]) bool {
	if q.Filter.Op == FilterStringNone {
		return true
	}
	for key, enabled := range q.Columns {
		if !enabled {
			continue
		}
		for _, v := range rec.GetAll(key) {
			if q.Filter.Match(v) {
				return true
			}
		}
	}
	return false
}
