package gff

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hupe1980/gfaview/annot"
	"github.com/hupe1980/gfaview/blobstore"
)

// ParseError reports a structurally invalid feature line. GFF3 parsing
// is strict: one malformed non-comment line aborts the whole parse.
type ParseError struct {
	Name   string
	Line   int
	Reason string
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("gff: %s:%d: %s", e.Name, e.Line, e.Reason)
}

// Records is a parsed GFF3 file.
type Records struct {
	fileName string
	records  []*Record

	// attrKeys is the union of attribute keys across all records, in
	// first-seen order, kept for column discovery in the UI.
	attrKeys    []string
	attrKeySeen map[string]struct{}
}

// ParseFile parses a GFF3 file from the local filesystem, transparently
// unwrapping gzip or zstd compression.
func ParseFile(path string) (*Records, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := annot.DecompressReader(f)
	if err != nil {
		return nil, err
	}
	return ParseReader(filepath.Base(path), r)
}

// ParseStore parses a GFF3 file from a blob store.
func ParseStore(ctx context.Context, store blobstore.Store, name string) (*Records, error) {
	r, closer, err := annot.OpenInput(ctx, store, name)
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	return ParseReader(name, r)
}

// ParseReader parses GFF3 from a stream in a single pass with a
// bounded per-line buffer. Lines starting with '#' and blank lines are
// skipped; a trailing line without a newline is discarded.
func ParseReader(name string, r io.Reader) (*Records, error) {
	recs := &Records{
		fileName:    name,
		attrKeySeen: make(map[string]struct{}),
	}

	br := bufio.NewReader(r)
	lineNum := 0
	for {
		line, err := br.ReadBytes('\n')
		if err == io.EOF {
			// Trailing partial lines are discarded.
			break
		}
		if err != nil {
			return nil, err
		}
		lineNum++

		line = bytes.TrimRight(line, "\r\n")
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		rec, reason := parseRow(line)
		if rec == nil {
			return nil, &ParseError{Name: name, Line: lineNum, Reason: reason}
		}
		recs.records = append(recs.records, rec)
		for _, key := range rec.attrKeys {
			if _, seen := recs.attrKeySeen[key]; !seen {
				recs.attrKeySeen[key] = struct{}{}
				recs.attrKeys = append(recs.attrKeys, key)
			}
		}
	}

	return recs, nil
}

// parseRow parses the nine whitespace-separated fields of one feature
// line. It returns a nil record and a reason on malformed input.
func parseRow(line []byte) (*Record, string) {
	fields := bytes.Fields(line)
	if len(fields) < 9 {
		return nil, fmt.Sprintf("expected 9 fields, got %d", len(fields))
	}

	rec := &Record{
		seqID:  clone(fields[0]),
		source: clone(fields[1]),
		typ:    clone(fields[2]),
		frame:  clone(fields[7]),
		attrs:  make(map[string][][]byte),
	}

	start, err := strconv.Atoi(string(fields[3]))
	if err != nil {
		return nil, "invalid start: " + string(fields[3])
	}
	end, err := strconv.Atoi(string(fields[4]))
	if err != nil {
		return nil, "invalid end: " + string(fields[4])
	}
	if start > end {
		return nil, fmt.Sprintf("start %d after end %d", start, end)
	}
	rec.start, rec.end = start, end

	if !bytes.Equal(fields[5], []byte(".")) {
		score, err := strconv.ParseFloat(string(fields[5]), 64)
		if err != nil {
			return nil, "invalid score: " + string(fields[5])
		}
		rec.score, rec.hasScore = score, true
	}

	strand, ok := annot.ParseStrand(fields[6])
	if !ok {
		return nil, "invalid strand: " + string(fields[6])
	}
	rec.strand = strand

	// Ninth field: ';'-joined key=value attributes; duplicate keys
	// append to an ordered value list.
	for _, attr := range bytes.Split(fields[8], []byte(";")) {
		if len(attr) == 0 {
			continue
		}
		eq := bytes.IndexByte(attr, '=')
		if eq < 0 {
			return nil, "attribute without '=': " + string(attr)
		}
		key := string(attr[:eq])
		val := clone(attr[eq+1:])
		if _, seen := rec.attrs[key]; !seen {
			rec.attrKeys = append(rec.attrKeys, key)
		}
		rec.attrs[key] = append(rec.attrs[key], val)
	}

	return rec, ""
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// FileName implements annot.Collection.
func (rs *Records) FileName() string { return rs.fileName }

// Len implements annot.Collection.
func (rs *Records) Len() int { return len(rs.records) }

// Records implements annot.Collection.
func (rs *Records) Records() []*Record { return rs.records }

// AttributeKeys returns the union of all attribute keys in the file,
// in first-seen order.
func (rs *Records) AttributeKeys() []string { return rs.attrKeys }

// AllColumns implements annot.Collection.
func (rs *Records) AllColumns() []Column {
	cols := []Column{
		ColSeqID, ColSource, ColType, ColStart, ColEnd,
		ColScore, ColStrand, ColFrame,
	}
	for _, key := range rs.attrKeys {
		cols = append(cols, Attr(key))
	}
	return cols
}

// MandatoryColumns implements annot.Collection.
func (rs *Records) MandatoryColumns() []Column {
	return []Column{ColSeqID, ColStart, ColEnd}
}

// OptionalColumns implements annot.Collection.
func (rs *Records) OptionalColumns() []Column {
	cols := []Column{ColSource, ColType, ColScore, ColStrand, ColFrame}
	for _, key := range rs.attrKeys {
		cols = append(cols, Attr(key))
	}
	return cols
}
