package bed

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hupe1980/gfaview/annot"
	"github.com/hupe1980/gfaview/blobstore"
)

// Records is a parsed BED file.
type Records struct {
	fileName string
	records  []*Record

	// headers carries the names the optional '#' header line gives to
	// trailing columns, by absolute column index.
	headers []Header
	maxRest int
}

// ParseFile parses a BED file from the local filesystem, transparently
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

// ParseStore parses a BED file from a blob store.
func ParseStore(ctx context.Context, store blobstore.Store, name string) (*Records, error) {
	r, closer, err := annot.OpenInput(ctx, store, name)
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	return ParseReader(name, r)
}

// ParseReader parses BED from a stream. BED parsing is lenient: rows
// with fewer than three fields or unparsable coordinates are dropped
// silently and the parse continues. A '#' line before the first record
// is read as a header naming the trailing columns; later '#' lines are
// skipped as comments.
func ParseReader(name string, r io.Reader) (*Records, error) {
	recs := &Records{fileName: name}

	br := bufio.NewReader(r)
	sawRow := false
	for {
		line, err := br.ReadBytes('\n')
		if err == io.EOF {
			if len(bytes.TrimSpace(line)) > 0 {
				recs.parseRow(line)
			}
			break
		}
		if err != nil {
			return nil, err
		}

		line = bytes.TrimRight(line, "\r\n")
		if len(line) == 0 {
			continue
		}
		if line[0] == '#' {
			if !sawRow && recs.headers == nil {
				recs.parseHeader(line[1:])
			}
			continue
		}
		sawRow = true
		recs.parseRow(line)
	}

	return recs, nil
}

func (rs *Records) parseHeader(line []byte) {
	fields := bytes.Fields(line)
	for i, f := range fields {
		if i < 3 {
			continue
		}
		rs.headers = append(rs.headers, Header{Ix: i, Name: string(f)})
	}
}

// parseRow appends one record, or drops the row when it is malformed.
func (rs *Records) parseRow(line []byte) {
	fields := bytes.Fields(line)
	if len(fields) < 3 {
		return
	}

	start, err := strconv.Atoi(string(fields[1]))
	if err != nil {
		return
	}
	end, err := strconv.Atoi(string(fields[2]))
	if err != nil {
		return
	}
	if start > end {
		return
	}

	rec := &Record{
		chr:   clone(fields[0]),
		start: start,
		end:   end,
	}
	for _, f := range fields[3:] {
		rec.rest = append(rec.rest, clone(f))
	}
	if len(rec.rest) > rs.maxRest {
		rs.maxRest = len(rec.rest)
	}
	rs.records = append(rs.records, rec)
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

// Headers returns the names the header line gave to trailing columns.
func (rs *Records) Headers() []Header { return rs.headers }

// HeaderToColumn resolves a header name to its column key.
func (rs *Records) HeaderToColumn(name string) (Column, bool) {
	for _, h := range rs.headers {
		if h.Name == name {
			return Index(h.Ix), true
		}
	}
	return Column{}, false
}

// ColumnName returns the display name for a column, preferring the
// header name when the header line provided one.
func (rs *Records) ColumnName(c Column) string {
	if c.Kind == KindIndex {
		for _, h := range rs.headers {
			if h.Ix == c.Ix {
				return h.Name
			}
		}
	}
	return c.String()
}

// AllColumns implements annot.Collection. The open arm covers the
// widest row in the file.
func (rs *Records) AllColumns() []Column {
	cols := []Column{ColChr, ColStart, ColEnd}
	for i := range rs.maxRest {
		cols = append(cols, Index(i+3))
	}
	return cols
}

// MandatoryColumns implements annot.Collection.
func (rs *Records) MandatoryColumns() []Column {
	return []Column{ColChr, ColStart, ColEnd}
}

// OptionalColumns implements annot.Collection.
func (rs *Records) OptionalColumns() []Column {
	var cols []Column
	for i := range rs.maxRest {
		cols = append(cols, Index(i+3))
	}
	return cols
}
