package annot

import (
	"bytes"
	"strconv"
)

// Path names may embed the coordinate range the path was extracted
// from, in the form "name#seq_id:start-end". The helpers below decode
// that suffix; all of them are total and return ok=false on malformed
// input rather than an error.

// PathNameChrRange decodes the full embedded range: the target
// sequence name and the start and end coordinates.
func PathNameChrRange(name []byte) (seqID []byte, start, end int, ok bool) {
	hash := bytes.IndexByte(name, '#')
	if hash < 0 || hash == len(name)-1 {
		return nil, 0, 0, false
	}
	rest := name[hash+1:]

	colon := bytes.IndexByte(rest, ':')
	if colon < 0 {
		return nil, 0, 0, false
	}
	seqID = rest[:colon]
	if len(seqID) == 0 {
		return nil, 0, 0, false
	}

	start, end, ok = parseRange(rest[colon+1:])
	if !ok {
		return nil, 0, 0, false
	}
	return seqID, start, end, true
}

// PathNameRange decodes just the start and end coordinates after the
// first ':'.
func PathNameRange(name []byte) (start, end int, ok bool) {
	colon := bytes.IndexByte(name, ':')
	if colon < 0 {
		return 0, 0, false
	}
	return parseRange(name[colon+1:])
}

// PathNameOffset returns the embedded range's start coordinate.
func PathNameOffset(name []byte) (int, bool) {
	start, _, ok := PathNameRange(name)
	if !ok {
		return 0, false
	}
	return start, true
}

func parseRange(field []byte) (start, end int, ok bool) {
	dash := bytes.IndexByte(field, '-')
	if dash < 0 {
		return 0, 0, false
	}
	start, err := strconv.Atoi(string(field[:dash]))
	if err != nil || start < 0 {
		return 0, 0, false
	}
	end, err = strconv.Atoi(string(field[dash+1:]))
	if err != nil || end < 0 {
		return 0, 0, false
	}
	return start, end, true
}
