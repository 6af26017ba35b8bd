package pathindex

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"sort"

	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/gfaview/graph"
)

// Snapshot format: an 8-byte magic, a CRC32 (IEEE) of the uncompressed
// payload, the payload length, then the payload in an lz4 frame. The
// payload is little-endian: path count, then per path the path ID,
// base length, step count and the (handle, offset) pairs; then the
// per-node occurrence lists.
//
// The snapshot only caches the derived index so a viewer can skip the
// build on reopen. It is not a graph interchange format.

var snapshotMagic = [8]byte{'G', 'F', 'V', 'P', 'P', 'I', '0', '1'}

// ErrSnapshotCorrupt is returned when a snapshot fails magic or
// checksum validation.
var ErrSnapshotCorrupt = errors.New("pathindex: snapshot corrupt")

// Save writes the index as a checksummed, lz4-compressed snapshot.
func (ix *Index) Save(w io.Writer) error {
	payload := ix.encodePayload()
	sum := crc32.ChecksumIEEE(payload)

	bw := bufio.NewWriter(w)
	if _, err := bw.Write(snapshotMagic[:]); err != nil {
		return err
	}
	var hdr [12]byte
	binary.LittleEndian.PutUint32(hdr[0:], sum)
	binary.LittleEndian.PutUint64(hdr[4:], uint64(len(payload)))
	if _, err := bw.Write(hdr[:]); err != nil {
		return err
	}

	zw := lz4.NewWriter(bw)
	if _, err := zw.Write(payload); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}
	return bw.Flush()
}

// Load reads a snapshot written by Save.
func Load(r io.Reader) (*Index, error) {
	br := bufio.NewReader(r)

	var magic [8]byte
	if _, err := io.ReadFull(br, magic[:]); err != nil {
		return nil, err
	}
	if magic != snapshotMagic {
		return nil, fmt.Errorf("%w: bad magic", ErrSnapshotCorrupt)
	}

	var hdr [12]byte
	if _, err := io.ReadFull(br, hdr[:]); err != nil {
		return nil, err
	}
	sum := binary.LittleEndian.Uint32(hdr[0:])
	size := binary.LittleEndian.Uint64(hdr[4:])

	payload := make([]byte, size)
	if _, err := io.ReadFull(lz4.NewReader(br), payload); err != nil {
		return nil, err
	}
	if crc32.ChecksumIEEE(payload) != sum {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrSnapshotCorrupt)
	}

	return decodePayload(payload)
}

func (ix *Index) encodePayload() []byte {
	var buf bytes.Buffer
	writeUvarint := func(v uint64) {
		var tmp [binary.MaxVarintLen64]byte
		n := binary.PutUvarint(tmp[:], v)
		buf.Write(tmp[:n])
	}

	pids := make([]graph.PathID, 0, len(ix.paths))
	for pid := range ix.paths {
		pids = append(pids, pid)
	}
	sort.Slice(pids, func(i, j int) bool { return pids[i] < pids[j] })

	writeUvarint(uint64(len(pids)))
	for _, pid := range pids {
		po := ix.paths[pid]
		writeUvarint(uint64(pid))
		writeUvarint(uint64(po.baseLen))
		writeUvarint(uint64(len(po.handles)))
		for i, h := range po.handles {
			writeUvarint(uint64(h))
			writeUvarint(uint64(po.offsets[i]))
		}
	}

	ids := make([]graph.NodeID, 0, len(ix.handlePos))
	for id := range ix.handlePos {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	writeUvarint(uint64(len(ids)))
	for _, id := range ids {
		pos := ix.handlePos[id]
		writeUvarint(uint64(id))
		writeUvarint(uint64(len(pos)))
		for _, p := range pos {
			writeUvarint(uint64(p.Path))
			writeUvarint(uint64(p.Step))
			writeUvarint(uint64(p.Base))
		}
	}

	return buf.Bytes()
}

func decodePayload(payload []byte) (*Index, error) {
	rd := bytes.NewReader(payload)
	readUvarint := func() (uint64, error) {
		return binary.ReadUvarint(rd)
	}

	ix := &Index{
		paths:     make(map[graph.PathID]*pathOffsets),
		handlePos: make(map[graph.NodeID][]Position),
	}

	pathCount, err := readUvarint()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnapshotCorrupt, err)
	}
	for range pathCount {
		pid, err := readUvarint()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSnapshotCorrupt, err)
		}
		baseLen, err := readUvarint()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSnapshotCorrupt, err)
		}
		stepCount, err := readUvarint()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSnapshotCorrupt, err)
		}
		po := &pathOffsets{
			handles: make([]graph.Handle, stepCount),
			offsets: make([]int, stepCount),
			baseLen: int(baseLen),
		}
		for i := range stepCount {
			h, err := readUvarint()
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrSnapshotCorrupt, err)
			}
			off, err := readUvarint()
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrSnapshotCorrupt, err)
			}
			po.handles[i] = graph.Handle(h)
			po.offsets[i] = int(off)
		}
		ix.paths[graph.PathID(pid)] = po
	}

	nodeCount, err := readUvarint()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSnapshotCorrupt, err)
	}
	for range nodeCount {
		id, err := readUvarint()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSnapshotCorrupt, err)
		}
		posCount, err := readUvarint()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSnapshotCorrupt, err)
		}
		pos := make([]Position, posCount)
		for i := range posCount {
			p, err := readUvarint()
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrSnapshotCorrupt, err)
			}
			s, err := readUvarint()
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrSnapshotCorrupt, err)
			}
			b, err := readUvarint()
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrSnapshotCorrupt, err)
			}
			pos[i] = Position{
				Path: graph.PathID(p),
				Step: graph.StepPtr(s),
				Base: int(b),
			}
		}
		ix.handlePos[graph.NodeID(id)] = pos
	}

	return ix, nil
}
