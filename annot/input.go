package annot

import (
	"bufio"
	"context"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/hupe1980/gfaview/blobstore"
)

// DecompressReader sniffs the stream's magic bytes and transparently
// unwraps gzip and zstd input. Plain input passes through unchanged.
func DecompressReader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	magic, err := br.Peek(4)
	if err != nil {
		// Too short to carry a compression header; hand the bytes
		// through untouched.
		return br, nil
	}

	switch {
	case magic[0] == 0x1f && magic[1] == 0x8b:
		return gzip.NewReader(br)
	case magic[0] == 0x28 && magic[1] == 0xb5 && magic[2] == 0x2f && magic[3] == 0xfd:
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	default:
		return br, nil
	}
}

// OpenInput opens an annotation file from a blob store and unwraps any
// compression. The caller owns the returned closer.
func OpenInput(ctx context.Context, store blobstore.Store, name string) (io.Reader, io.Closer, error) {
	rc, err := store.Open(ctx, name)
	if err != nil {
		return nil, nil, err
	}
	r, err := DecompressReader(rc)
	if err != nil {
		rc.Close()
		return nil, nil, err
	}
	return r, rc, nil
}
