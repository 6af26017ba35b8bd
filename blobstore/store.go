// Package blobstore abstracts where annotation files live: the local
// filesystem, memory, or an S3-compatible object store. The viewer
// only reads annotation input, so stores expose a single streaming
// open operation.
package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations return an error satisfying
// errors.Is(err, ErrNotFound); the default maps to os.ErrNotExist.
var ErrNotFound = os.ErrNotExist

// Store is a read-only blob source.
type Store interface {
	// Open opens a blob for streaming reads.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
