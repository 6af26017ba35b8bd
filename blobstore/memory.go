package blobstore

import (
	"bytes"
	"context"
	"io"
	"sync"
)

// MemoryStore keeps blobs in memory. Useful for tests and for
// annotation data produced programmatically.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Put stores a blob, replacing any previous content under the name.
func (s *MemoryStore) Put(name string, data []byte) {
	d := make([]byte, len(data))
	copy(d, data)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[name] = d
}

// Open implements Store.
func (s *MemoryStore) Open(_ context.Context, name string) (io.ReadCloser, error) {
	s.mu.RLock()
	data, ok := s.blobs[name]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}
