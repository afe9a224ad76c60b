package git

import (
	"context"
	"encoding/binary"

	"github.com/go-git/go-git/v5/plumbing"
)

// MemoryStore is a CommitStore that records requests instead of writing to a
// repository. It backs the preview command and serves as a test double.
type MemoryStore struct {
	Requests []CommitRequest
	Hashes   []plumbing.Hash
	Head     plumbing.Hash

	// FailAt makes the write with that index fail once Err is set.
	FailAt   int
	Err      error
	ResetErr error
}

// NewMemoryStore creates a MemoryStore that never fails.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// WriteCommit records the request and fabricates a deterministic hash from
// the request's position in the sequence.
func (m *MemoryStore) WriteCommit(_ context.Context, req CommitRequest) (plumbing.Hash, error) {
	if m.Err != nil && len(m.Requests) == m.FailAt {
		return plumbing.ZeroHash, m.Err
	}

	var hash plumbing.Hash
	binary.BigEndian.PutUint64(hash[:8], uint64(len(m.Requests)+1))

	m.Requests = append(m.Requests, req)
	m.Hashes = append(m.Hashes, hash)
	return hash, nil
}

// ResetHeadMixed records the final head.
func (m *MemoryStore) ResetHeadMixed(_ context.Context, commit plumbing.Hash) error {
	if m.ResetErr != nil {
		return m.ResetErr
	}
	m.Head = commit
	return nil
}
