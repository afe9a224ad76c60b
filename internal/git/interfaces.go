package git

import (
	"context"

	"github.com/go-git/go-git/v5/plumbing"
)

// CommitStore is the narrow surface the scheduler drives. Calls are blocking
// and must be issued strictly in sequence: each commit's parent is the hash
// the previous call returned.
type CommitStore interface {
	// WriteCommit materializes one commit and returns its hash.
	WriteCommit(ctx context.Context, req CommitRequest) (plumbing.Hash, error)

	// ResetHeadMixed points the current branch (and index) at commit,
	// leaving the working tree alone.
	ResetHeadMixed(ctx context.Context, commit plumbing.Hash) error
}

// Compile-time interface conformance checks.
var (
	_ CommitStore = (*Engine)(nil)
	_ CommitStore = (*MemoryStore)(nil)
)
