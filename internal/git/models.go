package git

import (
	"time"

	"github.com/go-git/go-git/v5/plumbing"
)

// Identity is a commit author: a name and an email address.
type Identity struct {
	Name  string
	Email string
}

func (i Identity) String() string {
	return i.Name + " <" + i.Email + ">"
}

// CommitRequest describes a single commit to materialize. Every request in a
// run shares the same tree, identity and message; only Parent and When vary.
type CommitRequest struct {
	Tree    plumbing.Hash
	Parent  plumbing.Hash // plumbing.ZeroHash for the root commit
	Author  Identity
	Message string
	When    time.Time
}

// HasParent reports whether the request chains onto an earlier commit.
func (r CommitRequest) HasParent() bool {
	return r.Parent != plumbing.ZeroHash
}
