package git

import (
	"context"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Engine is the repository collaborator: it owns a go-git handle and performs
// the object-database writes the scheduler asks for.
type Engine struct {
	repo    *gogit.Repository
	filters FilterOptions
}

// FilterOptions restricts which staged paths end up in the generated tree.
// Patterns use doublestar glob syntax, matched against slash-separated paths.
type FilterOptions struct {
	Include []string
	Exclude []string
}

// Open opens an existing repository at path.
func Open(path string, filters FilterOptions) (*Engine, error) {
	repo, err := gogit.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenRepository, path, err)
	}
	return &Engine{repo: repo, filters: filters}, nil
}

// AuthorIdentity resolves the committer identity from the merged git
// configuration (local, global, system). Both name and email must be set.
func (e *Engine) AuthorIdentity() (Identity, error) {
	cfg, err := e.repo.ConfigScoped(gitconfig.SystemScope)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrAuthorIdentity, err)
	}
	id := Identity{Name: cfg.User.Name, Email: cfg.User.Email}
	if id.Name == "" || id.Email == "" {
		return Identity{}, fmt.Errorf("%w: user.name and user.email must be configured", ErrAuthorIdentity)
	}
	return id, nil
}

// WriteCommit encodes a commit object straight into the object database and
// returns its hash. Refs and the working tree are untouched.
func (e *Engine) WriteCommit(_ context.Context, req CommitRequest) (plumbing.Hash, error) {
	sig := object.Signature{Name: req.Author.Name, Email: req.Author.Email, When: req.When}
	commit := &object.Commit{
		Author:    sig,
		Committer: sig,
		Message:   req.Message,
		TreeHash:  req.Tree,
	}
	if req.HasParent() {
		commit.ParentHashes = []plumbing.Hash{req.Parent}
	}

	obj := e.repo.Storer.NewEncodedObject()
	if err := commit.Encode(obj); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("%w: %v", ErrWriteCommit, err)
	}
	hash, err := e.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("%w: %v", ErrWriteCommit, err)
	}
	return hash, nil
}

// ResetHeadMixed moves the current branch and index to commit, leaving the
// working tree alone.
func (e *Engine) ResetHeadMixed(_ context.Context, commit plumbing.Hash) error {
	head, err := e.repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrResetHead, err)
	}

	// An unborn branch has no ref for Reset to move yet; create it pointing
	// at the commit first.
	if head.Type() == plumbing.SymbolicReference {
		if _, err := e.repo.Reference(head.Target(), false); err != nil {
			ref := plumbing.NewHashReference(head.Target(), commit)
			if err := e.repo.Storer.SetReference(ref); err != nil {
				return fmt.Errorf("%w: %v", ErrResetHead, err)
			}
		}
	}

	wt, err := e.repo.Worktree()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrResetHead, err)
	}
	if err := wt.Reset(&gogit.ResetOptions{Commit: commit, Mode: gogit.MixedReset}); err != nil {
		return fmt.Errorf("%w: %v", ErrResetHead, err)
	}
	return nil
}
