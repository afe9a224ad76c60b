package git

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// IndexTree writes the staged index out as tree objects and returns the root
// tree hash. Blobs were already written to the object database when the paths
// were staged; only the trees are created here.
func (e *Engine) IndexTree() (plumbing.Hash, error) {
	idx, err := e.repo.Storer.Index()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("%w: %v", ErrReadIndex, err)
	}

	root := newTreeNode()
	staged := 0
	for _, entry := range idx.Entries {
		if !e.matchesFilters(entry.Name) {
			continue
		}
		root.insert(entry.Name, entry.Hash, entry.Mode)
		staged++
	}
	if staged == 0 {
		return plumbing.ZeroHash, fmt.Errorf("%w: no staged paths to snapshot", ErrReadIndex)
	}

	return root.write(e.repo.Storer)
}

func (e *Engine) matchesFilters(path string) bool {
	if len(e.filters.Include) > 0 {
		matched := false
		for _, pattern := range e.filters.Include {
			if ok, _ := doublestar.Match(pattern, path); ok {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	for _, pattern := range e.filters.Exclude {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return false
		}
	}
	return true
}

// treeNode accumulates index entries into the nested structure git trees
// require, one node per directory.
type treeNode struct {
	files map[string]object.TreeEntry
	dirs  map[string]*treeNode
}

func newTreeNode() *treeNode {
	return &treeNode{
		files: map[string]object.TreeEntry{},
		dirs:  map[string]*treeNode{},
	}
}

func (n *treeNode) insert(path string, hash plumbing.Hash, mode filemode.FileMode) {
	dir, rest, nested := strings.Cut(path, "/")
	if !nested {
		n.files[path] = object.TreeEntry{Name: path, Mode: mode, Hash: hash}
		return
	}
	child, ok := n.dirs[dir]
	if !ok {
		child = newTreeNode()
		n.dirs[dir] = child
	}
	child.insert(rest, hash, mode)
}

// write encodes the node's subtree depth first and returns its hash.
func (n *treeNode) write(st storer.EncodedObjectStorer) (plumbing.Hash, error) {
	entries := make([]object.TreeEntry, 0, len(n.files)+len(n.dirs))
	for _, entry := range n.files {
		entries = append(entries, entry)
	}
	for name, child := range n.dirs {
		hash, err := child.write(st)
		if err != nil {
			return plumbing.ZeroHash, err
		}
		entries = append(entries, object.TreeEntry{Name: name, Mode: filemode.Dir, Hash: hash})
	}
	sortTreeEntries(entries)

	obj := st.NewEncodedObject()
	if err := (&object.Tree{Entries: entries}).Encode(obj); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("%w: %v", ErrWriteTree, err)
	}
	hash, err := st.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("%w: %v", ErrWriteTree, err)
	}
	return hash, nil
}

// Git orders tree entries by name, comparing directories as if their name had
// a trailing slash.
func sortTreeEntries(entries []object.TreeEntry) {
	key := func(e object.TreeEntry) string {
		if e.Mode == filemode.Dir {
			return e.Name + "/"
		}
		return e.Name
	}
	sort.Slice(entries, func(i, j int) bool {
		return key(entries[i]) < key(entries[j])
	})
}
