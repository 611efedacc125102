package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"shelve/internal/domain"
)

// Workspace performs filesystem operations relative to a project root.
type Workspace struct {
	root string
	mu   sync.Mutex
}

// NewWorkspace opens a workspace rooted at dir.
func NewWorkspace(dir string) *Workspace { return &Workspace{root: dir} }

// Root returns the project root the workspace was opened on.
func (w *Workspace) Root() string { return w.root }

func (w *Workspace) abs(rel string) string { return filepath.Join(w.root, rel) }

// ListDir returns the base names of regular files in dir matching pattern,
// in lexical order. A missing dir yields no matches.
func (w *Workspace) ListDir(dir, pattern string) ([]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	entries, err := os.ReadDir(w.abs(dir))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ok, err := filepath.Match(pattern, e.Name())
		if err != nil {
			return nil, err
		}
		if ok {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Move renames src to dst. An existing dst is overwritten, matching the
// underlying rename semantics.
func (w *Workspace) Move(src, dst string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return os.Rename(w.abs(src), w.abs(dst))
}

// RemovePath deletes a file or a directory tree. Removing a path that is
// already gone is a no-op.
func (w *Workspace) RemovePath(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return os.RemoveAll(w.abs(path))
}

// EnsureDir creates path and any missing parents.
func (w *Workspace) EnsureDir(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return os.MkdirAll(w.abs(path), 0o755)
}

// Exists reports whether something is present at path.
func (w *Workspace) Exists(path string) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	_, err := os.Stat(w.abs(path))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// WalkMatches walks the tree under the root and returns the relative paths
// matching pattern, a doublestar glob. A matched directory is reported once
// and not descended into. Paths deleted mid-walk by an earlier pattern are
// skipped rather than treated as errors.
func (w *Workspace) WalkMatches(pattern string) ([]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var matches []string
	err := filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		rel, relErr := filepath.Rel(w.root, path)
		if relErr != nil {
			return relErr
		}
		if rel == "." {
			return nil
		}
		ok, matchErr := doublestar.Match(pattern, filepath.ToSlash(rel))
		if matchErr != nil {
			return matchErr
		}
		if !ok {
			return nil
		}
		matches = append(matches, rel)
		if d.IsDir() {
			return fs.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// Compile-time assertion that Workspace implements domain.Workspace.
var _ domain.Workspace = (*Workspace)(nil)
