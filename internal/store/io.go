package store

import (
	"os"
	"path/filepath"
)

// WriteFileAtomic writes data via a temp file, then atomically replaces the
// target.
func (w *Workspace) WriteFileAtomic(path string, data []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return writeFile(w.abs(path), data, 0o644)
}

// writeFile writes bytes via a temp file in the target directory, then
// renames it over the target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
