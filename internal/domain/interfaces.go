package domain

// Workspace performs the filesystem operations behind archiving and sweeping.
// All paths are relative to the project root the workspace was opened on.
type Workspace interface {
	// ListDir returns the base names of regular files in dir matching the
	// non-recursive glob pattern. A missing dir yields no matches, not an
	// error.
	ListDir(dir, pattern string) ([]string, error)

	// Move renames src to dst, overwriting an existing dst.
	Move(src, dst string) error

	// RemovePath deletes a file, or a directory and everything under it.
	// A path that no longer exists is not an error.
	RemovePath(path string) error

	// EnsureDir creates a directory and any missing parents. Idempotent.
	EnsureDir(path string) error

	// WriteFileAtomic writes data via a temp file, then atomically replaces
	// the target.
	WriteFileAtomic(path string, data []byte) error

	// Exists reports whether a file or directory is present at path.
	Exists(path string) (bool, error)

	// WalkMatches walks the whole tree and returns the paths matching a
	// recursive (doublestar) pattern. A matched directory is returned once
	// and not descended into.
	WalkMatches(pattern string) ([]string, error)
}

// Archiver partitions one file category against its allow-list, relocating
// non-members into the archive when execute is true.
type Archiver interface {
	Archive(cat Category, execute bool) ([]string, error)
}

// Sweeper deletes temp/cache artifacts matching the configured patterns and
// returns how many matches it saw.
type Sweeper interface {
	Sweep(execute bool) (int, error)
}

// ImportChecker runs the placeholder import check over its fixed target list.
type ImportChecker interface {
	Check() error
}

// CleanupRunner drives one full cleanup pass and reports what it did.
type CleanupRunner interface {
	Run(execute bool) (RunResult, error)
}
