package domain

// Category identifies one of the three archivable file domains.
type Category string

const (
	// CategoryModules covers *.py files inside the modules directory.
	CategoryModules Category = "modules"
	// CategoryTests covers test_*.py files in the project root.
	CategoryTests Category = "tests"
	// CategoryDocs covers *.md files in the project root.
	CategoryDocs Category = "docs"
)

// RunResult records what a single cleanup invocation archived and removed.
// It is assembled once per run and never persisted beyond the printed summary
// and the optional archive index.
type RunResult struct {
	ArchivedModules []string
	ArchivedTests   []string
	ArchivedDocs    []string
	TempRemoved     int
	DryRun          bool
}

// TotalArchived returns the number of files archived across all categories.
func (r RunResult) TotalArchived() int {
	return len(r.ArchivedModules) + len(r.ArchivedTests) + len(r.ArchivedDocs)
}
