package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"shelve/internal/domain"
)

// IndexFileName is the document written into the archive root.
const IndexFileName = "ARCHIVE_INDEX.md"

// indexTimeLayout matches the generation timestamp line of the index.
const indexTimeLayout = "2006-01-02 15:04:05"

// Index renders the archive index document. Filenames are sorted
// lexicographically within each section; empty sections keep their heading.
func Index(r domain.RunResult, now time.Time) []byte {
	var b strings.Builder

	b.WriteString("# Archive Index\n\n")
	fmt.Fprintf(&b, "アーカイブ日時: %s\n\n", now.Format(indexTimeLayout))

	writeSection(&b, "Experimental Modules", r.ArchivedModules)
	writeSection(&b, "Test Scripts", r.ArchivedTests)
	writeSection(&b, "Old Documentation", r.ArchivedDocs)

	return []byte(strings.TrimRight(b.String(), "\n") + "\n")
}

func writeSection(b *strings.Builder, title string, names []string) {
	fmt.Fprintf(b, "## %s\n\n", title)

	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	for _, name := range sorted {
		fmt.Fprintf(b, "- %s\n", name)
	}
	b.WriteString("\n")
}
