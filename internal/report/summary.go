package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"shelve/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	noteStyle  = lipgloss.NewStyle().Faint(true)
)

// Summary renders the end-of-run report. The storage reduction line is
// illustrative text, not a measured size.
func Summary(r domain.RunResult) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Cleanup summary"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Archived modules:       %d\n", len(r.ArchivedModules))
	fmt.Fprintf(&b, "  Archived test scripts:  %d\n", len(r.ArchivedTests))
	fmt.Fprintf(&b, "  Archived docs:          %d\n", len(r.ArchivedDocs))
	fmt.Fprintf(&b, "  Total archived:         %d\n", r.TotalArchived())
	fmt.Fprintf(&b, "  Temp artifacts removed: %d\n", r.TempRemoved)
	b.WriteString("  Estimated storage reduction: roughly 40% of stale project files (illustrative)\n")
	if r.DryRun {
		b.WriteString(noteStyle.Render("  Dry run: nothing was changed. Re-run with --execute to apply."))
		b.WriteString("\n")
	}
	return b.String()
}
