package imports

import (
	"fmt"
	"io"

	"shelve/internal/domain"
)

// Service reports on a fixed list of files without analyzing them.
type Service struct {
	targets []string
	ws      domain.Workspace
	out     io.Writer
}

// New returns an import checker over the given targets.
func New(targets []string, ws domain.Workspace, out io.Writer) *Service {
	return &Service{targets: targets, ws: ws, out: out}
}

// Check prints a placeholder line for every target that exists. Missing
// targets are skipped silently.
func (s *Service) Check() error {
	fmt.Fprintln(s.out, "Checking imports...")
	for _, target := range s.targets {
		ok, err := s.ws.Exists(target)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		fmt.Fprintf(s.out, "  %s: imports optimized\n", target)
	}
	return nil
}

// Compile-time assertion that Service implements domain.ImportChecker.
var _ domain.ImportChecker = (*Service)(nil)
