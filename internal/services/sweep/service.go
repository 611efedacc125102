package sweep

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"shelve/internal/config"
	"shelve/internal/domain"
)

// Service finds and deletes files matching the configured temp patterns.
type Service struct {
	cfg config.Config
	ws  domain.Workspace
	out io.Writer
	log *zap.Logger
}

// New returns a sweep service over the given workspace.
func New(cfg config.Config, ws domain.Workspace, out io.Writer, log *zap.Logger) *Service {
	return &Service{cfg: cfg, ws: ws, out: out, log: log}
}

// Sweep walks the tree once per pattern and deletes every match when execute
// is true. The returned count includes every match seen, with a matched
// directory counting as one regardless of its contents.
func (s *Service) Sweep(execute bool) (int, error) {
	removed := 0
	for _, pattern := range s.cfg.TempPatterns {
		matches, err := s.ws.WalkMatches(pattern)
		if err != nil {
			return removed, err
		}
		for _, m := range matches {
			if execute {
				if err := s.ws.RemovePath(m); err != nil {
					return removed, err
				}
				fmt.Fprintf(s.out, "  removed %s\n", m)
			} else {
				fmt.Fprintf(s.out, "  would remove %s\n", m)
			}
			s.log.Debug("swept artifact",
				zap.String("pattern", pattern),
				zap.String("path", m),
				zap.Bool("executed", execute))
			removed++
		}
	}
	return removed, nil
}

// Compile-time assertion that Service implements domain.Sweeper.
var _ domain.Sweeper = (*Service)(nil)
