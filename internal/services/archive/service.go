package archive

import (
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"

	"shelve/internal/config"
	"shelve/internal/domain"
)

// Service moves non-allow-listed files into the archive tree.
type Service struct {
	cfg config.Config
	ws  domain.Workspace
	out io.Writer
	log *zap.Logger
}

// New returns an archive service over the given workspace. Progress lines go
// to out.
func New(cfg config.Config, ws domain.Workspace, out io.Writer, log *zap.Logger) *Service {
	return &Service{cfg: cfg, ws: ws, out: out, log: log}
}

// Archive lists the category's files, skips allow-list members, and moves the
// rest into the category's archive subdirectory when execute is true. It
// returns the archived filenames in listing order. Earlier moves stay applied
// if a later one fails.
func (s *Service) Archive(cat domain.Category, execute bool) ([]string, error) {
	srcDir, pattern, dstDir, keep := s.plan(cat)

	names, err := s.ws.ListDir(srcDir, pattern)
	if err != nil {
		return nil, err
	}

	keepSet := make(map[string]struct{}, len(keep))
	for _, k := range keep {
		keepSet[k] = struct{}{}
	}

	var archived []string
	for _, name := range names {
		if _, ok := keepSet[name]; ok {
			continue
		}
		src := filepath.Join(srcDir, name)
		dst := filepath.Join(dstDir, name)
		if execute {
			if err := s.ws.Move(src, dst); err != nil {
				return archived, err
			}
			fmt.Fprintf(s.out, "  moved %s -> %s\n", src, dst)
		} else {
			fmt.Fprintf(s.out, "  would move %s -> %s\n", src, dst)
		}
		s.log.Debug("archived file",
			zap.String("category", string(cat)),
			zap.String("file", name),
			zap.Bool("executed", execute))
		archived = append(archived, name)
	}
	return archived, nil
}

// plan resolves a category to its source dir, listing pattern, destination
// dir and allow-list.
func (s *Service) plan(cat domain.Category) (srcDir, pattern, dstDir string, keep []string) {
	switch cat {
	case domain.CategoryModules:
		return s.cfg.ModulesDir, "*.py",
			filepath.Join(s.cfg.Archive.Dir, s.cfg.Archive.ModulesDir), s.cfg.Keep.Modules
	case domain.CategoryTests:
		return "", "test_*.py",
			filepath.Join(s.cfg.Archive.Dir, s.cfg.Archive.TestsDir), s.cfg.Keep.Tests
	case domain.CategoryDocs:
		return "", "*.md",
			filepath.Join(s.cfg.Archive.Dir, s.cfg.Archive.DocsDir), s.cfg.Keep.Docs
	default:
		return "", "", "", nil
	}
}

// Compile-time assertion that Service implements domain.Archiver.
var _ domain.Archiver = (*Service)(nil)
