package cleanup

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"shelve/internal/config"
	"shelve/internal/domain"
	"shelve/internal/report"
)

// Service drives one cleanup pass over the project tree.
type Service struct {
	cfg      config.Config
	ws       domain.Workspace
	archiver domain.Archiver
	sweeper  domain.Sweeper
	out      io.Writer
	log      *zap.Logger
	now      func() time.Time
}

// New returns a cleanup orchestrator. now stamps the archive index and may be
// nil for time.Now.
func New(
	cfg config.Config,
	ws domain.Workspace,
	archiver domain.Archiver,
	sweeper domain.Sweeper,
	out io.Writer,
	log *zap.Logger,
	now func() time.Time,
) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		cfg:      cfg,
		ws:       ws,
		archiver: archiver,
		sweeper:  sweeper,
		out:      out,
		log:      log,
		now:      now,
	}
}

// Run performs the whole sequence and returns what was archived and removed.
// With execute false nothing on disk changes; every planned action is still
// listed and counted.
func (s *Service) Run(execute bool) (domain.RunResult, error) {
	res := domain.RunResult{DryRun: !execute}

	if execute {
		if err := s.ensureArchiveDirs(); err != nil {
			return res, err
		}
	}

	var err error

	fmt.Fprintln(s.out, "Archiving experimental modules...")
	if res.ArchivedModules, err = s.archiver.Archive(domain.CategoryModules, execute); err != nil {
		return res, err
	}

	fmt.Fprintln(s.out, "Archiving test scripts...")
	if res.ArchivedTests, err = s.archiver.Archive(domain.CategoryTests, execute); err != nil {
		return res, err
	}

	fmt.Fprintln(s.out, "Archiving old documentation...")
	if res.ArchivedDocs, err = s.archiver.Archive(domain.CategoryDocs, execute); err != nil {
		return res, err
	}

	fmt.Fprintln(s.out, "Sweeping temp artifacts...")
	if res.TempRemoved, err = s.sweeper.Sweep(execute); err != nil {
		return res, err
	}

	fmt.Fprint(s.out, report.Summary(res))

	if execute {
		indexPath := filepath.Join(s.cfg.Archive.Dir, report.IndexFileName)
		if err := s.ws.WriteFileAtomic(indexPath, report.Index(res, s.now())); err != nil {
			return res, err
		}
		fmt.Fprintf(s.out, "\nArchive index written to %s\n", indexPath)
	}

	s.log.Info("cleanup finished",
		zap.Bool("executed", execute),
		zap.Int("archived", res.TotalArchived()),
		zap.Int("temp_removed", res.TempRemoved))
	return res, nil
}

// ensureArchiveDirs creates the archive root and its three category
// subdirectories. Idempotent.
func (s *Service) ensureArchiveDirs() error {
	for _, sub := range []string{
		s.cfg.Archive.ModulesDir,
		s.cfg.Archive.TestsDir,
		s.cfg.Archive.DocsDir,
	} {
		if err := s.ws.EnsureDir(filepath.Join(s.cfg.Archive.Dir, sub)); err != nil {
			return err
		}
	}
	return nil
}

// Compile-time assertion that Service implements domain.CleanupRunner.
var _ domain.CleanupRunner = (*Service)(nil)
