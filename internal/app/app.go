package app

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"shelve/internal/config"
	"shelve/internal/domain"
	"shelve/internal/logging"
	archivesvc "shelve/internal/services/archive"
	cleanupsvc "shelve/internal/services/cleanup"
	importsvc "shelve/internal/services/imports"
	sweepsvc "shelve/internal/services/sweep"
	"shelve/internal/store"
)

// App bundles the store and services for the CLI.
type App struct {
	Cfg     config.Config
	Cleanup domain.CleanupRunner
	Imports domain.ImportChecker
	Log     *zap.Logger
}

// New constructs the dependency graph from cfg.
func New(cfg Config) (*App, error) {
	configFile := cfg.ConfigFile
	if configFile == "" {
		configFile = filepath.Join(cfg.Root, config.DefaultFileName)
	}
	fileCfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.Verbose)
	if err != nil {
		return nil, err
	}

	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	ws := store.NewWorkspace(cfg.Root)
	archiver := archivesvc.New(fileCfg, ws, out, log)
	sweeper := sweepsvc.New(fileCfg, ws, out, log)
	checker := importsvc.New(fileCfg.ImportTargets, ws, out)
	runner := cleanupsvc.New(fileCfg, ws, archiver, sweeper, out, log, cfg.Now)

	return &App{
		Cfg:     fileCfg,
		Cleanup: runner,
		Imports: checker,
		Log:     log,
	}, nil
}
