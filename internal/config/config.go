package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the project root.
const DefaultFileName = "shelve.yaml"

// Config drives a cleanup run: where archived files go, which files stay in
// place, and which transient artifacts get deleted.
type Config struct {
	// ModulesDir is the directory holding the project's source modules,
	// relative to the project root.
	ModulesDir string `yaml:"modules_dir"`

	Archive ArchiveConfig `yaml:"archive"`
	Keep    KeepConfig    `yaml:"keep"`

	// TempPatterns are recursive glob patterns matched from the project root.
	// Every match is deleted in execute mode. Order matters: a directory
	// pattern must not follow a pattern that could match its children.
	TempPatterns []string `yaml:"temp_patterns"`

	// ImportTargets are the files the placeholder import check reports on.
	ImportTargets []string `yaml:"import_targets"`
}

// ArchiveConfig names the archive root and its category subdirectories,
// relative to the project root.
type ArchiveConfig struct {
	Dir        string `yaml:"dir"`
	ModulesDir string `yaml:"modules"`
	TestsDir   string `yaml:"tests"`
	DocsDir    string `yaml:"docs"`
}

// KeepConfig lists the filenames exempt from archiving, per category.
// An entry naming a file that does not exist is inert.
type KeepConfig struct {
	Modules []string `yaml:"modules"`
	Tests   []string `yaml:"tests"`
	Docs    []string `yaml:"docs"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		ModulesDir: "modules",
		Archive: ArchiveConfig{
			Dir:        "archive",
			ModulesDir: "experimental_modules",
			TestsDir:   "test_scripts",
			DocsDir:    "old_docs",
		},
		Keep: KeepConfig{
			Modules: []string{
				"__init__.py",
				"audio_processor.py",
				"transcriber.py",
				"summarizer.py",
				"file_watcher.py",
				"config_loader.py",
			},
			Tests: []string{
				"test_transcribe.py",
				"test_resume.py",
				"test_summary.py",
			},
			Docs: []string{
				"README.md",
				"SETUP.md",
				"CHANGELOG.md",
			},
		},
		TempPatterns: []string{
			"**/__pycache__",
			"**/*.pyc",
			"**/*.pyo",
			"**/*.log",
			"**/.coverage",
			"**/htmlcov",
			"**/.pytest_cache",
			"**/build",
			"**/dist",
			"**/*.egg-info",
		},
		ImportTargets: []string{
			"main.py",
			"modules/transcriber.py",
			"modules/audio_processor.py",
		},
	}
}

// Load reads the YAML file at path over the defaults. A missing file returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
