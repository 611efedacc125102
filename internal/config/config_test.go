package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelve/internal/config"
)

func TestDefault_Shape(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "modules", cfg.ModulesDir)
	assert.Equal(t, "archive", cfg.Archive.Dir)
	assert.Equal(t, "experimental_modules", cfg.Archive.ModulesDir)
	assert.Equal(t, "test_scripts", cfg.Archive.TestsDir)
	assert.Equal(t, "old_docs", cfg.Archive.DocsDir)

	assert.Contains(t, cfg.Keep.Tests, "test_resume.py")
	assert.Contains(t, cfg.Keep.Docs, "README.md")
	assert.NotEmpty(t, cfg.TempPatterns)
	assert.Len(t, cfg.ImportTargets, 3)
}

func TestDefault_NoDirPatternAfterChildPattern(t *testing.T) {
	// The sweep removes __pycache__ whole before any *.pyc walk runs; the
	// ordering keeps directory patterns ahead of patterns matching their
	// contents.
	cfg := config.Default()
	require.NotEmpty(t, cfg.TempPatterns)
	assert.Equal(t, "**/__pycache__", cfg.TempPatterns[0])
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "shelve.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_OverridesReplaceLists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shelve.yaml")
	yaml := "keep:\n  tests:\n    - test_other.py\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"test_other.py"}, cfg.Keep.Tests)
	// Untouched fields keep their defaults.
	assert.Equal(t, config.Default().Keep.Docs, cfg.Keep.Docs)
	assert.Equal(t, config.Default().TempPatterns, cfg.TempPatterns)
}

func TestLoad_MalformedYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shelve.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keep: ["), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}
