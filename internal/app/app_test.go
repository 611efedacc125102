package app_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"shelve/internal/app"
)

func TestNew_WiresARunnableApp(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "test_scratch.py"), []byte("x"), 0o644))

	var out bytes.Buffer
	a, err := app.New(app.Config{Root: root, Out: &out})
	require.NoError(t, err)

	res, err := a.Cleanup.Run(false)
	require.NoError(t, err)
	require.Equal(t, []string{"test_scratch.py"}, res.ArchivedTests)
	require.Contains(t, out.String(), "would move test_scratch.py")
}

func TestNew_PicksUpProjectConfigFile(t *testing.T) {
	root := t.TempDir()
	yaml := "modules_dir: src\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "shelve.yaml"), []byte(yaml), 0o644))

	a, err := app.New(app.Config{Root: root, Out: &bytes.Buffer{}})
	require.NoError(t, err)
	require.Equal(t, "src", a.Cfg.ModulesDir)
}
