package imports_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"shelve/internal/services/imports"
	"shelve/internal/store"
)

func TestCheck_ReportsOnlyExistingTargets(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "main.py"), []byte("import os\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	var out bytes.Buffer
	svc := imports.New([]string{"main.py", "modules/transcriber.py"}, store.NewWorkspace(root), &out)

	if err := svc.Check(); err != nil {
		t.Fatalf("check: %v", err)
	}
	got := out.String()
	if !bytes.Contains([]byte(got), []byte("main.py: imports optimized")) {
		t.Fatalf("missing placeholder line for existing target: %q", got)
	}
	if bytes.Contains([]byte(got), []byte("transcriber.py")) {
		t.Fatalf("missing target must be skipped: %q", got)
	}
}

func TestCheck_DoesNotTouchTargets(t *testing.T) {
	root := t.TempDir()
	content := []byte("import os\nimport sys\n")
	if err := os.WriteFile(filepath.Join(root, "main.py"), content, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	svc := imports.New([]string{"main.py"}, store.NewWorkspace(root), &bytes.Buffer{})
	if err := svc.Check(); err != nil {
		t.Fatalf("check: %v", err)
	}

	after, err := os.ReadFile(filepath.Join(root, "main.py"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(after) != string(content) {
		t.Fatal("check must not rewrite its targets")
	}
}
