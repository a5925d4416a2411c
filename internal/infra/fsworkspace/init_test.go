package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/seek/internal/domain"
	"github.com/aalvaropc/seek/internal/infra/config"
)

func TestInitializer_Init_CreatesWorkspaceFiles(t *testing.T) {
	tmp := t.TempDir()

	i := NewInitializer()
	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertFileExists(t, filepath.Join(tmp, "seek.yaml"))
	assertFileExists(t, filepath.Join(tmp, "runs"))
	assertFileExists(t, filepath.Join(tmp, ".seek", "logs"))
	assertFileExists(t, filepath.Join(tmp, ".gitignore"))
}

func TestInitializer_TemplateIsValidConfig(t *testing.T) {
	tmp := t.TempDir()
	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	cfg, err := config.LoadFile(filepath.Join(tmp, "seek.yaml"))
	if err != nil {
		t.Fatalf("template should load cleanly: %v", err)
	}
	if cfg != domain.DefaultConfig() {
		t.Fatalf("expected template to mirror defaults, got %+v", cfg)
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	seekYAML := filepath.Join(tmp, "seek.yaml")
	if err := os.WriteFile(seekYAML, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing seek.yaml: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(seekYAML)
	if err != nil {
		t.Fatalf("read seek.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected seek.yaml preserved, got %q", string(b))
	}

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(seekYAML)
	if err != nil {
		t.Fatalf("read seek.yaml after force: %v", err)
	}
	if !strings.Contains(string(b), "seek:") {
		t.Fatalf("expected seek.yaml overwritten with template, got %q", string(b))
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s, stat err=%v", path, err)
	}
}
