package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Missing(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Roots) != 0 || len(cfg.Kinds) != 0 {
		t.Fatalf("got %+v, want zero value", cfg)
	}
}

func TestLoadConfig_Parses(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	content := `
roots:
  - ../other-repo
kinds:
  - cargo
  - node
exclude:
  - vendor/
walker:
  follow_symlinks: true
  skip_hidden: false
`
	if err := os.WriteFile(filepath.Join(dir, ".kondo.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Kinds) != 2 || cfg.Kinds[0] != "cargo" || cfg.Kinds[1] != "node" {
		t.Fatalf("got kinds %v", cfg.Kinds)
	}
	if cfg.Walker.FollowSymlinks == nil || !*cfg.Walker.FollowSymlinks {
		t.Fatal("expected follow_symlinks override to be true")
	}
	if cfg.Walker.SkipHidden == nil || *cfg.Walker.SkipHidden {
		t.Fatal("expected skip_hidden override to be false")
	}
	if cfg.Walker.SameFileSystem != nil {
		t.Fatal("expected same_file_system to be left unset")
	}
}
