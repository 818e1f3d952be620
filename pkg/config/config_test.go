package config

import (
	"os"
	"path/filepath"
	"testing"

	homedir "github.com/mitchellh/go-homedir"
)

func init() {
	// Tests point HOME at temporary directories.
	homedir.DisableCache = true
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("BOOKSHELF_CONFIG_PATH", dir)
	chdir(t, dir)

	cfg, err := Load(Options{SkipDotEnv: true})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadReadsYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	chdir(t, dir)
	body := "page_size: 12\ntheme: night\nlog_file: ~/bookshelf.log\n"
	if err := os.WriteFile(filepath.Join(dir, ".bookshelf.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(Options{Paths: []string{dir}, SkipDotEnv: true})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.PageSize != 12 || cfg.Theme != "night" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.LogFile != filepath.Join(dir, "bookshelf.log") {
		t.Fatalf("expected expanded log path, got %q", cfg.LogFile)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	chdir(t, dir)
	if err := os.WriteFile(filepath.Join(dir, ".bookshelf.yaml"), []byte("page_size: 12\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("BOOKSHELF_PAGE_SIZE", "5")

	cfg, err := Load(Options{Paths: []string{dir}, SkipDotEnv: true})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.PageSize != 5 {
		t.Fatalf("expected env override, got %d", cfg.PageSize)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.PageSize = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected page size error")
	}
	cfg = Default()
	cfg.Theme = "sepia"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected theme error")
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
