package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("valid config overlays defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join("testdata", "valid_config.yaml"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Database.Path != "./data/catalog.db" {
			t.Fatalf("expected database path, got %q", cfg.Database.Path)
		}
		if !cfg.Database.ForeignKeys {
			t.Fatalf("expected foreign keys enabled")
		}
		if cfg.Log.Level != "debug" || cfg.Log.MaxBackups != 2 {
			t.Fatalf("unexpected log config: %+v", cfg.Log)
		}
		if cfg.Log.MaxSizeMB != 50 || cfg.Log.MaxAgeDays != 30 || !cfg.Log.Compress {
			t.Fatalf("expected unset log fields to keep defaults, got %+v", cfg.Log)
		}
		if cfg.Console.ClearScreen || cfg.Console.Pause() != 0 {
			t.Fatalf("unexpected console config: %+v", cfg.Console)
		}
	})

	t.Run("empty file yields defaults", func(t *testing.T) {
		cfg, err := Load(writeTempConfig(t, ""))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if *cfg != *Default() {
			t.Fatalf("expected defaults, got %+v", cfg)
		}
	})

	t.Run("empty database path", func(t *testing.T) {
		path := writeTempConfig(t, "database:\n  path: \"\"\n")
		if _, err := Load(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unknown log level", func(t *testing.T) {
		path := writeTempConfig(t, "log:\n  level: loud\n")
		if _, err := Load(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("non-positive log size", func(t *testing.T) {
		path := writeTempConfig(t, "log:\n  max_size_mb: 0\n")
		if _, err := Load(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("negative pause", func(t *testing.T) {
		path := writeTempConfig(t, "console:\n  pause_ms: -5\n")
		if _, err := Load(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("file not found", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeTempConfig(t, "database: [\n")
		if _, err := Load(path); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestLoadOptional(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := LoadOptional(filepath.Join(t.TempDir(), "missing.yaml"))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if *cfg != *Default() {
			t.Fatalf("expected defaults, got %+v", cfg)
		}
	})

	t.Run("invalid file still fails", func(t *testing.T) {
		path := writeTempConfig(t, "log:\n  level: loud\n")
		if _, err := LoadOptional(path); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Database.Path != "movies.db" {
		t.Fatalf("expected movies.db, got %q", cfg.Database.Path)
	}
	if cfg.Database.ForeignKeys {
		t.Fatalf("expected foreign keys disabled by default")
	}
	if cfg.Console.Pause() != time.Second {
		t.Fatalf("expected one second pause, got %v", cfg.Console.Pause())
	}
	if err := validate(cfg); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "movielist.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}
