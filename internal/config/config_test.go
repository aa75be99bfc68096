package config

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/erazemk/seznam/internal/visitor"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SEZNAM_DB", "SEZNAM_ADDR", "SEZNAM_LOG", "SEZNAM_SCRATCH_SCOPE", "SECRET_KEY"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(nil, "", io.Discard)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "seznam.sqlite3" {
		t.Errorf("expected default db path, got %q", cfg.DBPath)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("expected :8080, got %q", cfg.Addr)
	}
	if cfg.ScratchScope != visitor.Global {
		t.Errorf("expected global scope, got %q", cfg.ScratchScope)
	}
	if cfg.SecretKey != "" {
		t.Errorf("expected no secret key, got %q", cfg.SecretKey)
	}
}

func TestLoadEnvAndFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEZNAM_ADDR", ":9000")
	t.Setenv("SEZNAM_DB", "env.sqlite3")
	t.Setenv("SECRET_KEY", "s3cret")

	cfg, err := Load([]string{"-d", "flag.sqlite3", "-scratch", "session"}, "", io.Discard)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9000" {
		t.Errorf("expected env addr :9000, got %q", cfg.Addr)
	}
	if cfg.DBPath != "flag.sqlite3" {
		t.Errorf("flag should override env, got %q", cfg.DBPath)
	}
	if cfg.ScratchScope != visitor.Session {
		t.Errorf("expected session scope, got %q", cfg.ScratchScope)
	}
	if cfg.SecretKey != "s3cret" {
		t.Errorf("expected secret from env, got %q", cfg.SecretKey)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("SEZNAM_LOG")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("SEZNAM_LOG=seznam.log\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("SEZNAM_LOG") })

	cfg, err := Load(nil, path, io.Discard)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogPath != "seznam.log" {
		t.Errorf("expected log path from .env, got %q", cfg.LogPath)
	}
}

func TestLoadMissingDotEnv(t *testing.T) {
	clearEnv(t)

	if _, err := Load(nil, filepath.Join(t.TempDir(), "missing.env"), io.Discard); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	if _, err := Load([]string{"-s", "per-user"}, "", io.Discard); err == nil {
		t.Error("expected error for unknown scratch scope")
	}
	if _, err := Load([]string{"extra"}, "", io.Discard); err == nil {
		t.Error("expected error for positional argument")
	}
	if _, err := Load([]string{"-h"}, "", io.Discard); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("expected flag.ErrHelp, got %v", err)
	}
}
