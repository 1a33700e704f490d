package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "nope"))
	if cfg.Theme != "dark" {
		t.Errorf("want default theme dark, got %q", cfg.Theme)
	}
	if cfg.PageSize != 0 {
		t.Errorf("want zero page size, got %d", cfg.PageSize)
	}
}

func TestLoad_CorruptFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, filename), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := Load(dir)
	if cfg.Theme != "dark" {
		t.Errorf("want default theme dark, got %q", cfg.Theme)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "profiles", "test")

	want := Config{Theme: "light", BackendURL: "http://localhost:8000", PageSize: 50}
	if err := Save(dir, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := Load(dir)
	if got != want {
		t.Errorf("round trip mismatch: want %+v, got %+v", want, got)
	}
}

func TestSave_PersistsThemeChange(t *testing.T) {
	dir := t.TempDir()

	cfg := Load(dir)
	cfg.Theme = "light"
	if err := Save(dir, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	if got := Load(dir).Theme; got != "light" {
		t.Errorf("want persisted theme light, got %q", got)
	}
}
