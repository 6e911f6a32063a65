package home

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWithPath(t *testing.T) {
	d, err := New("/tmp/simmer-test")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if d.Path() != "/tmp/simmer-test" {
		t.Errorf("path = %q", d.Path())
	}
}

func TestNewDefaultsToUserHome(t *testing.T) {
	d, err := New("")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if !strings.HasSuffix(d.Path(), DefaultDirName) {
		t.Errorf("path = %q, want %s suffix", d.Path(), DefaultDirName)
	}
}

func TestPaths(t *testing.T) {
	root := t.TempDir()
	d, err := New(root)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if got := d.ConfigPath(); got != filepath.Join(root, ConfigFileName) {
		t.Errorf("config path = %q", got)
	}
	if got := d.RecipesDBPath(); got != filepath.Join(root, DataDirName, RecipesDBFileName) {
		t.Errorf("db path = %q", got)
	}
	if got := d.StepImagePath("abc", 3, ".png"); got != filepath.Join(root, ImagesDirName, "abc", "step_03.png") {
		t.Errorf("step image path = %q", got)
	}
}

func TestEnsureExists(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested")
	d, err := New(root)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if d.Exists() {
		t.Error("directory should not exist yet")
	}
	if err := d.EnsureExists(); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if !d.Exists() {
		t.Error("directory missing after EnsureExists")
	}
	if _, err := os.Stat(d.DataPath()); err != nil {
		t.Errorf("data dir missing: %v", err)
	}
	if d.ConfigExists() {
		t.Error("config should not exist")
	}
}
