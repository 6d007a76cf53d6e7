package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// Writes an HCL manifest into a temp dir and returns its path.
func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "release.hcl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeManifest(t, `
component = "rtxlauncher-ui-egui"
dist      = "out"
rustflags = "-C opt-level=z"

linux {
  triple = "aarch64-unknown-linux-musl"
}

windows {
  skip = true
}
`)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.Component != "rtxlauncher-ui-egui" {
		t.Errorf("Component = %q", m.Component)
	}
	if m.Dist != "out" {
		t.Errorf("Dist = %q", m.Dist)
	}
	if got := m.Linux.TripleOrDefault(); got != "aarch64-unknown-linux-musl" {
		t.Errorf("linux triple = %q", got)
	}
	if !m.Windows.Skipped() {
		t.Error("windows skip not decoded")
	}
	if m.Linux.Skipped() {
		t.Error("linux skip should default to false")
	}
	if m.Rustflags != "-C opt-level=z" {
		t.Errorf("Rustflags = %q", m.Rustflags)
	}
}

func TestLoadLinuxSkipRejected(t *testing.T) {
	path := writeManifest(t, `
linux {
  skip = true
}
`)

	_, err := Load(path)
	if !errors.Is(err, ErrManifest) {
		t.Fatalf("error = %v, want ErrManifest", err)
	}
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "release.hcl"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Component != "" || m.Dist != "" || m.Linux != nil || m.Windows != nil {
		t.Errorf("missing file should yield empty manifest, got %+v", m)
	}
}

func TestLoadInvalidHCL(t *testing.T) {
	path := writeManifest(t, `component = `)

	_, err := Load(path)
	if !errors.Is(err, ErrManifest) {
		t.Fatalf("error = %v, want ErrManifest", err)
	}
}

func TestNilTargetOptions(t *testing.T) {
	var o *TargetOptions
	if o.TripleOrDefault() != "" {
		t.Error("nil block should yield empty triple")
	}
	if o.Skipped() {
		t.Error("nil block should not skip")
	}
}
