package release

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestCopyArtifact(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bin")
	dest := filepath.Join(dir, "app-linux-x86_64")

	if err := os.WriteFile(src, []byte("first"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := copyArtifact(src, dest); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(dest)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0111 == 0 {
		t.Errorf("artifact mode = %v, want executable", info.Mode())
	}

	// Reruns overwrite.
	if err := os.WriteFile(src, []byte("second"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := copyArtifact(src, dest); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("artifact content = %q, want the rerun's output", data)
	}
}

func TestCopyArtifactMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := copyArtifact(filepath.Join(dir, "nope"), filepath.Join(dir, "out"))
	if !errors.Is(err, ErrFileSystemOperation) {
		t.Fatalf("error = %v, want ErrFileSystemOperation", err)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()

	if fileExists(filepath.Join(dir, "nope")) {
		t.Error("missing path reported as existing")
	}
	if fileExists(dir) {
		t.Error("directory reported as a regular file")
	}

	path := filepath.Join(dir, "f")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if !fileExists(path) {
		t.Error("regular file not reported as existing")
	}
}
