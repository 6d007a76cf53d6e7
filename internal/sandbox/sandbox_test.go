package sandbox

import (
	"slices"
	"testing"
)

func TestWorkspaceMounts(t *testing.T) {
	mounts := workspaceMounts("/home/user/proj")
	if len(mounts) != 1 {
		t.Fatalf("got %d mounts, want 1", len(mounts))
	}

	m := mounts[0]
	if m.Destination != workdir {
		t.Errorf("destination = %q, want %q", m.Destination, workdir)
	}
	if m.Source != "/home/user/proj" {
		t.Errorf("source = %q", m.Source)
	}
	if m.Type != "bind" {
		t.Errorf("type = %q, want bind", m.Type)
	}
	if !slices.Contains(m.Options, "rw") {
		t.Errorf("options = %v, want rw bind", m.Options)
	}
}

func TestBuildArgs(t *testing.T) {
	got := buildArgs("app", "x86_64-unknown-linux-musl")
	want := []string{"cargo", "build", "-p", "app", "--release", "--target", "x86_64-unknown-linux-musl"}
	if !slices.Equal(got, want) {
		t.Errorf("args = %v, want %v", got, want)
	}
}
