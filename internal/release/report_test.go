package release

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestHumanSize(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want string
	}{
		{"bytes", 512, "512 B"},
		{"zero", 0, "0 B"},
		{"kibibytes", 2048, "2.0 KiB"},
		{"mebibytes", 5 * 1024 * 1024, "5.0 MiB"},
		{"gibibytes", 3 * 1024 * 1024 * 1024, "3.0 GiB"},
		{"fractional", 1536, "1.5 KiB"},
		{"pebibytes", 1 << 50, "1.0 PiB"},
		{"exbibytes", 1 << 62, "4.0 EiB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := humanSize(tt.n); got != tt.want {
				t.Errorf("humanSize(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}

func TestReportMissingDir(t *testing.T) {
	err := Report(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, ErrFileSystemOperation) {
		t.Fatalf("error = %v, want ErrFileSystemOperation", err)
	}
}
