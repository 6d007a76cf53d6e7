package release

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rtxlauncher/relkit/internal/paths"
)

// Copies a build output into the distribution directory.
//
// The destination is truncated when it already exists, so reruns
// overwrite. Artifacts are written with the executable file mode.
func copyArtifact(src, dest string) error {
	slog.Debug("copying artifact", "src", src, "dest", dest)

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, paths.DefaultBinMode)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	return nil
}

// Whether a regular file exists at the given path.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
