package toolchain

import (
	"context"
	"fmt"
	"log/slog"
)

// Removes debug symbols from the binary at path using the given stripper.
//
// The stripper differs per platform: host binaries use the native strip,
// Windows cross-builds use the mingw-w64 strip. Failure here only costs
// artifact size, so callers treat the returned error as advisory.
func Strip(ctx context.Context, runner Runner, stripper, path string) error {
	slog.Debug("stripping symbols", "stripper", stripper, "path", path)

	result, err := runner.Run(ctx, Command{
		Name: stripper,
		Args: []string{path},
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrToolchain, err)
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("%w: %s exited with code %d", ErrStripFailed, stripper, result.ExitCode)
	}

	return nil
}
