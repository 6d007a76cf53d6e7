package toolchain

import (
	"context"
	"fmt"
	"log/slog"
)

// Wraps rustup target registration.
type Rustup struct {
	runner Runner // Executes the rustup process.
	bin    string // Rustup binary name.
}

// Creates a [Rustup] backed by the given runner.
func NewRustup(runner Runner) *Rustup {
	return &Rustup{
		runner: runner,
		bin:    "rustup",
	}
}

// Registers the given target triples with the installed toolchain.
//
// Registration may download target support files. This step is advisory:
// callers are expected to swallow the returned error, since a missing
// target fails loudly at build time anyway.
func (r *Rustup) AddTargets(ctx context.Context, triples ...string) error {
	slog.Debug("registering targets", "triples", triples)

	result, err := r.runner.Run(ctx, Command{
		Name: r.bin,
		Args: append([]string{"target", "add"}, triples...),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrToolchain, err)
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("%w: rustup exited with code %d", ErrToolchain, result.ExitCode)
	}

	return nil
}
