package toolchain

import (
	"context"
	"fmt"
	"log/slog"
)

// Wraps release builds of a cargo workspace.
type Cargo struct {
	runner Runner // Executes the cargo process.
	root   string // Workspace root, used as the working directory.
	bin    string // Cargo binary name.
}

// Creates a [Cargo] for the workspace rooted at the given directory.
func NewCargo(runner Runner, root string) *Cargo {
	return &Cargo{
		runner: runner,
		root:   root,
		bin:    "cargo",
	}
}

// Builds a workspace package in the release profile.
//
// When triple is non-empty the build targets that triple and the output
// lands under target/<triple>/release. An empty triple builds for the
// host's default target under target/release. When rustflags is non-empty
// it is passed as RUSTFLAGS for this invocation only, overriding the
// inherited value; an empty rustflags leaves the inherited environment
// untouched.
//
// A non-zero cargo exit is returned as [ErrBuildFailed].
func (c *Cargo) Build(ctx context.Context, component, triple, rustflags string) error {
	args := []string{"build", "-p", component, "--release"}
	if triple != "" {
		args = append(args, "--target", triple)
	}

	var env []string
	if rustflags != "" {
		env = append(env, "RUSTFLAGS="+rustflags)
	}

	slog.Debug("cargo build", "component", component, "triple", triple, "rustflags", rustflags)

	result, err := c.runner.Run(ctx, Command{
		Name: c.bin,
		Args: args,
		Dir:  c.root,
		Env:  env,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrToolchain, err)
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("%w: cargo exited with code %d", ErrBuildFailed, result.ExitCode)
	}

	return nil
}
