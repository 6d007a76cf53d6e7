// Package toolchain invokes the external Rust build tools.
//
// A [Runner] executes toolchain commands as blocking child processes with
// their output streamed to the operator. [Cargo] wraps per-target release
// builds, [Rustup] wraps target registration, and [Strip] wraps symbol
// stripping. Tool availability is answered by [Probe] as a tri-state so
// callers branch on presence explicitly instead of relying on failure
// propagation.
//
// A non-zero exit from a build is reported as an error by the wrappers;
// whether that failure is fatal is the caller's decision.
//
// Example usage:
//
//	cargo := toolchain.NewCargo(toolchain.NewExecRunner(), ".")
//	if err := cargo.Build(ctx, "my-app", "x86_64-unknown-linux-musl", ""); err != nil {
//	    return err
//	}
package toolchain
