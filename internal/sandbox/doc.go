// Package sandbox runs the Linux release build inside a container.
//
// A [Builder] connects to a containerd daemon, pulls a Rust builder
// image, and runs cargo in a container with the project workspace bind
// mounted at a fixed path. Build outputs land in the workspace's target
// directory through the mount, so the host pipeline resolves artifacts
// exactly as it does for host builds.
//
// The sandbox is an optional capability: callers fall back to a host
// build on any failure, from a missing daemon to a failed pull.
//
// Example usage:
//
//	builder, err := sandbox.New("")
//	if err != nil {
//	    return err
//	}
//	defer builder.Close()
//
//	err = builder.Build(ctx, ".", "my-app", "x86_64-unknown-linux-musl")
package sandbox
