// Package release orchestrates the multi-target release build.
//
// A run is a single linear pipeline: register the target triples with
// rustup (advisory), build the Linux component statically with a
// dynamic fallback, resolve and copy the Linux artifact into the
// distribution directory, build the Windows component best-effort,
// resolve its artifact if one was produced, and report the distribution
// directory contents.
//
// Failures follow a two-tier policy. Guarded steps (target registration,
// symbol stripping, everything on the Windows side, the report) degrade
// with a logged warning or error and never change the run's outcome.
// Unguarded steps (the Linux fallback build, the Linux artifact
// resolution) abort the run. A missing Windows artifact is reported but
// the run still succeeds.
//
// Example usage:
//
//	result, err := release.Run(ctx, release.Options{
//	    Component: "rtxlauncher-ui-egui",
//	    Root:      ".",
//	    Dist:      "dist",
//	    RustFlags: os.Getenv("RUSTFLAGS"),
//	    Strip:     true,
//	})
//	if err != nil {
//	    return err
//	}
package release
