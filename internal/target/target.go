package target

import "path/filepath"

// Describes a release build target.
//
// The two instances relkit builds for are known statically; nothing is
// discovered at runtime. The suffix qualifies artifact names in the
// distribution directory and never includes the target triple.
type Target struct {
	OS     string // Platform identifier (e.g., "linux").
	Triple string // Rust target triple the build is compiled for.
	Suffix string // Platform qualifier appended to artifact names.
	Ext    string // Binary extension, including the dot (e.g., ".exe").
}

// The statically-linked Linux target.
var Linux = Target{
	OS:     "linux",
	Triple: "x86_64-unknown-linux-musl",
	Suffix: "linux-x86_64",
}

// The Windows cross-compilation target via the GNU toolchain.
var Windows = Target{
	OS:     "windows",
	Triple: "x86_64-pc-windows-gnu",
	Suffix: "windows-x86_64",
	Ext:    ".exe",
}

// Returns a copy of the target with the triple replaced.
//
// Used when a manifest overrides the default triple; the suffix and
// extension are deliberately kept, so artifact names stay stable.
func (t Target) WithTriple(triple string) Target {
	if triple != "" {
		t.Triple = triple
	}
	return t
}

// Returns the artifact filename for a component built for this target.
//
// The name is "<component>-<suffix><ext>", e.g.
// "rtxlauncher-ui-egui-linux-x86_64".
func (t Target) ArtifactName(component string) string {
	return component + "-" + t.Suffix + t.Ext
}

// Returns the cargo output path for a triple-targeted release build.
func (t Target) Output(root, component string) string {
	return filepath.Join(root, "target", t.Triple, "release", component+t.Ext)
}

// Returns the cargo output path for a host-default release build.
//
// Used by the Linux fallback path, which builds without --target and so
// writes directly under target/release.
func (t Target) DefaultOutput(root, component string) string {
	return filepath.Join(root, "target", "release", component+t.Ext)
}
