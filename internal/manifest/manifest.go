package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

var ErrManifest = errors.New("manifest error")

// Declarative overrides for a release run.
//
// All fields are optional; zero values defer to built-in defaults or CLI
// flags. Flags override the manifest, the manifest overrides defaults.
type Manifest struct {
	Component string         `hcl:"component,optional"` // Cargo package to build.
	Dist      string         `hcl:"dist,optional"`      // Distribution directory.
	Rustflags string         `hcl:"rustflags,optional"` // Extra RUSTFLAGS, appended to the inherited value.
	Linux     *TargetOptions `hcl:"linux,block"`        // Linux target overrides.
	Windows   *TargetOptions `hcl:"windows,block"`      // Windows target overrides.
}

// Per-target overrides within a manifest.
type TargetOptions struct {
	Triple string `hcl:"triple,optional"` // Replaces the default target triple.
	Skip   bool   `hcl:"skip,optional"`   // Skips the target's build. Windows only; a release always produces the Linux artifact.
}

// Loads a manifest from an HCL file.
//
// A missing file is not an error; an empty manifest is returned so callers
// can treat the manifest as optional without checking for existence first.
// Parse and decode diagnostics are errors.
func Load(path string) (*Manifest, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return &Manifest{}, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrManifest, path, diags)
	}

	var m Manifest
	if diags := gohcl.DecodeBody(file.Body, nil, &m); diags.HasErrors() {
		return nil, fmt.Errorf("%w: decoding %s: %w", ErrManifest, path, diags)
	}

	// A run without a Linux artifact cannot succeed, so a manifest asking
	// to skip it is rejected outright instead of being silently ignored.
	if m.Linux.Skipped() {
		return nil, fmt.Errorf("%w: %s: the linux target cannot be skipped", ErrManifest, path)
	}

	return &m, nil
}

// Returns the configured triple for a target block, or "" when unset.
func (o *TargetOptions) TripleOrDefault() string {
	if o == nil {
		return ""
	}
	return o.Triple
}

// Returns true when a target block requests skipping its build.
func (o *TargetOptions) Skipped() bool {
	return o != nil && o.Skip
}
