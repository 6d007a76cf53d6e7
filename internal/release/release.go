package release

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/rtxlauncher/relkit/internal/paths"
	"github.com/rtxlauncher/relkit/internal/target"
	"github.com/rtxlauncher/relkit/internal/toolchain"
)

// Default cargo package built by a release run.
const DefaultComponent = "rtxlauncher-ui-egui"

// Host-native symbol stripper for Linux artifacts.
const linuxStripper = "strip"

// Cross toolchain binaries for the Windows target.
const (
	windowsCompiler = "x86_64-w64-mingw32-gcc"
	windowsStripper = "x86_64-w64-mingw32-strip"
)

// Builds the Linux target inside an isolated environment.
//
// Implemented by the containerd sandbox; the pipeline only requires this
// narrow surface so tests and toolchain-less hosts stay independent of it.
type HermeticBuilder interface {
	Build(ctx context.Context, root, component, triple string) error
}

// Controls a release run.
type Options struct {
	Component   string                          // Cargo package to build; defaults to [DefaultComponent].
	Root        string                          // Cargo workspace root; defaults to ".".
	Dist        string                          // Distribution directory; defaults to <root>/dist.
	RustFlags   string                          // Inherited RUSTFLAGS, read once at the process boundary.
	Strip       bool                            // Whether to strip debug symbols from artifacts.
	SkipWindows bool                            // Skips the Windows build step entirely.
	Linux       target.Target                   // Linux target; zero value means [target.Linux].
	Windows     target.Target                   // Windows target; zero value means [target.Windows].
	Runner      toolchain.Runner                // Executes toolchain processes; defaults to child processes.
	Probe       func(string) toolchain.Presence // Tool availability probe; defaults to [toolchain.Probe].
	Hermetic    HermeticBuilder                 // Optional isolated Linux build; nil builds on the host.
}

// Returned after a release run that produced at least the Linux artifact.
type Result struct {
	Linux   string // Path of the Linux artifact in the distribution directory.
	Windows string // Path of the Windows artifact, or "" when none was produced.
}

// Executes the release pipeline.
//
// The distribution directory is created if absent and never deleted;
// reruns overwrite existing artifacts. The returned error is non-nil only
// for the fatal cases: a failed fallback Linux build, no Linux artifact
// after both attempts, or a filesystem failure placing the Linux artifact.
func Run(ctx context.Context, opts Options) (*Result, error) {
	p := newPipeline(opts)

	slog.Info("starting release build",
		"component", p.component,
		"root", p.root,
		"dist", p.dist,
	)

	if err := os.MkdirAll(p.dist, paths.DefaultDirMode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	return p.run(ctx)
}

// Holds shared state for the steps of a release run.
type pipeline struct {
	component string                          // Cargo package under build.
	root      string                          // Workspace root.
	dist      string                          // Distribution directory.
	rustflags string                          // Inherited RUSTFLAGS value.
	strip     bool                            // Whether stripping is requested.
	skipWin   bool                            // Whether the Windows step is skipped.
	linux     target.Target                   // Linux build target.
	windows   target.Target                   // Windows build target.
	cargo     *toolchain.Cargo                // Build tool wrapper.
	rustup    *toolchain.Rustup               // Target registration wrapper.
	runner    toolchain.Runner                // Runner shared by the strip steps.
	probe     func(string) toolchain.Presence // Tool availability probe.
	hermetic  HermeticBuilder                 // Optional isolated Linux build.
	result    Result                          // Artifact paths accumulated across steps.
}

// Creates a [pipeline] from the given options, filling defaults.
func newPipeline(opts Options) *pipeline {
	if opts.Component == "" {
		opts.Component = DefaultComponent
	}
	if opts.Root == "" {
		opts.Root = "."
	}
	if opts.Dist == "" {
		opts.Dist = paths.Dist(opts.Root)
	}
	if opts.Linux == (target.Target{}) {
		opts.Linux = target.Linux
	}
	if opts.Windows == (target.Target{}) {
		opts.Windows = target.Windows
	}
	if opts.Runner == nil {
		opts.Runner = toolchain.NewExecRunner()
	}
	if opts.Probe == nil {
		opts.Probe = toolchain.Probe
	}

	return &pipeline{
		component: opts.Component,
		root:      opts.Root,
		dist:      opts.Dist,
		rustflags: opts.RustFlags,
		strip:     opts.Strip,
		skipWin:   opts.SkipWindows,
		linux:     opts.Linux,
		windows:   opts.Windows,
		cargo:     toolchain.NewCargo(opts.Runner, opts.Root),
		rustup:    toolchain.NewRustup(opts.Runner),
		runner:    opts.Runner,
		probe:     opts.Probe,
		hermetic:  opts.Hermetic,
	}
}

// Runs the pipeline steps in order.
//
// Only the Linux step can abort the run. The Windows step and the report
// are tolerated end to end.
func (p *pipeline) run(ctx context.Context) (*Result, error) {
	p.registerTargets(ctx)

	if err := p.buildLinux(ctx); err != nil {
		return nil, err
	}

	if p.skipWin {
		slog.Info("skipping Windows build")
	} else {
		p.buildWindows(ctx)
	}

	p.report()

	return &p.result, nil
}

// Registers both target triples with rustup.
//
// Advisory: a failure here is swallowed, since a genuinely missing target
// fails loudly at build time.
func (p *pipeline) registerTargets(ctx context.Context) {
	err := p.rustup.AddTargets(ctx, p.linux.Triple, p.windows.Triple)
	if err != nil {
		slog.Debug("target registration failed", "error", err)
	}
}

// Strips debug symbols from an artifact with the given stripper.
//
// Absence of the stripper and stripping failure are both tolerated; the
// artifact simply keeps its symbols.
func (p *pipeline) stripArtifact(ctx context.Context, stripper, path string) {
	if !p.strip {
		return
	}

	switch p.probe(stripper) {
	case toolchain.ToolPresent:
		if err := toolchain.Strip(ctx, p.runner, stripper, path); err != nil {
			slog.Warn("symbol stripping failed", "path", path, "error", err)
		}
	case toolchain.ToolAbsent:
		slog.Debug("stripper not available", "stripper", stripper)
	default:
		slog.Warn("could not determine stripper availability", "stripper", stripper)
	}
}
