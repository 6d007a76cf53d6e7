package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/rtxlauncher/relkit/internal/manifest"
	"github.com/rtxlauncher/relkit/internal/release"
	"github.com/rtxlauncher/relkit/internal/sandbox"
	"github.com/rtxlauncher/relkit/internal/target"
	"github.com/rtxlauncher/relkit/internal/toolchain"
)

// Represents the 'relkit build' command.
type BuildCmd struct {
	Root        string `help:"Cargo workspace root." default:"." type:"existingdir"`
	Dist        string `help:"Distribution directory. Defaults to <root>/dist." placeholder:"PATH"`
	Component   string `help:"Cargo package to build." placeholder:"NAME"`
	Config      string `help:"Release manifest path." default:"release.hcl" placeholder:"PATH"`
	Hermetic    bool   `help:"Run the Linux build inside a containerd sandbox."`
	NoStrip     bool   `help:"Keep debug symbols in the artifacts."`
	SkipWindows bool   `help:"Skip the Windows build."`
}

// Executes the build command.
//
// Options are resolved in order of precedence: flags, then the release
// manifest, then built-in defaults. RUSTFLAGS is read here, once, at the
// process boundary; the pipeline never touches the ambient environment.
func (c *BuildCmd) Run(ctx context.Context) error {
	m, err := manifest.Load(c.Config)
	if err != nil {
		return err
	}

	opts := release.Options{
		Component:   firstOf(c.Component, m.Component, release.DefaultComponent),
		Root:        c.Root,
		Dist:        firstOf(c.Dist, m.Dist),
		RustFlags:   toolchain.Combine(os.Getenv("RUSTFLAGS"), m.Rustflags),
		Strip:       !c.NoStrip,
		SkipWindows: c.SkipWindows || m.Windows.Skipped(),
		Linux:       target.Linux.WithTriple(m.Linux.TripleOrDefault()),
		Windows:     target.Windows.WithTriple(m.Windows.TripleOrDefault()),
	}

	if c.Hermetic {
		builder, err := sandbox.New("")
		if err != nil {
			slog.Warn("sandbox unavailable, building on the host", "error", err)
		} else {
			defer builder.Close()
			opts.Hermetic = builder
		}
	}

	_, err = release.Run(ctx, opts)
	return err
}

// Returns the first non-empty value.
func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
