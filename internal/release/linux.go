package release

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
)

// Produces the Linux artifact.
//
// The statically-linked target is attempted first, inside the hermetic
// sandbox when one is configured. On failure the build is retried for the
// host's default target; that second failure is fatal. Whichever expected
// output exists afterwards is copied into the distribution directory,
// preferring the static one, and stripped best-effort. No output from
// either attempt is fatal.
func (p *pipeline) buildLinux(ctx context.Context) error {
	slog.Info("building Linux target", "triple", p.linux.Triple)

	if err := p.buildLinuxStatic(ctx); err != nil {
		slog.Warn("static Linux build failed, falling back to host default target", "error", err)

		if err := p.cargo.Build(ctx, p.component, "", ""); err != nil {
			return fmt.Errorf("%w: fallback Linux build: %w", ErrBuild, err)
		}
	}

	src, ok := p.resolveLinuxOutput()
	if !ok {
		return fmt.Errorf("%w: checked %s and %s",
			ErrNoLinuxArtifact,
			p.linux.Output(p.root, p.component),
			p.linux.DefaultOutput(p.root, p.component),
		)
	}

	dest := filepath.Join(p.dist, p.linux.ArtifactName(p.component))
	if err := copyArtifact(src, dest); err != nil {
		return err
	}

	p.result.Linux = dest
	slog.Info("Linux artifact ready", "path", dest)

	p.stripArtifact(ctx, linuxStripper, dest)
	return nil
}

// Builds the statically-linked Linux target.
//
// When a hermetic builder is configured the build runs inside it; any
// sandbox failure falls back to a host build of the same triple before
// the caller falls back to the default target.
func (p *pipeline) buildLinuxStatic(ctx context.Context) error {
	if p.hermetic != nil {
		err := p.hermetic.Build(ctx, p.root, p.component, p.linux.Triple)
		if err == nil {
			return nil
		}
		slog.Warn("hermetic build failed, retrying on the host", "error", err)
	}

	return p.cargo.Build(ctx, p.component, p.linux.Triple, "")
}

// Picks the Linux build output to distribute.
//
// The static-target output is always preferred over the default-target
// output, regardless of whether both exist.
func (p *pipeline) resolveLinuxOutput() (string, bool) {
	static := p.linux.Output(p.root, p.component)
	if fileExists(static) {
		return static, true
	}

	fallback := p.linux.DefaultOutput(p.root, p.component)
	if fileExists(fallback) {
		return fallback, true
	}

	return "", false
}
