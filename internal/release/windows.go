package release

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/rtxlauncher/relkit/internal/toolchain"
)

// Produces the Windows artifact, best-effort.
//
// Static C-runtime linkage is requested by appending to the inherited
// RUSTFLAGS value, never replacing it. Build failures are always
// tolerated; the cross-compiler probe only selects the warning wording.
// A missing output is reported as an error but does not fail the run.
func (p *pipeline) buildWindows(ctx context.Context) {
	slog.Info("building Windows target", "triple", p.windows.Triple)

	switch p.probe(windowsCompiler) {
	case toolchain.ToolPresent:
	case toolchain.ToolAbsent:
		slog.Warn("cross compiler not found, attempting Windows build anyway", "compiler", windowsCompiler)
	default:
		slog.Warn("could not determine cross compiler availability", "compiler", windowsCompiler)
	}

	rustflags := toolchain.WithCRTStatic(p.rustflags)
	if err := p.cargo.Build(ctx, p.component, p.windows.Triple, rustflags); err != nil {
		slog.Warn("Windows build failed", "error", err)
	}

	src := p.windows.Output(p.root, p.component)
	if !fileExists(src) {
		slog.Error("Windows binary not found", "path", src)
		return
	}

	dest := filepath.Join(p.dist, p.windows.ArtifactName(p.component))
	if err := copyArtifact(src, dest); err != nil {
		slog.Error("failed to place Windows artifact", "error", err)
		return
	}

	p.result.Windows = dest
	slog.Info("Windows artifact ready", "path", dest)

	p.stripArtifact(ctx, windowsStripper, dest)
}
