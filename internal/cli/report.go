package cli

import (
	"context"

	"github.com/rtxlauncher/relkit/internal/paths"
	"github.com/rtxlauncher/relkit/internal/release"
)

// Represents the 'relkit report' command.
type ReportCmd struct {
	Root string `help:"Cargo workspace root." default:"." type:"existingdir"`
	Dist string `help:"Distribution directory. Defaults to <root>/dist." placeholder:"PATH"`
}

// Executes the report command.
func (c *ReportCmd) Run(ctx context.Context) error {
	dist := c.Dist
	if dist == "" {
		dist = paths.Dist(c.Root)
	}
	return release.Report(dist)
}
