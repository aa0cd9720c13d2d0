package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"datalab/internal/config"
	"datalab/internal/logbook"
	"datalab/internal/remote"
)

// Deps carries the shared dependencies every command needs
type Deps struct {
	Config *config.Config
	Client *remote.Client
	Book   *logbook.Book
}

// New builds the datalab command tree
func New(deps *Deps) *cobra.Command {
	root := &cobra.Command{
		Use:          "datalab",
		Short:        "datalab is a CLI for the financial-report data lab backend.",
		SilenceUsage: true,
	}

	root.AddCommand(
		newScrapeCmd(deps),
		newReportsCmd(deps),
		newStatementsCmd(deps),
		newStatsCmd(deps),
		newHealthCmd(deps),
	)
	return root
}

// ExecuteContext runs the command tree with the given context
func ExecuteContext(ctx context.Context, deps *Deps) error {
	return New(deps).ExecuteContext(ctx)
}

// requestContext bounds a single command's backend call
func requestContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
