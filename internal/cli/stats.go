package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Shows aggregate statistics about the report database.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := requestContext(cmd.Context(), deps.Config.RequestTimeout)
			defer cancel()

			stats, err := deps.Client.Stats(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "total reports: %d\n", stats.TotalReports)
			fmt.Fprintf(out, "database: %s\n", stats.Database)
			return nil
		},
	}
}
