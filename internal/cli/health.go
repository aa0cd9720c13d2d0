package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Checks whether the backend is reachable and healthy.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := requestContext(cmd.Context(), deps.Config.RequestTimeout)
			defer cancel()

			health, err := deps.Client.Health(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s v%s: %s\n", health.App, health.Version, health.Status)
			return nil
		},
	}
}
