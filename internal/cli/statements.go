package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"datalab/internal/remote"
	"datalab/internal/view"
)

func newStatementsCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "statements",
		Short: "Shows financial statement line items for a report.",
	}
	cmd.AddCommand(
		newStatementCmd(deps, "balance", "Shows the balance sheet of a report.", remote.StatementBalanceSheet),
		newStatementCmd(deps, "income", "Shows the income statement of a report.", remote.StatementIncomeStatement),
		newStatementCmd(deps, "cashflow", "Shows the cash flow statement of a report.", remote.StatementCashFlow),
	)
	return cmd
}

func newStatementCmd(deps *Deps, use, short string, statement remote.Statement) *cobra.Command {
	return &cobra.Command{
		Use:   use + " REPORT_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reportID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid report ID %q", args[0])
			}

			ctx, cancel := requestContext(cmd.Context(), deps.Config.RequestTimeout)
			defer cancel()

			items, err := deps.Client.StatementItems(ctx, reportID, statement)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintf(out, "no %s items for report %d\n", statement, reportID)
				return nil
			}
			fmt.Fprintln(out, view.StatementTable(items))
			return nil
		},
	}
}
