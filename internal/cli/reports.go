package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"datalab/internal/remote"
	"datalab/internal/view"
)

func newReportsCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Queries and manages stored financial reports.",
	}
	cmd.AddCommand(
		newReportsListCmd(deps),
		newReportsGetCmd(deps),
		newReportsSymbolCmd(deps),
		newReportsDeleteCmd(deps),
		newReportsDeleteSymbolCmd(deps),
	)
	return cmd
}

func newReportsListCmd(deps *Deps) *cobra.Command {
	var filter remote.ReportFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lists stored reports, optionally filtered.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := requestContext(cmd.Context(), deps.Config.RequestTimeout)
			defer cancel()

			reports, err := deps.Client.ListReports(ctx, filter)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(reports) > 0 {
				fmt.Fprintln(out, view.ReportsTable(reports))
			}
			fmt.Fprintln(out, view.PageSummary(len(reports), filter.Offset))
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.Symbol, "symbol", "", "Filter by stock symbol.")
	cmd.Flags().StringVar(&filter.ReportType, "type", "", "Filter by report type (annual or quarterly).")
	cmd.Flags().IntVar(&filter.ReportYear, "year", 0, "Filter by report year.")
	cmd.Flags().IntVar(&filter.Limit, "limit", 0, "Maximum number of results (server default when omitted).")
	cmd.Flags().IntVar(&filter.Offset, "offset", 0, "Number of results to skip.")
	return cmd
}

func newReportsGetCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Shows a single report by ID.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reportID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid report ID %q", args[0])
			}

			ctx, cancel := requestContext(cmd.Context(), deps.Config.RequestTimeout)
			defer cancel()

			report, err := deps.Client.GetReport(ctx, reportID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, view.ReportsTable([]remote.Report{*report}))
			fmt.Fprintln(out, report.ReportURL)
			return nil
		},
	}
}

func newReportsSymbolCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "symbol SYMBOL",
		Short: "Lists all reports for a stock symbol.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := requestContext(cmd.Context(), deps.Config.RequestTimeout)
			defer cancel()

			reports, err := deps.Client.ReportsBySymbol(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(reports) > 0 {
				fmt.Fprintln(out, view.ReportsTable(reports))
			}
			fmt.Fprintln(out, view.PageSummary(len(reports), 0))
			return nil
		},
	}
}

func newReportsDeleteCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Deletes a single report by ID.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reportID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid report ID %q", args[0])
			}

			ctx, cancel := requestContext(cmd.Context(), deps.Config.RequestTimeout)
			defer cancel()

			result, err := deps.Client.DeleteReport(ctx, reportID)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		},
	}
}

func newReportsDeleteSymbolCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-symbol SYMBOL",
		Short: "Deletes all reports for a stock symbol.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := requestContext(cmd.Context(), deps.Config.RequestTimeout)
			defer cancel()

			result, err := deps.Client.DeleteReportsBySymbol(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		},
	}
}
