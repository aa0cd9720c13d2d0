package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"datalab/internal/scrape"
	"datalab/internal/view"
)

func newScrapeCmd(deps *Deps) *cobra.Command {
	var (
		source   string
		headless bool
	)

	defaultHeadless := true
	if deps.Config != nil {
		defaultHeadless = deps.Config.Headless
	}

	cmd := &cobra.Command{
		Use:   "scrape SYMBOL...",
		Short: "Scrapes financial reports for one or more stock symbols.",
		Long: `Scrapes financial reports for one or more stock symbols.

A single symbol triggers one scrape call; multiple symbols are sent as one
bulk run and the backend reports a sub-result per symbol. Progress is shown
as a console log with running counters.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := scrape.ParseSource(source)
			if err != nil {
				return err
			}

			targets := make([]scrape.Target, 0, len(args))
			for _, symbol := range args {
				target, err := scrape.NewTarget(symbol, src)
				if err != nil {
					return err
				}
				targets = append(targets, target)
			}

			orchestrator := scrape.New(deps.Client, deps.Book, headless)
			runErr := orchestrator.Start(cmd.Context(), targets)

			out := cmd.OutOrStdout()
			for _, entry := range deps.Book.Entries() {
				fmt.Fprintln(out, view.LogLine(entry))
			}
			fmt.Fprintln(out, view.CounterSummary(deps.Book.Counters()))

			return runErr
		},
	}

	cmd.Flags().StringVar(&source, "source", string(scrape.SourceCafeF),
		"Report source to scrape from (cafef).")
	cmd.Flags().BoolVar(&headless, "headless", defaultHeadless,
		"Run the backend's scraping browser in headless mode.")
	return cmd
}
