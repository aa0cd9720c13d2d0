// Package view holds pure rendering helpers that map fetched records to
// display structures. Nothing here talks to the network.
package view

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"datalab/internal/logbook"
	"datalab/internal/remote"
)

var (
	titleCaser    = cases.Title(language.English)
	numberPrinter = message.NewPrinter(language.English)
)

// newTable returns a writer with the house table style
func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	return t
}

// CompanyTitle normalizes a scraped company name for display. Source pages
// deliver names in inconsistent casing, often all-caps.
func CompanyTitle(name string) string {
	return titleCaser.String(strings.ToLower(strings.TrimSpace(name)))
}

// PeriodLabel renders the reporting period of a report
func PeriodLabel(report remote.Report) string {
	if report.ReportType == remote.ReportTypeQuarterly && report.ReportQuarter != nil {
		return fmt.Sprintf("Q%d %d", *report.ReportQuarter, report.ReportYear)
	}
	return fmt.Sprintf("FY %d", report.ReportYear)
}

// auditLabel summarizes a report's audit status
func auditLabel(report remote.Report) string {
	switch {
	case report.IsAudited:
		return "audited"
	case report.IsReviewed:
		return "reviewed"
	default:
		return "-"
	}
}

// ReportsTable renders stored reports as a table
func ReportsTable(reports []remote.Report) string {
	t := newTable()
	t.AppendHeader(table.Row{"ID", "Symbol", "Company", "Report", "Period", "Status"})
	for _, report := range reports {
		t.AppendRow(table.Row{
			report.ID,
			report.Symbol,
			CompanyTitle(report.CompanyName),
			report.ReportName,
			PeriodLabel(report),
			auditLabel(report),
		})
	}
	return t.Render()
}

// ItemValue renders a statement line value with its sign applied and
// thousands grouping
func ItemValue(item remote.StatementItem) string {
	return numberPrinter.Sprintf("%d", item.ItemValue*int64(item.Sign))
}

// StatementTable renders statement line items as a table, ordered by their
// display position and indented by hierarchy level
func StatementTable(items []remote.StatementItem) string {
	ordered := make([]remote.StatementItem, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ItemDisplay < ordered[j].ItemDisplay
	})

	t := newTable()
	t.AppendHeader(table.Row{"Code", "Item", "Value"})
	for _, item := range ordered {
		code := "-"
		if item.ItemCode != nil && *item.ItemCode != "" {
			code = *item.ItemCode
		}
		indent := ""
		if item.Level > 1 {
			indent = strings.Repeat("  ", item.Level-1)
		}
		t.AppendRow(table.Row{code, indent + item.ItemName, ItemValue(item)})
	}
	return t.Render()
}

// PageSummary renders a pagination footer for a listing
func PageSummary(shown, offset int) string {
	if shown == 0 {
		return "no reports found"
	}
	return fmt.Sprintf("showing reports %d-%d", offset+1, offset+shown)
}

// LogLine renders one logbook entry as a console line
func LogLine(entry logbook.Entry) string {
	return fmt.Sprintf("%s [%s] %s",
		entry.Time.Format("15:04:05"),
		strings.ToUpper(string(entry.Kind)),
		entry.Message)
}

// CounterSummary renders the logbook counters
func CounterSummary(c logbook.Counters) string {
	return fmt.Sprintf("%d entries: %d succeeded, %d failed", c.Total, c.Success, c.Errors)
}
