package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"datalab/internal/ratelimit"
)

// ReportFilter narrows ListReports. Zero-valued fields are omitted from the
// query string entirely rather than sent as empty values.
type ReportFilter struct {
	Symbol     string
	ReportType string // annual or quarterly
	ReportYear int
	Limit      int
	Offset     int
}

func (f ReportFilter) queryParams() map[string]string {
	params := make(map[string]string)
	if f.Symbol != "" {
		params["symbol"] = f.Symbol
	}
	if f.ReportType != "" {
		params["report_type"] = f.ReportType
	}
	if f.ReportYear != 0 {
		params["report_year"] = strconv.Itoa(f.ReportYear)
	}
	if f.Limit > 0 {
		params["limit"] = strconv.Itoa(f.Limit)
	}
	if f.Offset > 0 {
		params["offset"] = strconv.Itoa(f.Offset)
	}
	return params
}

// ListReports retrieves stored reports matching the filter
func (c *Client) ListReports(ctx context.Context, filter ReportFilter) ([]Report, error) {
	var reports []Report
	err := c.do(ctx, call{
		op:     ratelimit.OpQuery,
		method: http.MethodGet,
		path:   "/financial/reports",
		query:  filter.queryParams(),
		out:    &reports,
	})
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// GetReport retrieves a single report by ID
func (c *Client) GetReport(ctx context.Context, reportID int) (*Report, error) {
	var report Report
	err := c.do(ctx, call{
		op:     ratelimit.OpQuery,
		method: http.MethodGet,
		path:   fmt.Sprintf("/financial/reports/%d", reportID),
		out:    &report,
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// ReportsBySymbol retrieves all reports for a stock symbol
func (c *Client) ReportsBySymbol(ctx context.Context, symbol string) ([]Report, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return nil, NewValidationError("symbol cannot be empty")
	}

	var reports []Report
	err := c.do(ctx, call{
		op:     ratelimit.OpQuery,
		method: http.MethodGet,
		path:   "/financial/reports/symbol/" + url.PathEscape(symbol),
		out:    &reports,
	})
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// DeleteReport deletes a single report by ID
func (c *Client) DeleteReport(ctx context.Context, reportID int) (*DeleteResult, error) {
	var result DeleteResult
	err := c.do(ctx, call{
		op:     ratelimit.OpQuery,
		method: http.MethodDelete,
		path:   fmt.Sprintf("/financial/reports/%d", reportID),
		out:    &result,
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteReportsBySymbol deletes all reports for a stock symbol
func (c *Client) DeleteReportsBySymbol(ctx context.Context, symbol string) (*DeleteResult, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return nil, NewValidationError("symbol cannot be empty")
	}

	var result DeleteResult
	err := c.do(ctx, call{
		op:     ratelimit.OpQuery,
		method: http.MethodDelete,
		path:   "/financial/reports/symbol/" + url.PathEscape(symbol),
		out:    &result,
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Stats retrieves aggregate statistics about the report database
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	err := c.do(ctx, call{
		op:     ratelimit.OpQuery,
		method: http.MethodGet,
		path:   "/financial/stats",
		out:    &stats,
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Health checks the backend's health endpoint, which lives at the server
// root rather than under the versioned API prefix
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var health Health
	err := c.do(ctx, call{
		op:     ratelimit.OpQuery,
		method: http.MethodGet,
		path:   "/health",
		root:   true,
		out:    &health,
	})
	if err != nil {
		return nil, err
	}
	return &health, nil
}
