package remote

// Report types as stored by the backend.
const (
	ReportTypeAnnual    = "annual"
	ReportTypeQuarterly = "quarterly"
)

// Report represents a stored financial report
type Report struct {
	ID            int    `json:"id"`
	Symbol        string `json:"symbol"`
	CompanyName   string `json:"company_name"`
	ReportName    string `json:"report_name"`
	ReportType    string `json:"report_type"`
	ReportYear    int    `json:"report_year"`
	ReportQuarter *int   `json:"report_quarter"` // nil for annual reports
	IsAudited     bool   `json:"is_audited"`
	IsReviewed    bool   `json:"is_reviewed"`
	ReportURL     string `json:"report_url"`
}

// ScrapeResult represents the backend's response for a single-symbol scrape.
// It doubles as the per-symbol sub-result inside a bulk response.
type ScrapeResult struct {
	Success      bool     `json:"success"`
	Message      string   `json:"message"`
	Symbol       string   `json:"symbol"`
	ReportsCount int      `json:"reports_count"`
	CreatedCount int      `json:"created_count"`
	UpdatedCount int      `json:"updated_count"`
	Reports      []Report `json:"reports,omitempty"`
}

// BulkScrapeResult represents the backend's response for a bulk scrape.
// Results preserve the server's processing order.
type BulkScrapeResult struct {
	Success           bool           `json:"success"`
	Message           string         `json:"message"`
	TotalSymbols      int            `json:"total_symbols"`
	SuccessfulSymbols int            `json:"successful_symbols"`
	FailedSymbols     int            `json:"failed_symbols"`
	TotalReports      int            `json:"total_reports"`
	TotalCreated      int            `json:"total_created"`
	TotalUpdated      int            `json:"total_updated"`
	Results           []ScrapeResult `json:"results,omitempty"`
}

// StatementItem represents a single line item of a financial statement
// (balance sheet, income statement or cash flow statement)
type StatementItem struct {
	ID           int     `json:"id"`
	ReportID     int     `json:"report_id"`
	ItemName     string  `json:"item_name"`
	ItemCode     *string `json:"item_code"`
	ItemValue    int64   `json:"item_value"`
	Sign         int     `json:"sign"` // 1 or -1
	Level        int     `json:"level"`
	ItemDisplay  int     `json:"item_display"`
	ParentItemID *string `json:"parent_item_id"`
}

// Stats represents aggregate statistics about the report database
type Stats struct {
	TotalReports int    `json:"total_reports"`
	Database     string `json:"database"`
}

// Health represents the backend's health check response
type Health struct {
	Status  string `json:"status"`
	App     string `json:"app"`
	Version string `json:"version"`
}

// DeleteResult represents the backend's response to a delete operation
type DeleteResult struct {
	Message      string `json:"message"`
	DeletedCount int    `json:"deleted_count,omitempty"`
}
