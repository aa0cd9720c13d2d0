package remote

import (
	"context"
	"net/http"
	"strings"

	"datalab/internal/ratelimit"
)

// scrapeRequest is the body for a single-symbol scrape trigger
type scrapeRequest struct {
	Symbol   string `json:"symbol"`
	Headless bool   `json:"headless"`
}

// bulkScrapeRequest is the body for a bulk scrape trigger
type bulkScrapeRequest struct {
	Symbols  []string `json:"symbols"`
	Headless bool     `json:"headless"`
}

// ScrapeSymbol triggers a scrape run for one stock symbol and waits for its
// result. Scraping drives a browser on the backend, so this call can take a
// while; the context bounds the wait.
func (c *Client) ScrapeSymbol(ctx context.Context, symbol string, headless bool) (*ScrapeResult, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return nil, NewValidationError("symbol cannot be empty")
	}

	var result ScrapeResult
	err := c.do(ctx, call{
		op:     ratelimit.OpScrape,
		method: http.MethodPost,
		path:   "/scrapper/scrape",
		body:   scrapeRequest{Symbol: symbol, Headless: headless},
		out:    &result,
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ScrapeBulk triggers one scrape run covering all given symbols. The backend
// processes them sequentially and reports per-symbol sub-results in its own
// processing order.
func (c *Client) ScrapeBulk(ctx context.Context, symbols []string, headless bool) (*BulkScrapeResult, error) {
	if len(symbols) == 0 {
		return nil, NewValidationError("symbols list cannot be empty")
	}

	var result BulkScrapeResult
	err := c.do(ctx, call{
		op:     ratelimit.OpScrape,
		method: http.MethodPost,
		path:   "/scrapper/scrape-bulk",
		body:   bulkScrapeRequest{Symbols: symbols, Headless: headless},
		out:    &result,
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
