package testutil

import (
	"context"
	"sync/atomic"

	"datalab/internal/remote"
)

// MockBackend is a mock implementation of the scrape.Backend interface for testing
type MockBackend struct {
	ScrapeSymbolFunc func(ctx context.Context, symbol string, headless bool) (*remote.ScrapeResult, error)
	ScrapeBulkFunc   func(ctx context.Context, symbols []string, headless bool) (*remote.BulkScrapeResult, error)

	// Calls counts every network-facing invocation across both methods
	Calls atomic.Int64
}

// ScrapeSymbol implements the scrape.Backend interface
func (m *MockBackend) ScrapeSymbol(ctx context.Context, symbol string, headless bool) (*remote.ScrapeResult, error) {
	m.Calls.Add(1)
	if m.ScrapeSymbolFunc != nil {
		return m.ScrapeSymbolFunc(ctx, symbol, headless)
	}
	return &remote.ScrapeResult{Success: true, Symbol: symbol}, nil
}

// ScrapeBulk implements the scrape.Backend interface
func (m *MockBackend) ScrapeBulk(ctx context.Context, symbols []string, headless bool) (*remote.BulkScrapeResult, error) {
	m.Calls.Add(1)
	if m.ScrapeBulkFunc != nil {
		return m.ScrapeBulkFunc(ctx, symbols, headless)
	}
	return &remote.BulkScrapeResult{
		Success:           true,
		TotalSymbols:      len(symbols),
		SuccessfulSymbols: len(symbols),
	}, nil
}
