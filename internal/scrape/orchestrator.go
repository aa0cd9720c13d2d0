package scrape

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"datalab/internal/logbook"
	"datalab/internal/remote"
)

// Source identifies where financial reports are scraped from
type Source string

const (
	// SourceCafeF is the only source the backend can scrape today
	SourceCafeF Source = "cafef"
	// SourceVietstock is recognized in target lists but not yet supported
	SourceVietstock Source = "vietstock"
)

// ParseSource validates a raw source name
func ParseSource(raw string) (Source, error) {
	switch Source(strings.ToLower(strings.TrimSpace(raw))) {
	case SourceCafeF:
		return SourceCafeF, nil
	case SourceVietstock:
		return SourceVietstock, nil
	}
	return "", fmt.Errorf("unknown source %q", raw)
}

// Target pairs a stock symbol with the source it should be scraped from
type Target struct {
	Symbol string
	Source Source
}

// NewTarget normalizes the symbol and validates it is not empty
func NewTarget(symbol string, source Source) (Target, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return Target{}, remote.NewValidationError("symbol cannot be empty")
	}
	return Target{Symbol: symbol, Source: source}, nil
}

// Backend is the slice of the remote facade the orchestrator drives
type Backend interface {
	ScrapeSymbol(ctx context.Context, symbol string, headless bool) (*remote.ScrapeResult, error)
	ScrapeBulk(ctx context.Context, symbols []string, headless bool) (*remote.BulkScrapeResult, error)
}

// Recorder receives the orchestrator's console lines. *logbook.Book satisfies it.
type Recorder interface {
	Append(kind logbook.Kind, message string)
}

// Orchestrator drives scrape runs against the backend. It moves between idle
// and scraping; exactly one run is in flight at a time and every completion,
// success or failure, returns it to idle.
type Orchestrator struct {
	backend  Backend
	log      Recorder
	headless bool

	mu      sync.Mutex
	running bool
}

// New creates an orchestrator writing its progress to log
func New(backend Backend, log Recorder, headless bool) *Orchestrator {
	return &Orchestrator{
		backend:  backend,
		log:      log,
		headless: headless,
	}
}

// Running reports whether a scrape run is in flight
func (o *Orchestrator) Running() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.running
}

// Stop flips the orchestrator back to idle so controls re-enable. It does
// not cancel the in-flight request; there is no cancellation primitive for a
// scrape the backend has already started, and any result that arrives later
// is still logged.
func (o *Orchestrator) Stop() {
	o.mu.Lock()
	wasRunning := o.running
	o.running = false
	o.mu.Unlock()

	if wasRunning {
		o.log.Append(logbook.KindWarning, "stop requested: the current scrape still runs to completion on the server")
	}
}

// Start validates the targets and runs one scrape orchestration to
// completion. Validation failures are logged and returned before any network
// call is issued. A second Start while one is running is rejected.
func (o *Orchestrator) Start(ctx context.Context, targets []Target) error {
	if err := validateTargets(targets); err != nil {
		o.log.Append(logbook.KindError, remote.FailureMessage(err))
		return err
	}

	o.mu.Lock()
	if o.running {
		o.mu.Unlock()
		err := remote.NewValidationError("a scrape run is already in progress")
		o.log.Append(logbook.KindWarning, err.Message)
		return err
	}
	o.running = true
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		o.running = false
		o.mu.Unlock()
	}()

	if len(targets) == 1 {
		return o.runSingle(ctx, targets[0])
	}
	return o.runBulk(ctx, targets)
}

// validateTargets rejects empty target lists and any target whose source the
// backend cannot scrape, naming each unsupported source once.
func validateTargets(targets []Target) error {
	if len(targets) == 0 {
		return remote.NewValidationError("no symbols selected for scraping")
	}

	var unsupported []string
	seen := make(map[Source]bool)
	for _, target := range targets {
		if target.Source == SourceCafeF || seen[target.Source] {
			continue
		}
		seen[target.Source] = true
		unsupported = append(unsupported, string(target.Source))
	}

	if len(unsupported) > 0 {
		return remote.NewValidationError(fmt.Sprintf(
			"unsupported source(s): %s", strings.Join(unsupported, ", ")))
	}
	return nil
}

func (o *Orchestrator) runSingle(ctx context.Context, target Target) error {
	o.log.Append(logbook.KindInfo, fmt.Sprintf("scraping %s from %s", target.Symbol, target.Source))

	result, err := o.backend.ScrapeSymbol(ctx, target.Symbol, o.headless)
	if err != nil {
		o.log.Append(logbook.KindError, fmt.Sprintf("%s: %s", target.Symbol, remote.FailureMessage(err)))
		return err
	}

	o.logResult(*result)
	return nil
}

func (o *Orchestrator) runBulk(ctx context.Context, targets []Target) error {
	symbols := make([]string, len(targets))
	for i, target := range targets {
		symbols[i] = target.Symbol
	}
	o.log.Append(logbook.KindInfo, fmt.Sprintf(
		"scraping %d symbols: %s", len(symbols), strings.Join(symbols, ", ")))

	result, err := o.backend.ScrapeBulk(ctx, symbols, o.headless)
	if err != nil {
		o.log.Append(logbook.KindError, "bulk scrape failed: "+remote.FailureMessage(err))
		return err
	}

	// Per-symbol lines preserve the server's processing order
	for _, sub := range result.Results {
		o.logResult(sub)
	}

	summaryKind := logbook.KindSuccess
	if result.SuccessfulSymbols < result.TotalSymbols {
		summaryKind = logbook.KindWarning
	}
	o.log.Append(summaryKind, fmt.Sprintf(
		"bulk scrape finished: %d/%d symbols succeeded, %d reports (%d created, %d updated)",
		result.SuccessfulSymbols, result.TotalSymbols,
		result.TotalReports, result.TotalCreated, result.TotalUpdated))
	return nil
}

// logResult writes one console line for a per-symbol scrape result
func (o *Orchestrator) logResult(result remote.ScrapeResult) {
	if !result.Success {
		o.log.Append(logbook.KindError, fmt.Sprintf("%s: %s", result.Symbol, result.Message))
		return
	}
	o.log.Append(logbook.KindSuccess, fmt.Sprintf(
		"%s: %d reports (%d created, %d updated)",
		result.Symbol, result.ReportsCount, result.CreatedCount, result.UpdatedCount))
}
