package ratelimit

import (
	"context"
	"os"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Op represents the classes of backend operations we rate limit separately
type Op string

const (
	// OpScrape represents scrape triggers, which start a browser session
	// on the backend and are by far the most expensive calls
	OpScrape Op = "scrape"
	// OpQuery represents read/delete operations against stored reports
	OpQuery Op = "query"
)

// Limiter manages rate limits for the different operation classes
type Limiter struct {
	limiters map[Op]*rate.Limiter
	mu       sync.RWMutex
}

var (
	instance *Limiter
	once     sync.Once
)

// GetLimiter returns the singleton rate limiter instance
func GetLimiter() *Limiter {
	once.Do(func() {
		instance = &Limiter{
			limiters: make(map[Op]*rate.Limiter),
		}
		instance.initLimiters()
	})
	return instance
}

// initLimiters initializes rate limiters for each operation class with conservative defaults
func (l *Limiter) initLimiters() {
	// In test mode, use unlimited rate limits to avoid slowing down tests
	if os.Getenv("GO_TESTING") == "1" || isTestMode() {
		l.limiters[OpScrape] = rate.NewLimiter(rate.Inf, 1)
		l.limiters[OpQuery] = rate.NewLimiter(rate.Inf, 1)
		return
	}

	// Scraping drives a headless browser on the backend; one trigger
	// every two seconds is plenty for an interactive client
	l.limiters[OpScrape] = rate.NewLimiter(rate.Every(2*time.Second), 1)

	// Queries are cheap database reads
	l.limiters[OpQuery] = rate.NewLimiter(rate.Limit(10), 1)
}

// isTestMode checks if we're running in test mode
func isTestMode() bool {
	for _, arg := range os.Args {
		if len(arg) > 6 && arg[:6] == "-test." {
			return true
		}
	}
	return false
}

// Wait blocks until the rate limiter permits an event for the given operation class
// It returns an error if the context is canceled before the event can proceed
func (l *Limiter) Wait(ctx context.Context, op Op) error {
	l.mu.RLock()
	limiter, exists := l.limiters[op]
	l.mu.RUnlock()

	if !exists {
		// If no limiter exists for this class, allow the request without limiting
		return nil
	}

	return limiter.Wait(ctx)
}

// Allow reports whether an event for the given operation class may happen now
func (l *Limiter) Allow(op Op) bool {
	l.mu.RLock()
	limiter, exists := l.limiters[op]
	l.mu.RUnlock()

	if !exists {
		return true
	}

	return limiter.Allow()
}
