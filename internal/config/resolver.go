package config

import (
	"context"
	"log/slog"
	"strings"

	"resty.dev/v3"
)

// apiPrefix is the versioned prefix the backend publishes as part of its
// base address. Endpoints like /health live above it.
const apiPrefix = "/api/v1"

// discoveryResponse is the payload served by the backend's config endpoint.
type discoveryResponse struct {
	APIBaseURL string `json:"apiBaseUrl"`
}

// Resolver owns the single shared base address used by every remote call.
//
// Construction starts exactly one asynchronous discovery attempt. Whatever
// the outcome, the ready channel closes permanently and the address never
// changes again: the write happens before the close, so every BaseURL caller
// observes the same resolved value without locking.
type Resolver struct {
	ready chan struct{}
	base  string // written once by the resolving goroutine before ready closes
}

// NewResolver creates a resolver seeded with the configured fallback address
// and kicks off the one-time discovery attempt in the background.
func NewResolver(cfg *Config) *Resolver {
	r := &Resolver{
		ready: make(chan struct{}),
		base:  strings.TrimRight(cfg.APIBaseURL, "/"),
	}
	go r.resolve(cfg)
	return r
}

// NewStatic returns a resolver that is immediately ready with the given
// address. No discovery attempt is made.
func NewStatic(base string) *Resolver {
	r := &Resolver{
		ready: make(chan struct{}),
		base:  strings.TrimRight(base, "/"),
	}
	close(r.ready)
	return r
}

// resolve performs the single discovery attempt. Any failure keeps the
// fallback address in place; the gate opens on every path.
func (r *Resolver) resolve(cfg *Config) {
	defer close(r.ready)

	if cfg.DiscoveryURL == "" {
		return
	}

	client := resty.New().
		SetTimeout(cfg.DiscoveryTimeout).
		SetHeader("Accept", "application/json")

	var discovered discoveryResponse
	resp, err := client.R().
		SetResult(&discovered).
		Get(cfg.DiscoveryURL)

	if err != nil {
		slog.Debug("base address discovery failed, keeping fallback",
			"discovery_url", cfg.DiscoveryURL,
			"fallback", r.base,
			"error", err)
		return
	}

	if !resp.IsSuccess() || discovered.APIBaseURL == "" {
		slog.Debug("base address discovery returned no usable address, keeping fallback",
			"discovery_url", cfg.DiscoveryURL,
			"status_code", resp.StatusCode(),
			"fallback", r.base)
		return
	}

	r.base = strings.TrimRight(discovered.APIBaseURL, "/")
	slog.Debug("resolved api base address", "base_url", r.base)
}

// BaseURL blocks until the one-time discovery attempt has finished, then
// returns the resolved base address. The discovery attempt carries its own
// timeout, so the wait is bounded even when the endpoint is unreachable.
func (r *Resolver) BaseURL(ctx context.Context) (string, error) {
	select {
	case <-r.ready:
		return r.base, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Root returns the unversioned server root, for endpoints that live outside
// the versioned API prefix.
func (r *Resolver) Root(ctx context.Context) (string, error) {
	base, err := r.BaseURL(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(base, apiPrefix), nil
}
