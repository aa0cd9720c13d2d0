package remote

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"resty.dev/v3"

	"datalab/internal/config"
	"datalab/internal/ratelimit"
)

// apiError mirrors the backend's error envelope. Detail is usually a string
// but can be a structured object for validation failures; only the string
// form carries a message we can show directly.
type apiError struct {
	Detail json.RawMessage `json:"detail"`
}

func (e *apiError) message() string {
	if len(e.Detail) == 0 {
		return ""
	}
	var detail string
	if err := json.Unmarshal(e.Detail, &detail); err != nil {
		return ""
	}
	return detail
}

// Client issues requests against the data lab backend. Every operation makes
// exactly one attempt and returns either decoded data or a *Error; no failure
// escapes as a panic or an un-normalized error.
type Client struct {
	http     *resty.Client
	resolver *config.Resolver
	limiter  *ratelimit.Limiter
}

// New creates a client bound to the shared base-address resolver
func New(resolver *config.Resolver, requestTimeout time.Duration) *Client {
	httpClient := resty.New().
		SetTimeout(requestTimeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:     httpClient,
		resolver: resolver,
		limiter:  ratelimit.GetLimiter(),
	}
}

// call describes one request against the backend
type call struct {
	op      ratelimit.Op
	method  string
	path    string // relative to the resolved base address
	root    bool   // address the unversioned server root instead
	query   map[string]string
	headers map[string]string // merged over the default JSON headers
	body    any
	out     any
}

// do issues the described call. It waits for the one-time base-address
// resolution to complete before building the URL, so every request observes
// the same resolved address.
func (c *Client) do(ctx context.Context, cl call) error {
	var (
		base string
		err  error
	)
	if cl.root {
		base, err = c.resolver.Root(ctx)
	} else {
		base, err = c.resolver.BaseURL(ctx)
	}
	if err != nil {
		return NewNetworkError(err)
	}

	if err := c.limiter.Wait(ctx, cl.op); err != nil {
		return NewNetworkError(err)
	}

	var serverErr apiError
	req := c.http.R().
		SetContext(ctx).
		SetError(&serverErr)

	if len(cl.query) > 0 {
		req.SetQueryParams(cl.query)
	}
	if len(cl.headers) > 0 {
		req.SetHeaders(cl.headers)
	}
	if cl.body != nil {
		req.SetBody(cl.body)
	}
	if cl.out != nil {
		req.SetResult(cl.out)
	}

	resp, err := req.Execute(cl.method, base+cl.path)
	if err != nil {
		// Raw transport/decode errors are only useful for diagnostics;
		// callers get the normalized form
		slog.Debug("request failed",
			"method", cl.method,
			"path", cl.path,
			"error", err)
		return NewNetworkError(err)
	}

	if !resp.IsSuccess() {
		return NewServerError(resp.StatusCode(), serverErr.message())
	}

	return nil
}
