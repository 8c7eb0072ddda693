// Package joplin implements the client side of the Joplin Data API: the
// authenticated HTTP client with its auto-launch retry, the paginated list
// aggregator, the readiness wait and the note/notebook/tag operations built
// on top of them.
package joplin

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/roivaz/joplin-mcp/internal/logging"
)

// Desktop abstracts the probe-and-launch pair the client falls back to when
// the service is unreachable.
type Desktop interface {
	IsRunning(ctx context.Context) bool
	Launch() bool
}

// Client issues authenticated requests against the local Joplin Data API,
// launching the desktop application and retrying once when the service
// cannot be reached.
type Client struct {
	http       *resty.Client
	desktop    Desktop
	loadConfig func() (Config, error)
	launchWait time.Duration
	pollEvery  time.Duration
	log        logging.Logger
}

type Option func(*Client)

// WithConfigLoader overrides how per-call configuration is resolved.
func WithConfigLoader(load func() (Config, error)) Option {
	return func(c *Client) { c.loadConfig = load }
}

// WithLaunchWait overrides the grace period between a launch and the retry.
func WithLaunchWait(d time.Duration) Option {
	return func(c *Client) { c.launchWait = d }
}

// WithPollInterval overrides the readiness poll cadence.
func WithPollInterval(d time.Duration) Option {
	return func(c *Client) { c.pollEvery = d }
}

func NewClient(desktop Desktop, log logging.Logger, opts ...Option) *Client {
	c := &Client{
		http:       resty.New().SetTimeout(requestTimeout),
		desktop:    desktop,
		loadConfig: LoadConfig,
		launchWait: launchWait,
		pollEvery:  readyPollInterval,
		log:        log.WithName("joplin.client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request performs one API call. A 204 or empty body yields a zero
// gjson.Result; any other 2xx yields the parsed body; a non-2xx status
// returns an *APIError. On a connect failure with auto-launch enabled and
// the app not detected as running, the desktop application is launched and
// the identical request retried exactly once after a short grace period;
// every other error propagates unchanged.
func (c *Client) Request(ctx context.Context, method, endpoint string, body any, query url.Values) (gjson.Result, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return gjson.Result{}, err
	}

	for attempt := 0; ; attempt++ {
		result, err := c.do(ctx, cfg, method, endpoint, body, query)
		if err == nil {
			return result, nil
		}
		if !IsConnectFailure(err) || !cfg.AutoLaunch || attempt >= maxLaunchRetries {
			return gjson.Result{}, err
		}
		if c.desktop.IsRunning(ctx) || !c.desktop.Launch() {
			return gjson.Result{}, err
		}
		c.log.Info("launched desktop application, retrying request", "endpoint", endpoint)
		select {
		case <-time.After(c.launchWait):
		case <-ctx.Done():
			return gjson.Result{}, ctx.Err()
		}
	}
}

func (c *Client) do(ctx context.Context, cfg Config, method, endpoint string, body any, query url.Values) (gjson.Result, error) {
	req := c.http.R().SetContext(ctx)
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}
	// The token travels as a query parameter on every request, never in
	// the body.
	req.SetQueryParam("token", cfg.Token)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, joinURL(cfg.BaseURL, endpoint))
	if err != nil {
		return gjson.Result{}, err
	}

	code := resp.StatusCode()
	if code < 200 || code > 299 {
		return gjson.Result{}, &APIError{StatusCode: code, Body: strings.TrimSpace(string(resp.Body()))}
	}
	if len(resp.Body()) == 0 {
		return gjson.Result{}, nil
	}
	return gjson.ParseBytes(resp.Body()), nil
}

func joinURL(base, endpoint string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(endpoint, "/")
}
