package joplin

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Ping issues a single short-timeout probe of the liveness endpoint.
func (c *Client) Ping(ctx context.Context) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("token", cfg.Token).
		Get(joinURL(cfg.BaseURL, "ping"))
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode(), Body: strings.TrimSpace(string(resp.Body()))}
	}
	return nil
}

// WaitReady polls the liveness endpoint until it answers successfully or
// the timeout elapses. Failures of any kind count as not-yet-ready; only
// the deadline ends the wait.
func (c *Client) WaitReady(ctx context.Context, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		err := c.Ping(ctx)
		if err == nil {
			return true
		}
		c.log.Debug("liveness probe failed", "error", err)
		select {
		case <-time.After(c.pollEvery):
		case <-ctx.Done():
			return false
		}
	}
	return false
}
