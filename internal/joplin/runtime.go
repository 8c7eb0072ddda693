package joplin

import (
	"context"
	"time"

	"github.com/roivaz/joplin-mcp/internal/config"
)

// Runtime couples the API client with the desktop probe and launcher for
// the ensure-running flow.
type Runtime struct {
	Desktop Desktop
	Client  *Client
}

func (r Runtime) IsRunning(ctx context.Context) bool { return r.Desktop.IsRunning(ctx) }

func (r Runtime) Launch() bool { return r.Desktop.Launch() }

func (r Runtime) WaitReady(ctx context.Context, timeout time.Duration) bool {
	return r.Client.WaitReady(ctx, timeout)
}

func (r Runtime) AutoLaunch() bool { return config.AutoLaunch() }
