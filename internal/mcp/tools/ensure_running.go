package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/joplin-mcp/internal/joplin"
)

// readyProbeWait bounds the quick readiness check when the desktop process
// is already present.
const readyProbeWait = 2 * time.Second

// Runtime is the probe/launch/readiness surface of the ensure-running tool;
// satisfied by joplin.Runtime.
type Runtime interface {
	IsRunning(ctx context.Context) bool
	Launch() bool
	WaitReady(ctx context.Context, timeout time.Duration) bool
	AutoLaunch() bool
}

type EnsureRunningHandler struct {
	Runtime Runtime
}

func (h *EnsureRunningHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.Runtime.IsRunning(ctx) && h.Runtime.WaitReady(ctx, readyProbeWait) {
		return mcp.NewToolResultText("Joplin is already running and API is ready."), nil
	}

	if !h.Runtime.AutoLaunch() {
		return mcp.NewToolResultText(
			"Joplin is not running and auto-launch is disabled. " +
				"Please start Joplin manually and enable Web Clipper."), nil
	}

	if !h.Runtime.Launch() {
		return mcp.NewToolResultText(
			"Failed to launch Joplin. Could not find Joplin executable. " +
				"Please start Joplin manually."), nil
	}

	if h.Runtime.WaitReady(ctx, joplin.ReadyTimeout) {
		return mcp.NewToolResultText("Joplin launched successfully and API is ready."), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		"Joplin was launched but API did not become ready within %s. "+
			"Please check that Web Clipper is enabled in Joplin (Tools -> Options -> Web Clipper).",
		joplin.ReadyTimeout)), nil
}
