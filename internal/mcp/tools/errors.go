package tools

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/joplin-mcp/internal/config"
	"github.com/roivaz/joplin-mcp/internal/joplin"
)

// errorResult converts a service error into the textual message the tool
// returns. Raw errors never cross the tool boundary.
func errorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultText(userFacingError(err, config.AutoLaunch()))
}

func userFacingError(err error, autoLaunch bool) string {
	if joplin.IsConnectFailure(err) {
		note := "\n\nTip: Set JOPLIN_AUTO_LAUNCH=true to auto-start Joplin."
		if autoLaunch {
			note = "\n\nNote: Auto-launch was attempted but Joplin may not have started in time."
		}
		return "Error: Cannot connect to Joplin. Make sure:\n" +
			"1. Joplin desktop is running\n" +
			"2. Web Clipper service is enabled (Tools -> Options -> Web Clipper)\n" +
			fmt.Sprintf("3. The API port matches JOPLIN_PORT (default: %d)", config.DefaultPort) +
			note
	}

	var apiErr *joplin.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return "Error: Invalid API token. Check JOPLIN_TOKEN is correct."
		case http.StatusNotFound:
			return "Error: Resource not found. Check the ID is correct."
		}
	}

	if joplin.IsTimeout(err) {
		return "Error: Request timed out. Joplin may be busy or unresponsive."
	}

	return "Error: " + err.Error()
}
