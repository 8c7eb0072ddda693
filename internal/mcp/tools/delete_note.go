package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

type DeleteNoteHandler struct {
	Service Service
}

func (h *DeleteNoteHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	noteID := argString(req.GetArguments(), "note_id")
	if noteID == "" {
		return mcp.NewToolResultError("note_id parameter is required"), nil
	}

	if err := h.Service.DeleteNote(ctx, noteID); err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Deleted note (ID: `%s`)", noteID)), nil
}
