package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

type TagNoteHandler struct {
	Service Service
}

func (h *TagNoteHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	noteID := argString(args, "note_id")
	if noteID == "" {
		return mcp.NewToolResultError("note_id parameter is required"), nil
	}
	tag := argString(args, "tag")
	if tag == "" {
		return mcp.NewToolResultError("tag parameter is required"), nil
	}

	if err := h.Service.TagNote(ctx, noteID, tag); err != nil {
		return errorResult(err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Added tag **%s** to note `%s`", tag, noteID)), nil
}
