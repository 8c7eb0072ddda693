package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

type GetNoteHandler struct {
	Service Service
}

func (h *GetNoteHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	noteID := argString(args, "note_id")
	if noteID == "" {
		return mcp.NewToolResultError("note_id parameter is required"), nil
	}
	includeBody := argBool(args, "include_body", true)

	note, err := h.Service.GetNote(ctx, noteID, includeBody)
	if err != nil {
		return errorResult(err), nil
	}

	if responseFormat(args) == formatJSON {
		return mcp.NewToolResultText(mustMarshalIndent(note)), nil
	}
	return mcp.NewToolResultText(renderNote(note, includeBody)), nil
}
