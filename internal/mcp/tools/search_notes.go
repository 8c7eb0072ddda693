package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

type SearchNotesHandler struct {
	Service Service
}

func (h *SearchNotesHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	query := argString(args, "query")
	if query == "" {
		return mcp.NewToolResultError("query parameter is required"), nil
	}
	limit := argInt(args, "limit", 20, 1, 100)

	notes, err := h.Service.SearchNotes(ctx, query, limit)
	if err != nil {
		return errorResult(err), nil
	}
	if len(notes) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No notes found matching '%s'.", query)), nil
	}

	if responseFormat(args) == formatJSON {
		return mcp.NewToolResultText(mustMarshalIndent(notes)), nil
	}

	header := []string{
		fmt.Sprintf("# Search Results: '%s'", query),
		fmt.Sprintf("*Found %d notes*", len(notes)),
		"",
	}
	return mcp.NewToolResultText(truncateResponse(renderNoteList(header, notes), len(notes))), nil
}
