package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/joplin-mcp/internal/joplin"
)

type ListNotesHandler struct {
	Service Service
}

func (h *ListNotesHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	orderBy := argString(args, "order_by")
	if orderBy == "" {
		orderBy = "updated_time"
	}

	notes, err := h.Service.ListNotes(ctx, joplin.ListNotesParams{
		NotebookID: argString(args, "notebook_id"),
		Limit:      argInt(args, "limit", 50, 1, 100),
		OrderBy:    orderBy,
		OrderDesc:  argBool(args, "order_desc", true),
	})
	if err != nil {
		return errorResult(err), nil
	}
	if len(notes) == 0 {
		return mcp.NewToolResultText("No notes found."), nil
	}

	if responseFormat(args) == formatJSON {
		return mcp.NewToolResultText(mustMarshalIndent(notes)), nil
	}

	header := []string{"# Joplin Notes", fmt.Sprintf("*Showing %d notes*", len(notes)), ""}
	return mcp.NewToolResultText(truncateResponse(renderNoteList(header, notes), len(notes))), nil
}
