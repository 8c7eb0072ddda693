package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/joplin-mcp/internal/joplin"
)

type UpdateNoteHandler struct {
	Service Service
}

func (h *UpdateNoteHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	noteID := argString(args, "note_id")
	if noteID == "" {
		return mcp.NewToolResultError("note_id parameter is required"), nil
	}

	var params joplin.UpdateNoteParams
	if value, ok := args["title"].(string); ok {
		params.Title = &value
	}
	if value, ok := args["body"].(string); ok {
		params.Body = &value
	}
	if value, ok := args["notebook_id"].(string); ok {
		params.NotebookID = &value
	}
	if value, ok := args["is_todo"].(bool); ok {
		params.IsTodo = &value
	}
	if value, ok := args["todo_completed"].(bool); ok {
		params.TodoCompleted = &value
	}

	note, err := h.Service.UpdateNote(ctx, noteID, params)
	if errors.Is(err, joplin.ErrNoFields) {
		return mcp.NewToolResultError("No fields to update. Provide at least one field to change."), nil
	}
	if err != nil {
		return errorResult(err), nil
	}

	title := note.Title
	if params.Title != nil {
		title = *params.Title
	}
	if title == "" {
		title = "Note"
	}
	return mcp.NewToolResultText(fmt.Sprintf("Updated note **%s** (ID: `%s`)", title, noteID)), nil
}
