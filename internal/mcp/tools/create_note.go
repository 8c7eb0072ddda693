package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roivaz/joplin-mcp/internal/joplin"
)

type CreateNoteHandler struct {
	Service Service
}

func (h *CreateNoteHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	title := argString(args, "title")
	if title == "" {
		return mcp.NewToolResultError("title parameter is required"), nil
	}

	params := joplin.CreateNoteParams{
		Title:      title,
		Body:       argString(args, "body"),
		NotebookID: argString(args, "notebook_id"),
		Tags:       argStringSlice(args, "tags"),
		IsTodo:     argBool(args, "is_todo", false),
	}

	note, applied, err := h.Service.CreateNote(ctx, params)
	if err != nil {
		return errorResult(err), nil
	}

	kind := "note"
	if params.IsTodo {
		kind = "to-do"
	}
	message := fmt.Sprintf("Created %s **%s** (ID: `%s`)", kind, note.Title, note.ID)
	if len(params.Tags) > 0 && applied < len(params.Tags) {
		message += fmt.Sprintf("\nApplied %d of %d tags.", applied, len(params.Tags))
	}
	return mcp.NewToolResultText(message), nil
}
