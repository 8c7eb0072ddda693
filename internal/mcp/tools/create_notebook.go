package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

type CreateNotebookHandler struct {
	Service Service
}

func (h *CreateNotebookHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	title := argString(args, "title")
	if title == "" {
		return mcp.NewToolResultError("title parameter is required"), nil
	}

	notebook, created, err := h.Service.CreateNotebook(ctx, title, argString(args, "parent_id"))
	if err != nil {
		return errorResult(err), nil
	}
	if !created {
		return mcp.NewToolResultText(fmt.Sprintf(
			"Notebook **%s** already exists (ID: `%s`). Using existing notebook.",
			notebook.Title, notebook.ID)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf(
		"Created notebook **%s** (ID: `%s`)", notebook.Title, notebook.ID)), nil
}
