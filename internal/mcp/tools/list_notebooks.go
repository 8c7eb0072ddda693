package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

type ListNotebooksHandler struct {
	Service Service
}

func (h *ListNotebooksHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	notebooks, err := h.Service.ListNotebooks(ctx)
	if err != nil {
		return errorResult(err), nil
	}
	if len(notebooks) == 0 {
		return mcp.NewToolResultText("No notebooks found."), nil
	}

	if responseFormat(args) == formatJSON {
		return mcp.NewToolResultText(mustMarshalIndent(notebooks)), nil
	}
	return mcp.NewToolResultText(renderNotebookTree(notebooks)), nil
}
