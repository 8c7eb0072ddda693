package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

type ListTagsHandler struct {
	Service Service
}

func (h *ListTagsHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	tags, err := h.Service.ListTags(ctx)
	if err != nil {
		return errorResult(err), nil
	}
	if len(tags) == 0 {
		return mcp.NewToolResultText("No tags found."), nil
	}

	if responseFormat(args) == formatJSON {
		return mcp.NewToolResultText(mustMarshalIndent(tags)), nil
	}
	return mcp.NewToolResultText(renderTags(tags)), nil
}
