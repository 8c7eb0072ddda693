package mcp

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		"joplin-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Register tools with their proper schemas using mcp-go builder pattern
	toolDefinitions := map[string]mcp.Tool{
		"joplin_ensure_running": mcp.NewTool("joplin_ensure_running",
			mcp.WithDescription("Ensure the Joplin API is ready. Launches Joplin if needed and waits for the connection. Use proactively before batch operations to avoid cold-start delays; returns immediately if already running."),
		),
		"joplin_list_notebooks": mcp.NewTool("joplin_list_notebooks",
			mcp.WithDescription("List notebooks with IDs and hierarchy. Use to find notebook_id for filtering. Always list notebooks before creating new ones to avoid duplicates."),
			mcp.WithString("response_format",
				mcp.Description("Output format (default: markdown)"),
				mcp.Enum("markdown", "json"),
			),
		),
		"joplin_create_notebook": mcp.NewTool("joplin_create_notebook",
			mcp.WithDescription("Create a notebook or return the existing one. Checks for an existing sibling with the same title first and returns its ID instead of creating a duplicate."),
			mcp.WithString("title",
				mcp.Required(),
				mcp.Description("Notebook title"),
			),
			mcp.WithString("parent_id",
				mcp.Description("Parent notebook ID for creating a sub-notebook"),
			),
		),
		"joplin_list_notes": mcp.NewTool("joplin_list_notes",
			mcp.WithDescription("List notes with IDs, titles and dates. Filter by notebook_id, sort by date or title. Returns metadata only; use joplin_get_note for full content."),
			mcp.WithString("notebook_id",
				mcp.Description("Filter by notebook ID. If not set, lists all notes."),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum notes to return (default: 50, max: 100)"),
			),
			mcp.WithString("order_by",
				mcp.Description("Field to sort by (default: updated_time)"),
				mcp.Enum("updated_time", "created_time", "title", "order"),
			),
			mcp.WithBoolean("order_desc",
				mcp.Description("Sort descending, newest first (default: true)"),
			),
			mcp.WithString("response_format",
				mcp.Description("Output format (default: markdown)"),
				mcp.Enum("markdown", "json"),
			),
		),
		"joplin_get_note": mcp.NewTool("joplin_get_note",
			mcp.WithDescription("Get a note by ID with its full Markdown content, including metadata and body. Set include_body=false for metadata only."),
			mcp.WithString("note_id",
				mcp.Required(),
				mcp.Description("The note ID"),
			),
			mcp.WithBoolean("include_body",
				mcp.Description("Include the full note body (default: true)"),
			),
			mcp.WithString("response_format",
				mcp.Description("Output format (default: markdown)"),
				mcp.Enum("markdown", "json"),
			),
		),
		"joplin_create_note": mcp.NewTool("joplin_create_note",
			mcp.WithDescription("Create a note with a Markdown body, optional tags and to-do support. Tags are created automatically when they do not exist."),
			mcp.WithString("title",
				mcp.Required(),
				mcp.Description("Note title"),
			),
			mcp.WithString("body",
				mcp.Description("Note content in Markdown format"),
			),
			mcp.WithString("notebook_id",
				mcp.Description("Notebook ID to create the note in. Uses the default notebook if not specified."),
			),
			mcp.WithArray("tags",
				mcp.Description("Tag names to apply (created if they don't exist)"),
				mcp.Items(map[string]any{"type": "string"}),
			),
			mcp.WithBoolean("is_todo",
				mcp.Description("Create as a to-do item instead of a regular note (default: false)"),
			),
		),
		"joplin_update_note": mcp.NewTool("joplin_update_note",
			mcp.WithDescription("Update note title, body, to-do state, or move it to a different notebook. Only provided fields are changed."),
			mcp.WithString("note_id",
				mcp.Required(),
				mcp.Description("The note ID to update"),
			),
			mcp.WithString("title",
				mcp.Description("New note title"),
			),
			mcp.WithString("body",
				mcp.Description("New note content in Markdown"),
			),
			mcp.WithString("notebook_id",
				mcp.Description("Move note to a different notebook"),
			),
			mcp.WithBoolean("is_todo",
				mcp.Description("Convert to/from a to-do item"),
			),
			mcp.WithBoolean("todo_completed",
				mcp.Description("Mark the to-do as completed/incomplete"),
			),
		),
		"joplin_delete_note": mcp.NewTool("joplin_delete_note",
			mcp.WithDescription("Delete a note permanently. Cannot be undone."),
			mcp.WithString("note_id",
				mcp.Required(),
				mcp.Description("The note ID to delete"),
			),
		),
		"joplin_search_notes": mcp.NewTool("joplin_search_notes",
			mcp.WithDescription("Search notes. Supports title:, body:, tag:, notebook:, created:, updated: and type: prefixes, e.g. \"tag:work type:todo\" or \"title:meeting\"."),
			mcp.WithString("query",
				mcp.Required(),
				mcp.Description("Search query with optional field prefixes"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum results to return (default: 20, max: 100)"),
			),
			mcp.WithString("response_format",
				mcp.Description("Output format (default: markdown)"),
				mcp.Enum("markdown", "json"),
			),
		),
		"joplin_list_tags": mcp.NewTool("joplin_list_tags",
			mcp.WithDescription("List all tags with IDs, alphabetically sorted. Use for the tag: search prefix or joplin_tag_note."),
			mcp.WithString("response_format",
				mcp.Description("Output format (default: markdown)"),
				mcp.Enum("markdown", "json"),
			),
		),
		"joplin_tag_note": mcp.NewTool("joplin_tag_note",
			mcp.WithDescription("Add a tag to a note, creating the tag when it does not exist. Idempotent; matching is case-insensitive."),
			mcp.WithString("note_id",
				mcp.Required(),
				mcp.Description("The note ID to tag"),
			),
			mcp.WithString("tag",
				mcp.Required(),
				mcp.Description("Tag name to add"),
			),
		),
	}

	for name, adapter := range cfg.ToolAdapters {
		tool := toolDefinitions[name]
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return adapter.ToolAdapter(ctx, req)
		})
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
	}
}

// ServeStdio runs the server over stdin/stdout, the adapter's native
// transport.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.MCP)
}
