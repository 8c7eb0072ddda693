package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/roivaz/joplin-mcp/internal/config"
	"github.com/roivaz/joplin-mcp/internal/joplin"
	"github.com/roivaz/joplin-mcp/internal/launcher"
	"github.com/roivaz/joplin-mcp/internal/logging"
	"github.com/roivaz/joplin-mcp/internal/mcp/tools"
)

type Config struct {
	ToolAdapters map[string]ToolAdapter
	Options      []server.StreamableHTTPOption
}

func DefaultConfig() Config {
	log := logging.New(logging.DefaultLogger(config.LogLevel()))

	desktop := launcher.New(log)
	client := joplin.NewClient(desktop, log)
	service := joplin.NewService(client, log)
	runtime := joplin.Runtime{Desktop: desktop, Client: client}

	return Config{
		ToolAdapters: map[string]ToolAdapter{
			"joplin_ensure_running":  &tools.EnsureRunningHandler{Runtime: runtime},
			"joplin_list_notebooks":  &tools.ListNotebooksHandler{Service: service},
			"joplin_create_notebook": &tools.CreateNotebookHandler{Service: service},
			"joplin_list_notes":      &tools.ListNotesHandler{Service: service},
			"joplin_get_note":        &tools.GetNoteHandler{Service: service},
			"joplin_create_note":     &tools.CreateNoteHandler{Service: service},
			"joplin_update_note":     &tools.UpdateNoteHandler{Service: service},
			"joplin_delete_note":     &tools.DeleteNoteHandler{Service: service},
			"joplin_search_notes":    &tools.SearchNotesHandler{Service: service},
			"joplin_list_tags":       &tools.ListTagsHandler{Service: service},
			"joplin_tag_note":        &tools.TagNoteHandler{Service: service},
		},
		Options: []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp/jsonrpc"),
			server.WithStateLess(true),
		},
	}
}
