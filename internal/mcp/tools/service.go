// Package tools contains the MCP tool handlers. Each handler parses its
// arguments, calls the Joplin service and renders the result as markdown or
// JSON; errors never cross the tool boundary as raw errors.
package tools

import (
	"context"

	"github.com/roivaz/joplin-mcp/internal/joplin"
)

// Service is the Joplin operation surface the handlers call; satisfied by
// *joplin.Service.
type Service interface {
	ListNotebooks(ctx context.Context) ([]joplin.Notebook, error)
	CreateNotebook(ctx context.Context, title, parentID string) (joplin.Notebook, bool, error)
	ListNotes(ctx context.Context, p joplin.ListNotesParams) ([]joplin.Note, error)
	GetNote(ctx context.Context, id string, includeBody bool) (joplin.Note, error)
	CreateNote(ctx context.Context, p joplin.CreateNoteParams) (joplin.Note, int, error)
	UpdateNote(ctx context.Context, id string, p joplin.UpdateNoteParams) (joplin.Note, error)
	DeleteNote(ctx context.Context, id string) error
	SearchNotes(ctx context.Context, query string, limit int) ([]joplin.Note, error)
	ListTags(ctx context.Context) ([]joplin.Tag, error)
	TagNote(ctx context.Context, noteID, tag string) error
}
