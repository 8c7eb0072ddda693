package joplin

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/roivaz/joplin-mcp/internal/logging"
)

const (
	notebookFields = "id,title,parent_id"
	noteListFields = "id,title,parent_id,updated_time,created_time,is_todo,todo_completed"
	noteFields     = noteListFields + ",source_url"
	tagFields      = "id,title"
)

// ErrNoFields is returned by UpdateNote when the update set is empty.
var ErrNoFields = errors.New("no fields to update")

// API is the request surface the service needs; satisfied by *Client.
type API interface {
	Request(ctx context.Context, method, endpoint string, body any, query url.Values) (gjson.Result, error)
	FetchAll(ctx context.Context, endpoint string, query url.Values, limit int) ([]gjson.Result, error)
}

// Service implements the notebook, note and tag operations on top of the
// API client. It holds no state of its own; every call stands alone.
type Service struct {
	api API
	now func() time.Time
	log logging.Logger
}

func NewService(api API, log logging.Logger) *Service {
	return &Service{
		api: api,
		now: time.Now,
		log: log.WithName("joplin.service"),
	}
}

func (s *Service) ListNotebooks(ctx context.Context) ([]Notebook, error) {
	query := url.Values{}
	query.Set("fields", notebookFields)
	rows, err := s.api.FetchAll(ctx, "folders", query, 0)
	if err != nil {
		return nil, err
	}
	notebooks := make([]Notebook, 0, len(rows))
	for _, row := range rows {
		notebooks = append(notebooks, notebookFromJSON(row))
	}
	return notebooks, nil
}

// CreateNotebook returns the existing sibling when a case-insensitive title
// match exists under the same parent, performing no creation call. The
// second return value reports whether a notebook was created.
func (s *Service) CreateNotebook(ctx context.Context, title, parentID string) (Notebook, bool, error) {
	existing, err := s.ListNotebooks(ctx)
	if err != nil {
		return Notebook{}, false, err
	}
	for _, nb := range existing {
		if strings.EqualFold(nb.Title, title) && nb.ParentID == parentID {
			return nb, false, nil
		}
	}

	body := map[string]any{"title": title}
	if parentID != "" {
		body["parent_id"] = parentID
	}
	created, err := s.api.Request(ctx, http.MethodPost, "folders", body, nil)
	if err != nil {
		return Notebook{}, false, err
	}
	return notebookFromJSON(created), true, nil
}

type ListNotesParams struct {
	NotebookID string
	Limit      int
	OrderBy    string
	OrderDesc  bool
}

func (s *Service) ListNotes(ctx context.Context, p ListNotesParams) ([]Note, error) {
	query := url.Values{}
	query.Set("fields", noteListFields)
	query.Set("order_by", p.OrderBy)
	if p.OrderDesc {
		query.Set("order_dir", "DESC")
	} else {
		query.Set("order_dir", "ASC")
	}

	endpoint := "notes"
	if p.NotebookID != "" {
		endpoint = "folders/" + p.NotebookID + "/notes"
	}

	rows, err := s.api.FetchAll(ctx, endpoint, query, p.Limit)
	if err != nil {
		return nil, err
	}
	notes := make([]Note, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, noteFromJSON(row))
	}
	return notes, nil
}

func (s *Service) GetNote(ctx context.Context, id string, includeBody bool) (Note, error) {
	fields := noteFields
	if includeBody {
		fields += ",body"
	}
	query := url.Values{}
	query.Set("fields", fields)

	result, err := s.api.Request(ctx, http.MethodGet, "notes/"+id, nil, query)
	if err != nil {
		return Note{}, err
	}
	return noteFromJSON(result), nil
}

type CreateNoteParams struct {
	Title      string
	Body       string
	NotebookID string
	Tags       []string
	IsTodo     bool
}

// CreateNote creates the note, then applies tags best-effort: a failed tag
// sub-step is logged and skipped so the created note is still reported.
// The second return value is the number of tags actually applied.
func (s *Service) CreateNote(ctx context.Context, p CreateNoteParams) (Note, int, error) {
	body := map[string]any{
		"title": p.Title,
		"body":  p.Body,
	}
	if p.NotebookID != "" {
		body["parent_id"] = p.NotebookID
	}
	if p.IsTodo {
		body["is_todo"] = 1
	}

	created, err := s.api.Request(ctx, http.MethodPost, "notes", body, nil)
	if err != nil {
		return Note{}, 0, err
	}
	note := noteFromJSON(created)

	applied := 0
	for _, tag := range p.Tags {
		if err := s.TagNote(ctx, note.ID, tag); err != nil {
			s.log.Error(err, "tagging created note failed", "note_id", note.ID, "tag", tag)
			continue
		}
		applied++
	}
	return note, applied, nil
}

// UpdateNoteParams carries the subset of fields to change; nil means leave
// the field alone.
type UpdateNoteParams struct {
	Title         *string
	Body          *string
	NotebookID    *string
	IsTodo        *bool
	TodoCompleted *bool
}

func (s *Service) UpdateNote(ctx context.Context, id string, p UpdateNoteParams) (Note, error) {
	body := map[string]any{}
	if p.Title != nil {
		body["title"] = *p.Title
	}
	if p.Body != nil {
		body["body"] = *p.Body
	}
	if p.NotebookID != nil {
		body["parent_id"] = *p.NotebookID
	}
	if p.IsTodo != nil {
		if *p.IsTodo {
			body["is_todo"] = 1
		} else {
			body["is_todo"] = 0
		}
	}
	if p.TodoCompleted != nil {
		if *p.TodoCompleted {
			body["todo_completed"] = s.now().UnixMilli()
		} else {
			body["todo_completed"] = 0
		}
	}
	if len(body) == 0 {
		return Note{}, ErrNoFields
	}

	result, err := s.api.Request(ctx, http.MethodPut, "notes/"+id, body, nil)
	if err != nil {
		return Note{}, err
	}
	return noteFromJSON(result), nil
}

func (s *Service) DeleteNote(ctx context.Context, id string) error {
	_, err := s.api.Request(ctx, http.MethodDelete, "notes/"+id, nil, nil)
	return err
}

// SearchNotes issues a single search call; the query string supports the
// API's field-scoping prefixes (title:, body:, tag:, notebook:, created:,
// updated:, type:).
func (s *Service) SearchNotes(ctx context.Context, searchQuery string, limit int) ([]Note, error) {
	query := url.Values{}
	query.Set("query", searchQuery)
	query.Set("type", "note")
	query.Set("fields", "id,title,parent_id,updated_time,is_todo,todo_completed")
	query.Set("limit", strconv.Itoa(limit))

	result, err := s.api.Request(ctx, http.MethodGet, "search", nil, query)
	if err != nil {
		return nil, err
	}

	decoded, ok := parsePage(result, limit)
	if !ok {
		return nil, nil
	}
	notes := make([]Note, 0, len(decoded.items))
	for _, row := range decoded.items {
		notes = append(notes, noteFromJSON(row))
	}
	return notes, nil
}

func (s *Service) ListTags(ctx context.Context) ([]Tag, error) {
	query := url.Values{}
	query.Set("fields", tagFields)
	rows, err := s.api.FetchAll(ctx, "tags", query, 0)
	if err != nil {
		return nil, err
	}
	tags := make([]Tag, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, tagFromJSON(row))
	}
	return tags, nil
}

// FindOrCreateTag matches existing tags case-insensitively through the
// search endpoint and creates the tag when no match exists.
func (s *Service) FindOrCreateTag(ctx context.Context, name string) (Tag, error) {
	query := url.Values{}
	query.Set("query", name)
	query.Set("type", "tag")

	result, err := s.api.Request(ctx, http.MethodGet, "search", nil, query)
	if err != nil {
		return Tag{}, err
	}
	for _, item := range result.Get("items").Array() {
		if strings.EqualFold(item.Get("title").String(), name) {
			return tagFromJSON(item), nil
		}
	}

	created, err := s.api.Request(ctx, http.MethodPost, "tags", map[string]any{"title": name}, nil)
	if err != nil {
		return Tag{}, err
	}
	return tagFromJSON(created), nil
}

// TagNote associates a tag with a note, creating the tag on first use.
// Adding a tag the note already carries is a no-op on the API side.
func (s *Service) TagNote(ctx context.Context, noteID, tag string) error {
	t, err := s.FindOrCreateTag(ctx, tag)
	if err != nil {
		return err
	}
	_, err = s.api.Request(ctx, http.MethodPost, "tags/"+t.ID+"/notes", map[string]any{"id": noteID}, nil)
	return err
}
