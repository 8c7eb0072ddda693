package joplin

import "github.com/tidwall/gjson"

// Notebook is a folder in the Joplin hierarchy; ParentID is empty for
// top-level notebooks.
type Notebook struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ParentID string `json:"parent_id,omitempty"`
}

// Note carries note metadata and, when requested, the markdown body.
// Timestamps are epoch milliseconds as the API reports them.
type Note struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	ParentID      string `json:"parent_id,omitempty"`
	Body          string `json:"body,omitempty"`
	CreatedTime   int64  `json:"created_time,omitempty"`
	UpdatedTime   int64  `json:"updated_time,omitempty"`
	IsTodo        bool   `json:"is_todo,omitempty"`
	TodoCompleted bool   `json:"todo_completed,omitempty"`
	SourceURL     string `json:"source_url,omitempty"`
}

// Tag is a named label, many-to-many with notes.
type Tag struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func notebookFromJSON(r gjson.Result) Notebook {
	return Notebook{
		ID:       r.Get("id").String(),
		Title:    r.Get("title").String(),
		ParentID: r.Get("parent_id").String(),
	}
}

func noteFromJSON(r gjson.Result) Note {
	return Note{
		ID:            r.Get("id").String(),
		Title:         r.Get("title").String(),
		ParentID:      r.Get("parent_id").String(),
		Body:          r.Get("body").String(),
		CreatedTime:   r.Get("created_time").Int(),
		UpdatedTime:   r.Get("updated_time").Int(),
		IsTodo:        r.Get("is_todo").Bool(),
		TodoCompleted: r.Get("todo_completed").Bool(),
		SourceURL:     r.Get("source_url").String(),
	}
}

func tagFromJSON(r gjson.Result) Tag {
	return Tag{
		ID:    r.Get("id").String(),
		Title: r.Get("title").String(),
	}
}
