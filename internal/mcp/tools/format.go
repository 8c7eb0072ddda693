package tools

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/roivaz/joplin-mcp/internal/joplin"
)

const truncationReserve = 200

// truncateResponse bounds a markdown rendering to the character budget,
// appending a marker that names the original item count. JSON renderings
// are never truncated.
func truncateResponse(text string, itemCount int) string {
	if len(text) <= joplin.CharacterLimit {
		return text
	}
	truncated := text[:joplin.CharacterLimit-truncationReserve]
	return truncated + fmt.Sprintf(
		"\n\n---\n**Response truncated** (%d items). Use filters to narrow results.", itemCount)
}

// formatTimestamp renders an epoch-millisecond timestamp the way the API
// reports them.
func formatTimestamp(ms int64) string {
	if ms == 0 {
		return "Unknown"
	}
	return time.UnixMilli(ms).Format("2006-01-02 15:04")
}

// renderNotebookTree renders notebooks as an indented tree following
// parent references.
func renderNotebookTree(notebooks []joplin.Notebook) string {
	lines := []string{"# Joplin Notebooks", ""}

	var walk func(parentID string, level int)
	walk = func(parentID string, level int) {
		for _, nb := range notebooks {
			if nb.ParentID != parentID {
				continue
			}
			indent := strings.Repeat("  ", level)
			lines = append(lines,
				fmt.Sprintf("%s- **%s**", indent, nb.Title),
				fmt.Sprintf("%s  ID: `%s`", indent, nb.ID))
			walk(nb.ID, level+1)
		}
	}
	walk("", 0)

	return strings.Join(lines, "\n")
}

func renderNoteList(header []string, notes []joplin.Note) string {
	lines := append([]string{}, header...)
	for _, note := range notes {
		lines = append(lines, "### "+noteHeading(note),
			fmt.Sprintf("- **ID**: `%s`", note.ID),
			fmt.Sprintf("- **Updated**: %s", formatTimestamp(note.UpdatedTime)),
			"")
	}
	return strings.Join(lines, "\n")
}

func noteHeading(note joplin.Note) string {
	if !note.IsTodo {
		return note.Title
	}
	if note.TodoCompleted {
		return "[x] " + note.Title
	}
	return "[ ] " + note.Title
}

func renderNote(note joplin.Note, includeBody bool) string {
	lines := []string{"# " + note.Title, ""}

	if note.IsTodo {
		status := "Pending"
		if note.TodoCompleted {
			status = "Completed"
		}
		lines = append(lines, "**Status**: "+status)
	}

	notebook := note.ParentID
	if notebook == "" {
		notebook = "Unknown"
	}
	lines = append(lines,
		fmt.Sprintf("- **ID**: `%s`", note.ID),
		fmt.Sprintf("- **Notebook**: `%s`", notebook),
		fmt.Sprintf("- **Created**: %s", formatTimestamp(note.CreatedTime)),
		fmt.Sprintf("- **Updated**: %s", formatTimestamp(note.UpdatedTime)),
	)
	if note.SourceURL != "" {
		lines = append(lines, "- **Source**: "+note.SourceURL)
	}
	if includeBody && note.Body != "" {
		lines = append(lines, "", "---", "", note.Body)
	}

	return strings.Join(lines, "\n")
}

// renderTags lists tags alphabetically, case-insensitive.
func renderTags(tags []joplin.Tag) string {
	sorted := append([]joplin.Tag{}, tags...)
	sort.Slice(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Title) < strings.ToLower(sorted[j].Title)
	})

	lines := []string{"# Joplin Tags", ""}
	for _, tag := range sorted {
		lines = append(lines, fmt.Sprintf("- **%s** (ID: `%s`)", tag.Title, tag.ID))
	}
	return strings.Join(lines, "\n")
}
