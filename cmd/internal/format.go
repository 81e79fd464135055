// Package internal provides presentation helpers shared by the todo commands.
package internal

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/todo-cli/todo/internal/todo"
)

// Status glyphs used in listings.
const (
	GlyphDone    = "✓"
	GlyphPending = "○"
)

// FormatTable renders todos as an aligned table with a header row.
func FormatTable(todos []*todo.Todo) string {
	var sb strings.Builder

	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tSTATUS\tTITLE\tDESCRIPTION\tCREATED")

	for _, t := range todos {
		status := GlyphPending + " Pending"
		if t.Completed {
			status = GlyphDone + " Done"
		}

		description := t.Description
		if description == "" {
			description = "-"
		}

		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			t.ID, status, t.Title, description, t.CreatedAt.Format("2006-01-02 15:04"))
	}

	_ = w.Flush()
	return sb.String()
}

// FormatSimple renders todos as compact one-line entries with the
// description indented underneath when present.
func FormatSimple(todos []*todo.Todo) string {
	var sb strings.Builder

	for _, t := range todos {
		glyph := GlyphPending
		if t.Completed {
			glyph = GlyphDone
		}

		_, _ = fmt.Fprintf(&sb, "%s [%d] %s\n", glyph, t.ID, t.Title)
		if t.Description != "" {
			_, _ = fmt.Fprintf(&sb, "    %s\n", t.Description)
		}
	}

	return sb.String()
}

// ProgressBar returns an ASCII progress bar string for the given percentage.
// The width parameter specifies the inner width of the bar (excluding brackets).
// Percentage values are clamped to 0-100.
//
// Example: ProgressBar(50, 20) returns "[==========          ]"
func ProgressBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := (percent * width) / 100

	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(strings.Repeat("=", filled))
	sb.WriteString(strings.Repeat(" ", width-filled))
	sb.WriteString("]")

	return sb.String()
}
