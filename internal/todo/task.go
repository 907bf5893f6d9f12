package todo

import (
	"fmt"
	"strings"
	"time"
)

// DefaultTimeFormat is the layout used when rendering creation timestamps.
const DefaultTimeFormat = "2006-01-02 15:04:05"

// NoDescription is shown in place of an empty description.
const NoDescription = "(No description)"

// Task represents a single task in the list.
type Task struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// StatusLabel returns the completion marker shown next to the ID.
func (t Task) StatusLabel() string {
	if t.Completed {
		return "✓ Complete"
	}
	return "✗ Pending"
}

// String renders the task in the multi-line form used by the menu.
func (t Task) String() string {
	return t.Format(DefaultTimeFormat)
}

// Format renders the task with a custom timestamp layout.
func (t Task) Format(layout string) string {
	if layout == "" {
		layout = DefaultTimeFormat
	}
	desc := t.Description
	if desc == "" {
		desc = NoDescription
	}

	var b strings.Builder
	fmt.Fprintf(&b, "ID: %d | %s\n", t.ID, t.StatusLabel())
	fmt.Fprintf(&b, "Title: %s\n", t.Title)
	fmt.Fprintf(&b, "Description: %s\n", desc)
	fmt.Fprintf(&b, "Created: %s", t.CreatedAt.Format(layout))
	return b.String()
}
