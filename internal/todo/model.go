// Package todo provides the task data model and JSON-file persistence for the todo CLI.
package todo

import (
	"strings"
	"time"
)

// StatusFilter selects which todos a listing returns.
type StatusFilter string

// Valid filter values.
const (
	FilterAll       StatusFilter = "all"
	FilterCompleted StatusFilter = "completed"
	FilterPending   StatusFilter = "pending"
)

// validFilters contains all valid filter values for quick lookup.
var validFilters = map[StatusFilter]bool{
	FilterAll:       true,
	FilterCompleted: true,
	FilterPending:   true,
}

// IsValid returns true if the filter is a valid StatusFilter value.
func (f StatusFilter) IsValid() bool {
	return validFilters[f]
}

// Todo represents a single trackable item.
type Todo struct {
	// ID is the unique positive identifier, assigned by the manager.
	ID int `json:"id"`

	// Title is the short summary of the todo. Never blank.
	Title string `json:"title"`

	// Description is the optional longer text.
	Description string `json:"description"`

	// Completed reports whether the todo is done.
	Completed bool `json:"completed"`

	// CreatedAt is when the todo was created. Immutable after construction.
	CreatedAt time.Time `json:"created_at"`

	// CompletedAt is when the todo was completed. Non-nil iff Completed.
	CompletedAt *time.Time `json:"completed_at"`
}

// New constructs a pending Todo with the given id and caller-supplied text.
// The title must be non-empty after trimming whitespace; it is stored untrimmed.
func New(id int, title, description string) (*Todo, error) {
	if strings.TrimSpace(title) == "" {
		return nil, &ValidationError{Reason: "title cannot be empty"}
	}

	return &Todo{
		ID:          id,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now().Truncate(time.Second),
	}, nil
}

// Complete marks the todo as done and stamps CompletedAt.
// Calling it on an already completed todo is a no-op.
func (t *Todo) Complete() {
	if t.Completed {
		return
	}
	now := time.Now().Truncate(time.Second)
	t.Completed = true
	t.CompletedAt = &now
}

// Uncomplete marks the todo as pending again and clears CompletedAt.
// Calling it on a pending todo is a no-op.
func (t *Todo) Uncomplete() {
	if !t.Completed {
		return
	}
	t.Completed = false
	t.CompletedAt = nil
}

// Validate checks the record invariants.
// Returns an error describing the first violation, or nil if valid.
func (t *Todo) Validate() error {
	if t.ID <= 0 {
		return &ValidationError{Reason: "id must be positive"}
	}

	if strings.TrimSpace(t.Title) == "" {
		return &ValidationError{Reason: "title cannot be empty"}
	}

	if t.CreatedAt.IsZero() {
		return &ValidationError{Reason: "created_at is required"}
	}

	if t.Completed && t.CompletedAt == nil {
		return &ValidationError{Reason: "completed todo must have completed_at"}
	}

	if !t.Completed && t.CompletedAt != nil {
		return &ValidationError{Reason: "pending todo must not have completed_at"}
	}

	return nil
}
