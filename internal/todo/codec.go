package todo

import (
	"time"
)

// record is the on-disk shape of a single todo. Required fields are pointers
// so decoding can tell a missing field from a zero value.
type record struct {
	ID          *int    `json:"id"`
	Title       *string `json:"title"`
	Description string  `json:"description"`
	Completed   bool    `json:"completed"`
	CreatedAt   *string `json:"created_at"`
	CompletedAt *string `json:"completed_at"`
}

// marshalRecord converts a Todo to its on-disk representation.
// Timestamps are formatted as RFC 3339 text; completed_at is null when pending.
func marshalRecord(t *Todo) record {
	id := t.ID
	title := t.Title
	createdAt := t.CreatedAt.Format(time.RFC3339)

	r := record{
		ID:          &id,
		Title:       &title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   &createdAt,
	}

	if t.CompletedAt != nil {
		completedAt := t.CompletedAt.Format(time.RFC3339)
		r.CompletedAt = &completedAt
	}

	return r
}

// unmarshalRecord reconstructs a Todo from its on-disk representation.
// Returns a FormatError naming the offending field when a required field is
// missing or a timestamp does not parse.
func unmarshalRecord(r record) (*Todo, error) {
	if r.ID == nil {
		return nil, &FormatError{Field: "id", Reason: "missing"}
	}
	if *r.ID <= 0 {
		return nil, &FormatError{Field: "id", Reason: "must be positive"}
	}

	if r.Title == nil {
		return nil, &FormatError{Field: "title", Reason: "missing"}
	}

	if r.CreatedAt == nil {
		return nil, &FormatError{Field: "created_at", Reason: "missing"}
	}

	createdAt, err := time.Parse(time.RFC3339, *r.CreatedAt)
	if err != nil {
		return nil, &FormatError{Field: "created_at", Reason: err.Error()}
	}

	t := &Todo{
		ID:          *r.ID,
		Title:       *r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		CreatedAt:   createdAt,
	}

	if r.CompletedAt != nil {
		completedAt, err := time.Parse(time.RFC3339, *r.CompletedAt)
		if err != nil {
			return nil, &FormatError{Field: "completed_at", Reason: err.Error()}
		}
		t.CompletedAt = &completedAt
	}

	return t, nil
}
