package todo

import (
	"errors"
	"fmt"
)

// Error categories for todo operations.
var (
	// ErrValidation is returned when caller-supplied data violates an invariant.
	ErrValidation = errors.New("todo validation failed")

	// ErrFormat is returned when a persisted record cannot be reconstructed.
	ErrFormat = errors.New("todo record malformed")

	// ErrStorage is returned when reading or writing the storage file fails.
	ErrStorage = errors.New("todo storage failed")
)

// ValidationError wraps ErrValidation with the reason the input was rejected.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("todo validation failed: %s", e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// FormatError wraps ErrFormat with the field that could not be decoded.
type FormatError struct {
	Field  string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("todo record malformed: field %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("todo record malformed: %s", e.Reason)
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// StorageError wraps an I/O or decode failure with the storage file path.
// The underlying cause is preserved for errors.Is/As inspection.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("todo storage failed for %s: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is reports ErrStorage membership so callers can match the category
// without losing the wrapped cause.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}
