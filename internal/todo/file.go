package todo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileStore implements the Store interface using a single local JSON file.
// The whole collection is rewritten on every save.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore bound to the given file path.
// The file is not created until the first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the storage file path the store is bound to.
func (s *FileStore) Path() string {
	return s.path
}

// LoadAll reads the full collection from the storage file.
// A missing file yields an empty collection.
func (s *FileStore) LoadAll() ([]*Todo, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &StorageError{Path: s.path, Err: fmt.Errorf("failed to read storage file: %w", err)}
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &StorageError{Path: s.path, Err: fmt.Errorf("failed to parse storage file: %w", err)}
	}

	todos := make([]*Todo, 0, len(records))
	for _, r := range records {
		t, err := unmarshalRecord(r)
		if err != nil {
			return nil, &StorageError{Path: s.path, Err: err}
		}
		todos = append(todos, t)
	}

	return todos, nil
}

// SaveAll writes the full collection to the storage file, creating missing
// parent directories first. The write goes to a uniquely named temp file
// which is then renamed over the target.
func (s *FileStore) SaveAll(todos []*Todo) error {
	records := make([]record, 0, len(todos))
	for _, t := range todos {
		records = append(records, marshalRecord(t))
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &StorageError{Path: s.path, Err: fmt.Errorf("failed to marshal todos: %w", err)}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &StorageError{Path: s.path, Err: fmt.Errorf("failed to create storage directory: %w", err)}
	}

	tmpFile := fmt.Sprintf("%s.%s.tmp", s.path, uuid.NewString())
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return &StorageError{Path: s.path, Err: fmt.Errorf("failed to write temp file: %w", err)}
	}

	if err := os.Rename(tmpFile, s.path); err != nil {
		_ = os.Remove(tmpFile)
		return &StorageError{Path: s.path, Err: fmt.Errorf("failed to rename temp file: %w", err)}
	}

	return nil
}
