package todo

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlTodo represents a todo as defined in an import file.
type yamlTodo struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Completed   bool   `yaml:"completed,omitempty"`
}

// yamlFile represents the structure of a todos YAML file.
type yamlFile struct {
	Todos []yamlTodo `yaml:"todos"`
}

// ImportError describes why a single entry could not be imported.
type ImportError struct {
	Index  int
	Reason string
}

// ImportResult contains the results of a YAML import operation.
type ImportResult struct {
	Imported int
	Errors   []ImportError
}

// ImportFromYAML reads todos from a YAML file and appends them to the
// manager's collection. Each imported todo gets a fresh id. Entries that
// fail validation are skipped and reported in the result. The collection
// is saved once, after all valid entries are appended.
func ImportFromYAML(m *Manager, path string) (*ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read YAML file: %w", err)
	}

	var file yamlFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	result := &ImportResult{}

	for i, yt := range file.Todos {
		t, err := New(m.nextID, yt.Title, yt.Description)
		if err != nil {
			result.Errors = append(result.Errors, ImportError{
				Index:  i + 1,
				Reason: err.Error(),
			})
			continue
		}

		m.nextID++
		if yt.Completed {
			t.Complete()
		}

		m.todos = append(m.todos, t)
		result.Imported++
	}

	if result.Imported > 0 {
		if err := m.Save(); err != nil {
			return nil, err
		}
	}

	return result, nil
}
