package todo

// Manager holds the live todo collection and coordinates loading and saving
// through its Store. Every mutating operation persists the full collection
// before returning. A Manager is not safe for concurrent use.
type Manager struct {
	store  Store
	todos  []*Todo
	nextID int
}

// NewManager creates a Manager bound to the given store and eagerly loads
// the collection. A malformed storage file surfaces as a StorageError.
func NewManager(store Store) (*Manager, error) {
	m := &Manager{
		store:  store,
		nextID: 1,
	}

	if err := m.Load(); err != nil {
		return nil, err
	}

	return m, nil
}

// Load replaces the in-memory collection with the stored one and advances
// the id allocator past the highest id seen, so ids never collide across
// process restarts.
func (m *Manager) Load() error {
	todos, err := m.store.LoadAll()
	if err != nil {
		return err
	}

	m.todos = todos
	for _, t := range todos {
		if t.ID >= m.nextID {
			m.nextID = t.ID + 1
		}
	}

	return nil
}

// Save writes the in-memory collection through the store.
func (m *Manager) Save() error {
	return m.store.SaveAll(m.todos)
}

// AddTodo constructs a new todo, appends it to the collection, and saves.
// A blank title fails with ValidationError; nothing is appended or written.
func (m *Manager) AddTodo(title, description string) (*Todo, error) {
	t, err := New(m.nextID, title, description)
	if err != nil {
		return nil, err
	}

	m.nextID++
	m.todos = append(m.todos, t)

	if err := m.Save(); err != nil {
		return nil, err
	}

	return t, nil
}

// GetTodos returns a snapshot copy of the collection in insertion order,
// filtered by completion status. An invalid filter is treated as FilterAll.
func (m *Manager) GetTodos(filter StatusFilter) []*Todo {
	todos := make([]*Todo, 0, len(m.todos))
	for _, t := range m.todos {
		switch filter {
		case FilterCompleted:
			if !t.Completed {
				continue
			}
		case FilterPending:
			if t.Completed {
				continue
			}
		}
		todos = append(todos, t)
	}
	return todos
}

// GetTodoByID returns the todo with the given id, or nil if absent.
func (m *Manager) GetTodoByID(id int) *Todo {
	for _, t := range m.todos {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// CompleteTodo marks the todo with the given id as completed and saves.
// Returns false without saving when the todo is absent or already completed.
func (m *Manager) CompleteTodo(id int) (bool, error) {
	t := m.GetTodoByID(id)
	if t == nil || t.Completed {
		return false, nil
	}

	t.Complete()
	if err := m.Save(); err != nil {
		return false, err
	}
	return true, nil
}

// UncompleteTodo marks the todo with the given id as pending and saves.
// Returns false without saving when the todo is absent or already pending.
func (m *Manager) UncompleteTodo(id int) (bool, error) {
	t := m.GetTodoByID(id)
	if t == nil || !t.Completed {
		return false, nil
	}

	t.Uncomplete()
	if err := m.Save(); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteTodo removes the todo with the given id and saves.
// Returns false without saving when the todo is absent. The id is never
// reassigned; the allocator only moves forward.
func (m *Manager) DeleteTodo(id int) (bool, error) {
	for i, t := range m.todos {
		if t.ID == id {
			m.todos = append(m.todos[:i], m.todos[i+1:]...)
			if err := m.Save(); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// ClearCompleted removes every completed todo in one pass and returns the
// count removed. Saves only when at least one todo was removed.
func (m *Manager) ClearCompleted() (int, error) {
	remaining := m.todos[:0:0]
	for _, t := range m.todos {
		if !t.Completed {
			remaining = append(remaining, t)
		}
	}

	removed := len(m.todos) - len(remaining)
	if removed == 0 {
		return 0, nil
	}

	m.todos = remaining
	if err := m.Save(); err != nil {
		return 0, err
	}
	return removed, nil
}
