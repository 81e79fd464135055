package todo

// Store defines the persistence boundary for a todo collection.
// This interface is defined at the consumer level following Go idioms.
type Store interface {
	// LoadAll reads the full collection from storage in on-disk order.
	// A missing storage file yields an empty collection, not an error.
	// Returns a StorageError when the file cannot be read or decoded.
	LoadAll() ([]*Todo, error)

	// SaveAll replaces the stored collection with the given sequence,
	// preserving its order. Returns a StorageError on any I/O failure.
	SaveAll(todos []*Todo) error
}
