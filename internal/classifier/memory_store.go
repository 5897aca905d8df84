package classifier

import "sync"

// MemoryStore is an in-memory Store used in tests and by embedders that do
// not need persistence across processes.
type MemoryStore struct {
	mu    sync.Mutex
	state *ClassifierStore

	// Error injection for testing failure paths.
	LoadError error
	SaveError error
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{state: NewDefaultStore()}
}

// Load returns a deep copy of the current state so callers can never mutate
// the stored record in place.
func (ms *MemoryStore) Load() (*ClassifierStore, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if ms.LoadError != nil {
		return NewDefaultStore(), ms.LoadError
	}
	if ms.state == nil {
		ms.state = NewDefaultStore()
	}
	return ms.state.Clone(), nil
}

// Save replaces the stored record with a deep copy of the given store.
func (ms *MemoryStore) Save(store *ClassifierStore) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if ms.SaveError != nil {
		return ms.SaveError
	}
	ms.state = store.Clone()
	return nil
}
