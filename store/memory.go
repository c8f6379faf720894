package store

// Memory is an in-memory Store, used by tests and ephemeral runs.
// The zero value is not ready to use; call NewMemory.
type Memory struct {
	values map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

// Get returns the value at key, or ErrNotFound.
func (s *Memory) Get(key string) ([]byte, error) {
	value, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

// Set replaces the value at key wholesale.
func (s *Memory) Set(key string, value []byte) error {
	s.values[key] = append([]byte(nil), value...)
	return nil
}

// Close is a no-op.
func (s *Memory) Close() error { return nil }

var _ Store = (*Memory)(nil)
