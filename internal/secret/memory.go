package secret

import (
	"context"
	"sync"
)

// MemoryStore keeps secrets in memory. Used by tests and the local server.
type MemoryStore struct {
	mu      sync.RWMutex
	secrets map[string]Payload
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{secrets: make(map[string]Payload)}
}

// PutString stores a text secret.
func (m *MemoryStore) PutString(id, value string) {
	m.put(id, Payload{String: &value})
}

// PutBinary stores a binary secret.
func (m *MemoryStore) PutBinary(id string, value []byte) {
	m.put(id, Payload{Binary: append([]byte(nil), value...)})
}

func (m *MemoryStore) put(id string, p Payload) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.secrets[id] = p
}

// GetSecret implements Store.
func (m *MemoryStore) GetSecret(_ context.Context, id string) (Payload, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.secrets[id]
	if !ok {
		return Payload{}, &NotFoundError{ID: id}
	}
	return p, nil
}
