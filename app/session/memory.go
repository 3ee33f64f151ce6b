package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

type MemoryStore struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.RWMutex
	sessions map[string]memoryEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, now: time.Now, sessions: make(map[string]memoryEntry)}
}

func (m *MemoryStore) Get(_ context.Context, id string) (Session, error) {
	m.mu.RLock()
	e, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return Session{}, ErrNotFound
	}
	if !m.now().Before(e.expiresAt) {
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return Session{}, ErrNotFound
	}
	return e.session, nil
}

// Set also drops every expired entry, so abandoned sessions do not pile up.
func (m *MemoryStore) Set(_ context.Context, id string, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for key, e := range m.sessions {
		if !now.Before(e.expiresAt) {
			delete(m.sessions, key)
		}
	}
	m.sessions[id] = memoryEntry{session: s, expiresAt: now.Add(m.ttl)}
	return nil
}

func (m *MemoryStore) Destroy(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
