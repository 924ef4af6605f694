package session

import (
	"context"
	"sync"
	"time"

	"github.com/livinggrainco/site/internal/wizard"
)

type memoryEntry struct {
	session   *wizard.Session
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Sessions are cloned on the
// way in and out so callers never share state.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memoryEntry
	now      func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]memoryEntry),
		now:      time.Now,
	}
}

func (m *MemoryStore) Get(_ context.Context, id string) (*wizard.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[id]
	if !ok || !m.now().Before(e.expiresAt) {
		return nil, ErrNotFound
	}
	return e.session.Clone(), nil
}

func (m *MemoryStore) Save(_ context.Context, s *wizard.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	s.UpdatedAt = now.UTC()
	m.sessions[s.ID] = memoryEntry{session: s.Clone(), expiresAt: now.Add(m.ttl)}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
	return nil
}

// Sweep evicts expired sessions and reports how many were removed.
func (m *MemoryStore) Sweep(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	n := 0
	for id, e := range m.sessions {
		if !now.Before(e.expiresAt) {
			delete(m.sessions, id)
			n++
		}
	}
	return n, nil
}

// Len reports the number of held sessions, expired or not.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *MemoryStore) Check(context.Context) error { return nil }
