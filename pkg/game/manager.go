package game

import "sync"

// Manager tracks independent sessions keyed by ID, one per simultaneous
// voice call. Sessions are fully isolated from each other; the only shared
// state is the read-only word pool.
type Manager struct {
	pool *Pool

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates a session manager backed by pool.
func NewManager(pool *Pool) *Manager {
	return &Manager{
		pool:     pool,
		sessions: make(map[string]*Session),
	}
}

// Create starts a new isolated session and registers it.
func (m *Manager) Create(opts ...Option) *Session {
	s := NewSession(m.pool, opts...)

	m.mu.Lock()
	m.sessions[s.ID()] = s
	m.mu.Unlock()
	return s
}

// Get looks up a session by ID.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Remove drops a session, e.g. when its voice call ends.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Pool returns the shared word pool.
func (m *Manager) Pool() *Pool {
	return m.pool
}
