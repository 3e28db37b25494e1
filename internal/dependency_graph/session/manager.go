package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
)

const DefaultTTL = 30 * time.Minute

type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		sessions: map[string]*Session{},
		ttl:      ttl,
		now:      time.Now,
	}
}

func (m *Manager) TTL() time.Duration { return m.ttl }

func (m *Manager) Create() *Session {
	s := newSession(uuid.NewString(), m.now())
	m.mu.Lock()
	m.sessions[s.ID] = s
	n := len(m.sessions)
	m.mu.Unlock()
	activeSessions.Set(float64(n))
	return s
}

func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	n := len(m.sessions)
	m.mu.Unlock()
	if !ok {
		return domain.ErrSessionNotFound
	}
	activeSessions.Set(float64(n))
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// With runs fn while holding the session's lock and marks the session as
// used. fn may replace st.Graph; the navigator is shared.
func (m *Manager) With(id string, fn func(st *State) error) (Info, error) {
	s, err := m.Get(id)
	if err != nil {
		return Info{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = m.now()
	if err := fn(&s.state); err != nil {
		return s.infoLocked(), err
	}
	if s.state.Graph == nil {
		s.state.Graph = &domain.ProjectGraph{Nodes: []domain.Node{}, Links: []domain.Link{}}
	}
	return s.infoLocked(), nil
}

// Sweep drops sessions idle for longer than the TTL and returns how many
// were removed.
func (m *Manager) Sweep(now time.Time) int {
	m.mu.RLock()
	var expired []string
	for id, s := range m.sessions {
		if s.idleSince(now) > m.ttl {
			expired = append(expired, id)
		}
	}
	m.mu.RUnlock()
	if len(expired) == 0 {
		return 0
	}

	m.mu.Lock()
	for _, id := range expired {
		delete(m.sessions, id)
	}
	n := len(m.sessions)
	m.mu.Unlock()
	activeSessions.Set(float64(n))
	return len(expired)
}
