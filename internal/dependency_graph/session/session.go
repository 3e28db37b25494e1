// Package session holds per-client navigation state: the visible graph and
// its focus history. Each session serializes its own operations.
package session

import (
	"sync"
	"time"

	"github.com/knitviz/di-graph-backend/internal/dependency_graph/domain"
	"github.com/knitviz/di-graph-backend/internal/dependency_graph/navigator"
)

// State is what a session operation may read and replace.
type State struct {
	Graph *domain.ProjectGraph
	Nav   *navigator.Navigator
}

type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	lastSeen time.Time
	state    State
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		CreatedAt: now,
		lastSeen:  now,
		state: State{
			Graph: &domain.ProjectGraph{Nodes: []domain.Node{}, Links: []domain.Link{}},
			Nav:   navigator.New(),
		},
	}
}

// Info is a point-in-time summary safe to serialize.
type Info struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	LastSeen     time.Time `json:"last_seen"`
	Nodes        int       `json:"nodes"`
	Links        int       `json:"links"`
	FocusedNode  string    `json:"focused_node,omitempty"`
	HistoryDepth int       `json:"history_depth"`
}

func (s *Session) Info() Info {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.infoLocked()
}

func (s *Session) infoLocked() Info {
	return Info{
		ID:           s.ID,
		CreatedAt:    s.CreatedAt,
		LastSeen:     s.lastSeen,
		Nodes:        len(s.state.Graph.Nodes),
		Links:        len(s.state.Graph.Links),
		FocusedNode:  s.state.Nav.Focused(),
		HistoryDepth: s.state.Nav.Depth(),
	}
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}
