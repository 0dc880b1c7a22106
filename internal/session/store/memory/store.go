package memory

import (
	"sync"

	"grassroots-tasks/internal/model"
	"grassroots-tasks/internal/session"
)

type implStore struct {
	mu       sync.RWMutex
	sessions map[string]model.Scope
}

// New creates an in-process session store.
func New() session.Store {
	return &implStore{
		sessions: make(map[string]model.Scope),
	}
}

func (s *implStore) Get(sessionID string) (model.Scope, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sc, ok := s.sessions[sessionID]
	return sc, ok
}

func (s *implStore) Set(sessionID string, sc model.Scope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = sc
}

func (s *implStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}
