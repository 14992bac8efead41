package memory

import (
	"context"
	"sync"

	"github.com/elevate-mobility/orderdesk/internal/domains/admins/ports"
)

var _ ports.SessionStore = (*SessionStore)(nil)

// SessionStore is an in-memory SessionStore implementation for tests.
type SessionStore struct {
	mu      sync.Mutex
	session *ports.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

func (s *SessionStore) Save(_ context.Context, session ports.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := session
	s.session = &clone
	return nil
}

func (s *SessionStore) Load(_ context.Context) (*ports.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, nil
	}
	clone := *s.session
	return &clone, nil
}

func (s *SessionStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}
