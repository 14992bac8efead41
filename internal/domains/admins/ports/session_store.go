package ports

import (
	"context"
	"time"

	"github.com/elevate-mobility/orderdesk/internal/domains/admins/domain"
)

// Session is the minimal state mirrored to durable local storage so a
// restarted process can restore a still-valid login.
type Session struct {
	Admin   *domain.Admin `json:"admin"`
	LoginAt time.Time     `json:"login_at"`
}

// SessionStore abstracts the durable local session mirror.
type SessionStore interface {
	Save(ctx context.Context, session Session) error
	// Load returns nil without error when no session is persisted.
	Load(ctx context.Context) (*Session, error)
	Clear(ctx context.Context) error
}

// NoopSessionStore is a safe default when callers do not need session
// persistence.
var NoopSessionStore SessionStore = noopSessionStore{}

type noopSessionStore struct{}

func (noopSessionStore) Save(_ context.Context, _ Session) error    { return nil }
func (noopSessionStore) Load(_ context.Context) (*Session, error)   { return nil, nil }
func (noopSessionStore) Clear(_ context.Context) error              { return nil }
