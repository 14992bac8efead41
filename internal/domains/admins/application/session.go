package application

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/elevate-mobility/orderdesk/internal/domains/admins/domain"
	"github.com/elevate-mobility/orderdesk/internal/domains/admins/ports"
)

// SessionTTL is the fixed session lifetime, measured from login. The window
// never slides.
const SessionTTL = 15 * time.Minute

// SessionManager owns the live authentication state for the running
// operator process: the in-memory principal, its durable local mirror, and
// the single expiry timer. It is never shared as a bare global; callers
// receive it via dependency injection.
type SessionManager struct {
	mu      sync.Mutex
	store   ports.SessionStore
	ttl     time.Duration
	now     func() time.Time
	logger  *slog.Logger
	admin   *domain.Admin
	loginAt time.Time
	expired bool
	timer   *time.Timer
	// gen invalidates timers scheduled for an earlier login so a stale
	// callback can never clear a newer session.
	gen uint64
}

// SessionOption configures the manager.
type SessionOption func(*SessionManager)

// WithSessionTTL overrides the fixed session lifetime.
func WithSessionTTL(ttl time.Duration) SessionOption {
	return func(m *SessionManager) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

// WithClock injects a time source for deterministic tests.
func WithClock(now func() time.Time) SessionOption {
	return func(m *SessionManager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithSessionLogger sets the logger for persistence failures.
func WithSessionLogger(logger *slog.Logger) SessionOption {
	return func(m *SessionManager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func NewSessionManager(store ports.SessionStore, opts ...SessionOption) *SessionManager {
	if store == nil {
		store = ports.NoopSessionStore
	}
	m := &SessionManager{
		store:  store,
		ttl:    SessionTTL,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// Login establishes the principal, mirrors it to durable storage, and arms
// the expiry timer. Any timer from a previous login is cancelled first.
func (m *SessionManager) Login(ctx context.Context, admin *domain.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancelTimerLocked()
	m.admin = admin.Sanitize()
	m.loginAt = m.now()
	m.expired = false
	if err := m.store.Save(ctx, ports.Session{Admin: m.admin, LoginAt: m.loginAt}); err != nil {
		m.logger.LogAttrs(ctx, slog.LevelWarn, "failed to persist session",
			slog.String("error", err.Error()))
	}
	m.armTimerLocked(m.ttl)
	return nil
}

// Logout clears the principal and the persisted mirror and cancels the
// expiry timer.
func (m *SessionManager) Logout(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancelTimerLocked()
	m.admin = nil
	m.loginAt = time.Time{}
	if err := m.store.Clear(ctx); err != nil {
		m.logger.LogAttrs(ctx, slog.LevelWarn, "failed to clear persisted session",
			slog.String("error", err.Error()))
	}
}

// Restore runs once at process start. A persisted session still inside its
// TTL is restored with a timer for the remaining lifetime; anything older
// is discarded.
func (m *SessionManager) Restore(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, err := m.store.Load(ctx)
	if err != nil {
		return err
	}
	if session == nil || session.Admin == nil {
		return nil
	}
	age := m.now().Sub(session.LoginAt)
	if age >= m.ttl {
		if err := m.store.Clear(ctx); err != nil {
			m.logger.LogAttrs(ctx, slog.LevelWarn, "failed to clear expired session",
				slog.String("error", err.Error()))
		}
		return nil
	}
	m.cancelTimerLocked()
	m.admin = session.Admin.Sanitize()
	m.loginAt = session.LoginAt
	m.expired = false
	m.armTimerLocked(m.ttl - age)
	return nil
}

// Current returns the authenticated principal, or nil. Validity is
// re-derived from the clock on every call, so a principal past its TTL is
// expired here even if the timer has not fired yet.
func (m *SessionManager) Current() *domain.Admin {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.admin != nil && m.now().Sub(m.loginAt) >= m.ttl {
		m.expireLocked()
	}
	return m.admin
}

// Expired reports the one-shot session-expiry flag.
func (m *SessionManager) Expired() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.expired
}

// AcknowledgeExpiry clears the expiry flag. Idempotent.
func (m *SessionManager) AcknowledgeExpiry() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expired = false
}

func (m *SessionManager) armTimerLocked(d time.Duration) {
	gen := m.gen
	m.timer = time.AfterFunc(d, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.gen != gen {
			return
		}
		m.expireLocked()
	})
}

func (m *SessionManager) cancelTimerLocked() {
	m.gen++
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

func (m *SessionManager) expireLocked() {
	m.cancelTimerLocked()
	m.admin = nil
	m.loginAt = time.Time{}
	m.expired = true
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := m.store.Clear(ctx); err != nil {
		m.logger.LogAttrs(ctx, slog.LevelWarn, "failed to clear expired session",
			slog.String("error", err.Error()))
	}
}
