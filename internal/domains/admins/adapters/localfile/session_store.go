// Package localfile mirrors the operator session to a JSON file under a
// fixed name, the process-local analogue of browser storage.
package localfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/elevate-mobility/orderdesk/internal/domains/admins/ports"
)

// SessionFileName is the fixed name of the persisted session record.
const SessionFileName = "session.json"

var _ ports.SessionStore = (*SessionStore)(nil)

// SessionStore persists the session in a single file.
type SessionStore struct {
	path string
}

// NewSessionStore stores the session under dir. An empty dir falls back to
// the user config directory.
func NewSessionStore(dir string) (*SessionStore, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		dir = filepath.Join(base, "orderdesk")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}
	return &SessionStore{path: filepath.Join(dir, SessionFileName)}, nil
}

func (s *SessionStore) Save(_ context.Context, session ports.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	// Write-then-rename keeps a crashed write from corrupting the record.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace session: %w", err)
	}
	return nil
}

func (s *SessionStore) Load(_ context.Context) (*ports.Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session: %w", err)
	}
	var session ports.Session
	if err := json.Unmarshal(data, &session); err != nil {
		// A corrupt record is treated as no session.
		_ = os.Remove(s.path)
		return nil, nil
	}
	return &session, nil
}

func (s *SessionStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
