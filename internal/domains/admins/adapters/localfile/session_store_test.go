package localfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/elevate-mobility/orderdesk/internal/domains/admins/domain"
	"github.com/elevate-mobility/orderdesk/internal/domains/admins/ports"
)

func TestSessionStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewSessionStore(dir)
	require.NoError(t, err)

	loginAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	session := ports.Session{
		Admin:   &domain.Admin{ID: "adm-1", Username: "root", Role: domain.RoleSuperAdmin},
		LoginAt: loginAt,
	}
	require.NoError(t, store.Save(context.Background(), session))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Equal(t, "adm-1", loaded.Admin.ID)
	require.Equal(t, domain.RoleSuperAdmin, loaded.Admin.Role)
	require.True(t, loginAt.Equal(loaded.LoginAt))
}

func TestSessionStoreLoadMissing(t *testing.T) {
	store, err := NewSessionStore(t.TempDir())
	require.NoError(t, err)

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestSessionStoreClear(t *testing.T) {
	store, err := NewSessionStore(t.TempDir())
	require.NoError(t, err)

	session := ports.Session{Admin: &domain.Admin{ID: "adm-1", Username: "root", Role: domain.RoleSuperAdmin}}
	require.NoError(t, store.Save(context.Background(), session))
	require.NoError(t, store.Clear(context.Background()))
	require.NoError(t, store.Clear(context.Background()))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestSessionStoreCorruptRecord(t *testing.T) {
	dir := t.TempDir()
	store, err := NewSessionStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, SessionFileName), []byte("{not json"), 0o600))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, loaded)
	_, statErr := os.Stat(filepath.Join(dir, SessionFileName))
	require.True(t, os.IsNotExist(statErr))
}

func TestSessionStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	_, err := NewSessionStore(dir)
	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
