package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/elevate-mobility/orderdesk/internal/domains/admins/domain"
	"github.com/elevate-mobility/orderdesk/internal/domains/admins/ports"
)

func newAdmin(id, username string, createdAt time.Time) *domain.Admin {
	return &domain.Admin{
		ID:        id,
		Username:  username,
		Role:      domain.RoleAdminEditor,
		CreatedAt: createdAt,
	}
}

func TestCreateAndGetByUsername(t *testing.T) {
	repo := NewRepository()

	_, err := repo.Create(context.Background(), newAdmin("adm-1", "sales-desk", time.Now()))
	require.NoError(t, err)

	got, err := repo.GetByUsername(context.Background(), "sales-desk")
	require.NoError(t, err)
	require.Equal(t, "adm-1", got.ID)

	_, err = repo.GetByUsername(context.Background(), "ghost")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestCreate_DuplicateUsername(t *testing.T) {
	repo := NewRepository()

	_, err := repo.Create(context.Background(), newAdmin("adm-1", "sales-desk", time.Now()))
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), newAdmin("adm-2", "sales-desk", time.Now()))
	require.ErrorIs(t, err, ports.ErrUsernameTaken)
}

func TestList_NewestFirst(t *testing.T) {
	repo := NewRepository()
	base := time.Now()

	_, err := repo.Create(context.Background(), newAdmin("adm-1", "first", base))
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), newAdmin("adm-2", "second", base.Add(time.Minute)))
	require.NoError(t, err)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "adm-2", list[0].ID)
}

func TestDelete(t *testing.T) {
	repo := NewRepository()

	_, err := repo.Create(context.Background(), newAdmin("adm-1", "sales-desk", time.Now()))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(context.Background(), "adm-1"))
	require.ErrorIs(t, repo.Delete(context.Background(), "adm-1"), ports.ErrNotFound)
}

func TestRecordLogin(t *testing.T) {
	repo := NewRepository()

	_, err := repo.Create(context.Background(), newAdmin("adm-1", "sales-desk", time.Now()))
	require.NoError(t, err)

	at := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.RecordLogin(context.Background(), "adm-1", at))

	got, err := repo.GetByUsername(context.Background(), "sales-desk")
	require.NoError(t, err)
	require.NotNil(t, got.LastLogin)
	require.True(t, at.Equal(*got.LastLogin))

	require.ErrorIs(t, repo.RecordLogin(context.Background(), "adm-missing", at), ports.ErrNotFound)
}
