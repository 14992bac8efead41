package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/elevate-mobility/orderdesk/internal/domains/admins/domain"
	"github.com/elevate-mobility/orderdesk/internal/domains/admins/ports"
)

type fakeAdminRepo struct {
	admins     map[string]*domain.Admin
	loginFails error
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[string]*domain.Admin{}}
}

func (f *fakeAdminRepo) Create(_ context.Context, admin *domain.Admin) (*domain.Admin, error) {
	for _, existing := range f.admins {
		if existing.Username == admin.Username {
			return nil, ports.ErrUsernameTaken
		}
	}
	copy := *admin
	f.admins[admin.ID] = &copy
	out := copy
	return &out, nil
}

func (f *fakeAdminRepo) GetByUsername(_ context.Context, username string) (*domain.Admin, error) {
	for _, a := range f.admins {
		if a.Username == username {
			copy := *a
			return &copy, nil
		}
	}
	return nil, ports.ErrNotFound
}

func (f *fakeAdminRepo) List(_ context.Context) ([]*domain.Admin, error) {
	var list []*domain.Admin
	for _, a := range f.admins {
		copy := *a
		list = append(list, &copy)
	}
	return list, nil
}

func (f *fakeAdminRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.admins[id]; !ok {
		return ports.ErrNotFound
	}
	delete(f.admins, id)
	return nil
}

func (f *fakeAdminRepo) RecordLogin(_ context.Context, id string, at time.Time) error {
	if f.loginFails != nil {
		return f.loginFails
	}
	if a, ok := f.admins[id]; ok {
		when := at
		a.LastLogin = &when
	}
	return nil
}

func superAdmin() *domain.Admin {
	return &domain.Admin{ID: "adm-root", Username: "root", Role: domain.RoleSuperAdmin}
}

func TestCreateAdminAndLogin(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := NewService(repo, nil)

	created, err := svc.CreateAdmin(context.Background(), superAdmin(), "sales-desk", "orchestra7", domain.RoleAdminEditor)
	require.NoError(t, err)
	require.Equal(t, "sales-desk", created.Username)
	require.Equal(t, domain.RoleAdminEditor, created.Role)
	require.Empty(t, created.PasswordHash)
	require.Equal(t, "adm-root", created.CreatedBy)

	admin, err := svc.Login(context.Background(), "sales-desk", "orchestra7")
	require.NoError(t, err)
	require.Equal(t, created.ID, admin.ID)
	require.Empty(t, admin.PasswordHash)
	require.NotNil(t, admin.LastLogin)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := NewService(repo, nil)

	_, err := svc.CreateAdmin(context.Background(), superAdmin(), "sales-desk", "orchestra7", domain.RoleAdminEditor)
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "sales-desk", "orchestra8")
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)
}

func TestLogin_UnknownUserSameError(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := NewService(repo, nil)

	_, err := svc.CreateAdmin(context.Background(), superAdmin(), "sales-desk", "orchestra7", domain.RoleAdminEditor)
	require.NoError(t, err)

	_, wrongPass := svc.Login(context.Background(), "sales-desk", "nope-nope")
	_, unknownUser := svc.Login(context.Background(), "ghost", "orchestra7")
	require.ErrorIs(t, wrongPass, ports.ErrInvalidCredentials)
	require.ErrorIs(t, unknownUser, ports.ErrInvalidCredentials)
	require.Equal(t, wrongPass.Error(), unknownUser.Error())
}

func TestLogin_EmptyInput(t *testing.T) {
	svc := NewService(newFakeAdminRepo(), nil)
	_, err := svc.Login(context.Background(), "", "orchestra7")
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)
	_, err = svc.Login(context.Background(), "sales-desk", "")
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)
}

func TestLogin_RecordLoginFailureStillSucceeds(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := NewService(repo, nil)

	_, err := svc.CreateAdmin(context.Background(), superAdmin(), "sales-desk", "orchestra7", domain.RoleAdminEditor)
	require.NoError(t, err)

	repo.loginFails = errors.New("column missing")
	admin, err := svc.Login(context.Background(), "sales-desk", "orchestra7")
	require.NoError(t, err)
	require.NotNil(t, admin.LastLogin)
}

func TestCreateAdmin_DeniedForNonSuperAdmin(t *testing.T) {
	svc := NewService(newFakeAdminRepo(), nil)

	editor := &domain.Admin{ID: "adm-2", Username: "editor", Role: domain.RoleAdminEditor}
	viewer := &domain.Admin{ID: "adm-3", Username: "viewer", Role: domain.RoleAdminViewer}

	_, err := svc.CreateAdmin(context.Background(), editor, "x", "orchestra7", domain.RoleAdminViewer)
	require.ErrorIs(t, err, ErrAccessDenied)
	_, err = svc.CreateAdmin(context.Background(), viewer, "x", "orchestra7", domain.RoleAdminViewer)
	require.ErrorIs(t, err, ErrAccessDenied)
	_, err = svc.CreateAdmin(context.Background(), nil, "x", "orchestra7", domain.RoleAdminViewer)
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreateAdmin_WeakPassword(t *testing.T) {
	svc := NewService(newFakeAdminRepo(), nil)
	_, err := svc.CreateAdmin(context.Background(), superAdmin(), "sales-desk", "short", domain.RoleAdminEditor)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateAdmin_DuplicateUsername(t *testing.T) {
	svc := NewService(newFakeAdminRepo(), nil)

	_, err := svc.CreateAdmin(context.Background(), superAdmin(), "sales-desk", "orchestra7", domain.RoleAdminEditor)
	require.NoError(t, err)
	_, err = svc.CreateAdmin(context.Background(), superAdmin(), "sales-desk", "different8", domain.RoleAdminViewer)
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, ports.ErrUsernameTaken)
}

func TestListAdmins(t *testing.T) {
	svc := NewService(newFakeAdminRepo(), nil)

	_, err := svc.CreateAdmin(context.Background(), superAdmin(), "sales-desk", "orchestra7", domain.RoleAdminEditor)
	require.NoError(t, err)

	admins, err := svc.ListAdmins(context.Background(), superAdmin())
	require.NoError(t, err)
	require.Len(t, admins, 1)
	require.Empty(t, admins[0].PasswordHash)

	editor := &domain.Admin{ID: "adm-2", Role: domain.RoleAdminEditor}
	_, err = svc.ListAdmins(context.Background(), editor)
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestDeleteAdmin(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := NewService(repo, nil)

	created, err := svc.CreateAdmin(context.Background(), superAdmin(), "sales-desk", "orchestra7", domain.RoleAdminEditor)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAdmin(context.Background(), superAdmin(), created.ID))
	require.NotContains(t, repo.admins, created.ID)
}

func TestDeleteAdmin_SelfDeletionRefusedForEveryRole(t *testing.T) {
	svc := NewService(newFakeAdminRepo(), nil)

	for _, role := range []domain.Role{domain.RoleSuperAdmin, domain.RoleAdminEditor, domain.RoleAdminViewer} {
		self := &domain.Admin{ID: "adm-self", Username: "self", Role: role}
		err := svc.DeleteAdmin(context.Background(), self, "adm-self")
		require.ErrorIs(t, err, ErrSelfDeletion, "role %s", role)
	}
}

func TestDeleteAdmin_Denied(t *testing.T) {
	svc := NewService(newFakeAdminRepo(), nil)

	editor := &domain.Admin{ID: "adm-2", Role: domain.RoleAdminEditor}
	require.ErrorIs(t, svc.DeleteAdmin(context.Background(), editor, "adm-9"), ErrAccessDenied)
	require.ErrorIs(t, svc.DeleteAdmin(context.Background(), nil, "adm-9"), ErrAccessDenied)
}

func TestDeleteAdmin_NotFound(t *testing.T) {
	svc := NewService(newFakeAdminRepo(), nil)
	require.ErrorIs(t, svc.DeleteAdmin(context.Background(), superAdmin(), "adm-missing"), ports.ErrNotFound)
}
