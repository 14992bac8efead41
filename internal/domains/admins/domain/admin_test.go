package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAdmin(t *testing.T) {
	admin, err := NewAdmin("adm-1", "  root  ", RoleSuperAdmin)
	require.NoError(t, err)
	require.Equal(t, "root", admin.Username)
	require.Equal(t, RoleSuperAdmin, admin.Role)
}

func TestNewAdmin_Invalid(t *testing.T) {
	_, err := NewAdmin("adm-1", "   ", RoleSuperAdmin)
	require.ErrorIs(t, err, ErrEmptyUsername)

	_, err = NewAdmin("adm-1", "root", "operator")
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestValidatePassword(t *testing.T) {
	require.ErrorIs(t, ValidatePassword(""), ErrEmptyPassword)
	require.ErrorIs(t, ValidatePassword("   "), ErrEmptyPassword)
	require.ErrorIs(t, ValidatePassword("seven77"), ErrWeakPassword)
	require.NoError(t, ValidatePassword("orchestra7"))
}

func TestSanitize(t *testing.T) {
	admin := &Admin{ID: "adm-1", Username: "root", PasswordHash: "$2a$10$abc", Role: RoleSuperAdmin}
	clean := admin.Sanitize()
	require.Empty(t, clean.PasswordHash)
	require.Equal(t, "$2a$10$abc", admin.PasswordHash)
	require.Equal(t, admin.ID, clean.ID)

	var missing *Admin
	require.Nil(t, missing.Sanitize())
}

func TestRoleValid(t *testing.T) {
	require.True(t, RoleSuperAdmin.Valid())
	require.True(t, RoleAdminEditor.Valid())
	require.True(t, RoleAdminViewer.Valid())
	require.False(t, Role("operator").Valid())
	require.False(t, Role("").Valid())
}
