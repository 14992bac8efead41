package domain

import (
	"errors"
	"strings"
	"time"
)

// Role enumerates the admin privilege tiers.
type Role string

const (
	RoleSuperAdmin  Role = "super_admin"
	RoleAdminEditor Role = "admin_editor"
	RoleAdminViewer Role = "admin_viewer"
)

var (
	ErrEmptyUsername = errors.New("username is required")
	ErrEmptyPassword = errors.New("password is required")
	ErrWeakPassword  = errors.New("password must be at least 8 characters")
	ErrInvalidRole   = errors.New("admin role is invalid")
)

// Valid reports whether the role is one of the known tiers.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdminEditor, RoleAdminViewer:
		return true
	default:
		return false
	}
}

// Admin represents an authenticated operator account.
// PasswordHash never leaves the persistence boundary; every read path
// returns a sanitized copy.
type Admin struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	CreatedBy    string
	CreatedAt    time.Time
	LastLogin    *time.Time
}

// NewAdmin validates the account fields. The password hash is assigned by
// the credential service, not here.
func NewAdmin(id, username string, role Role) (*Admin, error) {
	admin := &Admin{ID: id, Role: role}
	if err := admin.SetUsername(username); err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	return admin, nil
}

// SetUsername trims and validates the username.
func (a *Admin) SetUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrEmptyUsername
	}
	a.Username = username
	return nil
}

// ValidatePassword enforces the plaintext password policy prior to hashing.
func ValidatePassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return ErrEmptyPassword
	}
	if len(password) < 8 {
		return ErrWeakPassword
	}
	return nil
}

// Sanitize returns a copy with the password hash stripped.
func (a *Admin) Sanitize() *Admin {
	if a == nil {
		return nil
	}
	clone := *a
	clone.PasswordHash = ""
	return &clone
}

// Validate re-applies core invariants for persistence.
func (a *Admin) Validate() error {
	if err := a.SetUsername(a.Username); err != nil {
		return err
	}
	if !a.Role.Valid() {
		return ErrInvalidRole
	}
	return nil
}
