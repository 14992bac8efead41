package ports

import (
	"context"
	"errors"
	"time"

	"github.com/elevate-mobility/orderdesk/internal/domains/admins/domain"
)

var (
	ErrNotFound = errors.New("admin not found")
	// ErrUsernameTaken surfaces the store's uniqueness constraint.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidCredentials covers both unknown user and wrong password;
	// callers must not distinguish the two.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Repository persists admin accounts.
type Repository interface {
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)
	// List returns all admins ordered by creation time, newest first.
	List(ctx context.Context) ([]*domain.Admin, error)
	Delete(ctx context.Context, id string) error
	RecordLogin(ctx context.Context, id string, at time.Time) error
}
