package ports

import (
	"context"

	"github.com/elevate-mobility/orderdesk/internal/domains/admins/domain"
)

// Service exposes credential and account-management use cases to adapters.
// Every returned Admin has its password hash stripped.
type Service interface {
	Login(ctx context.Context, username, password string) (*domain.Admin, error)
	CreateAdmin(ctx context.Context, actor *domain.Admin, username, password string, role domain.Role) (*domain.Admin, error)
	ListAdmins(ctx context.Context, actor *domain.Admin) ([]*domain.Admin, error)
	DeleteAdmin(ctx context.Context, actor *domain.Admin, id string) error
}
