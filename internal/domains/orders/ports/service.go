package ports

import (
	"context"

	adminsdomain "github.com/elevate-mobility/orderdesk/internal/domains/admins/domain"
	"github.com/elevate-mobility/orderdesk/internal/domains/orders/domain"
)

// Service exposes order lifecycle use cases to adapters.
type Service interface {
	Submit(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetOrderByID(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	Confirm(ctx context.Context, id string, actor *adminsdomain.Admin) (*domain.Order, error)
	Cancel(ctx context.Context, id string, actor *adminsdomain.Admin) (*domain.Order, error)
}
