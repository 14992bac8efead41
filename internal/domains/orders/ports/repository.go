package ports

import (
	"context"
	"errors"

	"github.com/elevate-mobility/orderdesk/internal/domains/orders/domain"
)

var (
	ErrNotFound = errors.New("order not found")
	// ErrConflict signals a conditional status update found the order
	// outside the expected source status.
	ErrConflict = errors.New("order not in expected status")
)

// Repository persists orders. Orders are only ever inserted and
// transitioned, never deleted.
type Repository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	// List returns all orders ordered by creation time, newest first.
	List(ctx context.Context) ([]*domain.Order, error)
	// TransitionStatus atomically moves the order from the source to the
	// target status. Returns ErrConflict when the stored status differs
	// from the source, leaving the record untouched.
	TransitionStatus(ctx context.Context, id string, from, to domain.Status) (*domain.Order, error)
}
