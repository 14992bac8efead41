package ports

import (
	"context"

	"github.com/elevate-mobility/orderdesk/internal/domains/orders/domain"
)

// Notifier sends transition-specific customer messages. Implementations
// make at most one attempt per invocation; callers treat failures as
// best-effort and never couple them to lifecycle success.
type Notifier interface {
	SendConfirmation(ctx context.Context, order *domain.Order) error
	SendCancellation(ctx context.Context, order *domain.Order) error
}

// NoopNotifier is a safe default when no outbound mail is configured.
var NoopNotifier Notifier = noopNotifier{}

type noopNotifier struct{}

func (noopNotifier) SendConfirmation(_ context.Context, _ *domain.Order) error { return nil }
func (noopNotifier) SendCancellation(_ context.Context, _ *domain.Order) error { return nil }
