package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	adminsdomain "github.com/elevate-mobility/orderdesk/internal/domains/admins/domain"
	"github.com/elevate-mobility/orderdesk/internal/domains/orders/domain"
	"github.com/elevate-mobility/orderdesk/internal/domains/orders/ports"
	"github.com/elevate-mobility/orderdesk/internal/shared/authz"
)

// DefaultNotifyTimeout bounds a single outbound notification attempt.
const DefaultNotifyTimeout = 10 * time.Second

// Service orchestrates the order lifecycle use cases.
type Service struct {
	repo          ports.Repository
	notifier      ports.Notifier
	logger        *slog.Logger
	notifyTimeout time.Duration
}

// Option configures the service.
type Option func(*Service)

// WithLogger sets the logger used for notification failure records.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithNotifyTimeout bounds each notification attempt.
func WithNotifyTimeout(timeout time.Duration) Option {
	return func(s *Service) {
		if timeout > 0 {
			s.notifyTimeout = timeout
		}
	}
}

func NewService(repo ports.Repository, notifier ports.Notifier, opts ...Option) *Service {
	if notifier == nil {
		notifier = ports.NoopNotifier
	}
	s := &Service{
		repo:          repo,
		notifier:      notifier,
		logger:        slog.Default(),
		notifyTimeout: DefaultNotifyTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Submit persists a new pending order. This is the public checkout path and
// is deliberately not behind the authorization policy.
func (s *Service) Submit(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, fmt.Errorf("%w: order is nil", ErrInvalidInput)
	}
	if order.ID == "" {
		order.ID = domain.NewOrderID()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	order.Status = domain.StatusPending
	if err := order.Validate(); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return saved, nil
}

func (s *Service) GetOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return orders, nil
}

// Confirm transitions a pending order to confirmed on behalf of the acting
// admin and dispatches the confirmation notification best-effort.
func (s *Service) Confirm(ctx context.Context, id string, actor *adminsdomain.Admin) (*domain.Order, error) {
	return s.transition(ctx, id, actor, authz.ActionConfirmOrder, domain.StatusConfirmed, s.notifier.SendConfirmation)
}

// Cancel transitions a pending order to cancelled on behalf of the acting
// admin and dispatches the cancellation notification best-effort.
func (s *Service) Cancel(ctx context.Context, id string, actor *adminsdomain.Admin) (*domain.Order, error) {
	return s.transition(ctx, id, actor, authz.ActionCancelOrder, domain.StatusCancelled, s.notifier.SendCancellation)
}

func (s *Service) transition(
	ctx context.Context,
	id string,
	actor *adminsdomain.Admin,
	action authz.Action,
	to domain.Status,
	notify func(context.Context, *domain.Order) error,
) (*domain.Order, error) {
	if actor == nil || !authz.Permit(actor.Role, action) {
		return nil, ErrAccessDenied
	}
	updated, err := s.repo.TransitionStatus(ctx, id, domain.StatusPending, to)
	if err != nil {
		switch {
		case errors.Is(err, ports.ErrNotFound):
			return nil, err
		case errors.Is(err, ports.ErrConflict):
			return nil, fmt.Errorf("%w: %w", ErrInvalidTransition, domain.ErrTransitionClosed)
		default:
			return nil, fmt.Errorf("%w: %w", ErrStorage, err)
		}
	}
	// The transition has committed; a notification failure must not
	// surface to the caller or revert the order.
	s.dispatch(ctx, updated, notify)
	return updated, nil
}

func (s *Service) dispatch(ctx context.Context, order *domain.Order, notify func(context.Context, *domain.Order) error) {
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notifyTimeout)
	defer cancel()
	if err := notify(sendCtx, order); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "order notification failed",
			slog.String("order.id", order.ID),
			slog.String("order.status", string(order.Status)),
			slog.String("error", err.Error()),
		)
	}
}

var _ ports.Service = (*Service)(nil)
