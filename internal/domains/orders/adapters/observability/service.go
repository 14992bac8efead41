package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	adminsdomain "github.com/elevate-mobility/orderdesk/internal/domains/admins/domain"
	ordersdomain "github.com/elevate-mobility/orderdesk/internal/domains/orders/domain"
	ordersports "github.com/elevate-mobility/orderdesk/internal/domains/orders/ports"
)

const tracerName = "github.com/elevate-mobility/orderdesk/internal/domains/orders/adapters/observability/service"

// Service decorates the order lifecycle service with tracing, logging, and
// metrics.
type Service struct {
	inner   ordersports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core order service.
func New(inner ordersports.Service, opts ...Option) ordersports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) Submit(ctx context.Context, order *ordersdomain.Order) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.Submit",
		trace.WithAttributes(attribute.String("order.product", order.Product), attribute.Int("order.quantity", order.Quantity)))
	defer span.End()

	s.logInfo(ctx, "submitting order", slog.String("order.product", order.Product))
	result, err := s.inner.Submit(ctx, order)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to submit order", slog.String("order.product", order.Product))
	}
	s.metrics.recordSubmitted(ctx)
	s.logInfo(ctx, "order submitted", slog.String("order.id", result.ID))
	return result, nil
}

func (s *Service) GetOrderByID(ctx context.Context, id string) (*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetOrderByID", trace.WithAttributes(attribute.String("order.id", id)))
	defer span.End()

	result, err := s.inner.GetOrderByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.String("order.id", id))
	}
	return result, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]*ordersdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ListOrders")
	defer span.End()

	result, err := s.inner.ListOrders(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("orders.count", len(result)))
	return result, nil
}

func (s *Service) Confirm(ctx context.Context, id string, actor *adminsdomain.Admin) (*ordersdomain.Order, error) {
	return s.transition(ctx, "OrderService.Confirm", id, actor, s.inner.Confirm)
}

func (s *Service) Cancel(ctx context.Context, id string, actor *adminsdomain.Admin) (*ordersdomain.Order, error) {
	return s.transition(ctx, "OrderService.Cancel", id, actor, s.inner.Cancel)
}

func (s *Service) transition(
	ctx context.Context,
	spanName, id string,
	actor *adminsdomain.Admin,
	call func(context.Context, string, *adminsdomain.Admin) (*ordersdomain.Order, error),
) (*ordersdomain.Order, error) {
	attrs := []attribute.KeyValue{attribute.String("order.id", id)}
	if actor != nil {
		attrs = append(attrs, attribute.String("admin.role", string(actor.Role)))
	}
	ctx, span := s.tracer.Start(ctx, spanName, trace.WithAttributes(attrs...))
	defer span.End()

	s.logInfo(ctx, "transitioning order", slog.String("order.id", id))
	result, err := call(ctx, id, actor)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to transition order", slog.String("order.id", id))
	}
	s.metrics.recordTransitioned(ctx, result.Status)
	s.logInfo(ctx, "order transitioned",
		slog.String("order.id", result.ID), slog.String("order.status", string(result.Status)))
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if s.logger != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	}
	return err
}

type serviceMetrics struct {
	ordersSubmitted    metric.Int64Counter
	ordersTransitioned metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	submitted, _ := m.Int64Counter("orders.service.submitted", metric.WithDescription("Number of orders submitted"))
	transitioned, _ := m.Int64Counter("orders.service.transitioned", metric.WithDescription("Number of order status transitions"))
	return serviceMetrics{ordersSubmitted: submitted, ordersTransitioned: transitioned}
}

func (m serviceMetrics) recordSubmitted(ctx context.Context) {
	if m.ordersSubmitted != nil {
		m.ordersSubmitted.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordTransitioned(ctx context.Context, status ordersdomain.Status) {
	if m.ordersTransitioned != nil {
		m.ordersTransitioned.Add(ctx, 1, metric.WithAttributes(attribute.String("order.status", string(status))))
	}
}

var _ ordersports.Service = (*Service)(nil)
