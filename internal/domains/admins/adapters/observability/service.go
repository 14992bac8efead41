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
	adminsports "github.com/elevate-mobility/orderdesk/internal/domains/admins/ports"
)

const tracerName = "github.com/elevate-mobility/orderdesk/internal/domains/admins/adapters/observability/service"

// Service decorates the credential service with tracing, logging, and
// metrics. Usernames are logged; passwords and hashes never are.
type Service struct {
	inner  adminsports.Service
	tracer trace.Tracer
	logger *slog.Logger
	logins metric.Int64Counter
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
		if m != nil {
			s.logins, _ = m.Int64Counter("admins.service.logins", metric.WithDescription("Number of login attempts"))
		}
	}
}

// New wraps the core admin service.
func New(inner adminsports.Service, opts ...Option) adminsports.Service {
	s := &Service{
		inner:  inner,
		tracer: nooptrace.NewTracerProvider().Tracer(tracerName),
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

func (s *Service) Login(ctx context.Context, username, password string) (*adminsdomain.Admin, error) {
	ctx, span := s.tracer.Start(ctx, "AdminService.Login", trace.WithAttributes(attribute.String("admin.username", username)))
	defer span.End()

	admin, err := s.inner.Login(ctx, username, password)
	if s.logins != nil {
		s.logins.Add(ctx, 1, metric.WithAttributes(attribute.Bool("login.success", err == nil)))
	}
	if err != nil {
		return nil, s.handleError(ctx, span, err, "login failed", slog.String("admin.username", username))
	}
	s.logInfo(ctx, "admin logged in",
		slog.String("admin.username", admin.Username), slog.String("admin.role", string(admin.Role)))
	return admin, nil
}

func (s *Service) CreateAdmin(ctx context.Context, actor *adminsdomain.Admin, username, password string, role adminsdomain.Role) (*adminsdomain.Admin, error) {
	ctx, span := s.tracer.Start(ctx, "AdminService.CreateAdmin",
		trace.WithAttributes(attribute.String("admin.username", username), attribute.String("admin.role", string(role))))
	defer span.End()

	created, err := s.inner.CreateAdmin(ctx, actor, username, password, role)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create admin", slog.String("admin.username", username))
	}
	s.logInfo(ctx, "admin created",
		slog.String("admin.id", created.ID), slog.String("admin.role", string(created.Role)))
	return created, nil
}

func (s *Service) ListAdmins(ctx context.Context, actor *adminsdomain.Admin) ([]*adminsdomain.Admin, error) {
	ctx, span := s.tracer.Start(ctx, "AdminService.ListAdmins")
	defer span.End()

	admins, err := s.inner.ListAdmins(ctx, actor)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list admins")
	}
	span.SetAttributes(attribute.Int("admins.count", len(admins)))
	return admins, nil
}

func (s *Service) DeleteAdmin(ctx context.Context, actor *adminsdomain.Admin, id string) error {
	ctx, span := s.tracer.Start(ctx, "AdminService.DeleteAdmin", trace.WithAttributes(attribute.String("admin.id", id)))
	defer span.End()

	if err := s.inner.DeleteAdmin(ctx, actor, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete admin", slog.String("admin.id", id))
	}
	s.logInfo(ctx, "admin deleted", slog.String("admin.id", id))
	return nil
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
		s.logger.LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
	}
	return err
}

var _ adminsports.Service = (*Service)(nil)
