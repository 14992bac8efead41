package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	smtpclient "github.com/elevate-mobility/orderdesk/internal/clients/smtp"
	adminslocal "github.com/elevate-mobility/orderdesk/internal/domains/admins/adapters/localfile"
	adminsmemory "github.com/elevate-mobility/orderdesk/internal/domains/admins/adapters/memory"
	adminsobs "github.com/elevate-mobility/orderdesk/internal/domains/admins/adapters/observability"
	adminspostgres "github.com/elevate-mobility/orderdesk/internal/domains/admins/adapters/persistence/postgres"
	adminsapp "github.com/elevate-mobility/orderdesk/internal/domains/admins/application"
	adminsports "github.com/elevate-mobility/orderdesk/internal/domains/admins/ports"
	ordersmemory "github.com/elevate-mobility/orderdesk/internal/domains/orders/adapters/memory"
	"github.com/elevate-mobility/orderdesk/internal/domains/orders/adapters/notification"
	ordersobs "github.com/elevate-mobility/orderdesk/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/elevate-mobility/orderdesk/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/elevate-mobility/orderdesk/internal/domains/orders/application"
	ordersports "github.com/elevate-mobility/orderdesk/internal/domains/orders/ports"
	"github.com/elevate-mobility/orderdesk/internal/httpapi"
	"github.com/elevate-mobility/orderdesk/internal/platform/migrations"
	platformobservability "github.com/elevate-mobility/orderdesk/internal/platform/observability"
	platformpostgres "github.com/elevate-mobility/orderdesk/internal/platform/postgres"
)

// Run boots the order desk HTTP API with observability, repositories, session
// state, and outbound mail wired.
func Run(ctx context.Context) error {
	const serviceName = "orderdesk-api"

	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, closeDB := platformpostgres.ConnectOptional(ctx, cfg.PostgresDSN, logger)
	defer closeDB()
	if db != nil {
		if err := migrations.Run(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	var orderRepo ordersports.Repository
	var adminRepo adminsports.Repository
	if db != nil {
		orderRepo = orderspostgres.NewRepository(db)
		adminRepo = adminspostgres.NewRepository(db)
		logger.Info("repositories configured with postgres")
	} else {
		orderRepo = ordersmemory.NewRepository()
		adminRepo = adminsmemory.NewRepository()
		logger.Warn("POSTGRES_DSN not usable, orders and admins held in memory only")
	}

	notifier := buildNotifier(cfg, logger)

	orderOpts := []ordersapp.Option{ordersapp.WithLogger(logger)}
	if cfg.NotifyTimeout > 0 {
		orderOpts = append(orderOpts, ordersapp.WithNotifyTimeout(cfg.NotifyTimeout))
	}
	orderService := ordersobs.New(
		ordersapp.NewService(orderRepo, notifier, orderOpts...),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	adminService := adminsobs.New(
		adminsapp.NewService(adminRepo, logger),
		adminsobs.WithLogger(logger),
		adminsobs.WithTracer(instruments.Tracer("internal.admins.application")),
		adminsobs.WithMeter(instruments.Meter("internal.admins.application")),
	)

	sessions, err := buildSessionManager(ctx, cfg, logger)
	if err != nil {
		return err
	}

	router := httpapi.NewRouter(
		httpapi.NewAPI(orderService, adminService, sessions),
		otelgin.Middleware(serviceName),
	)
	addr := ":" + cfg.Port
	logger.Info("order desk API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("order desk API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func buildNotifier(cfg Config, logger *slog.Logger) ordersports.Notifier {
	if !cfg.MailConfigured() {
		logger.Warn("SMTP not configured, order notifications disabled")
		return ordersports.NoopNotifier
	}
	client, err := smtpclient.NewClient(smtpclient.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	})
	if err != nil {
		logger.Warn("SMTP client rejected configuration, order notifications disabled", slog.String("error", err.Error()))
		return ordersports.NoopNotifier
	}
	logger.Info("order notifications configured", slog.String("host", cfg.SMTPHost))
	return notification.NewDispatcher(client)
}

func buildSessionManager(ctx context.Context, cfg Config, logger *slog.Logger) (*adminsapp.SessionManager, error) {
	store, err := adminslocal.NewSessionStore(cfg.SessionDir)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare session store: %w", err)
	}
	opts := []adminsapp.SessionOption{adminsapp.WithSessionLogger(logger)}
	if cfg.SessionTTL > 0 {
		opts = append(opts, adminsapp.WithSessionTTL(cfg.SessionTTL))
	}
	sessions := adminsapp.NewSessionManager(store, opts...)
	if err := sessions.Restore(ctx); err != nil {
		logger.Warn("failed to restore persisted session, starting logged out", slog.String("error", err.Error()))
	}
	return sessions, nil
}
