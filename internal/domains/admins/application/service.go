package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/elevate-mobility/orderdesk/internal/domains/admins/domain"
	"github.com/elevate-mobility/orderdesk/internal/domains/admins/ports"
	"github.com/elevate-mobility/orderdesk/internal/shared/authz"
)

// HashCost is the fixed bcrypt cost for stored credentials.
const HashCost = 10

// Service exposes the credential store use cases.
type Service struct {
	repo   ports.Repository
	logger *slog.Logger
}

func NewService(repo ports.Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Login verifies the submitted credentials against the stored hash. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (*domain.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ports.ErrInvalidCredentials
	}
	admin, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ports.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ports.ErrInvalidCredentials
	}
	now := time.Now()
	if err := s.repo.RecordLogin(ctx, admin.ID, now); err != nil {
		// Last-login bookkeeping must not block a successful login.
		s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to record last login",
			slog.String("admin.id", admin.ID), slog.String("error", err.Error()))
	}
	admin.LastLogin = &now
	return admin.Sanitize(), nil
}

// CreateAdmin provisions a new account. Only roles permitted by the policy
// may create admins.
func (s *Service) CreateAdmin(ctx context.Context, actor *domain.Admin, username, password string, role domain.Role) (*domain.Admin, error) {
	if actor == nil || !authz.Permit(actor.Role, authz.ActionCreateAdmin) {
		return nil, ErrAccessDenied
	}
	admin, err := domain.NewAdmin(uuid.NewString(), username, role)
	if err != nil {
		return nil, mapError(err)
	}
	if err := domain.ValidatePassword(password); err != nil {
		return nil, mapError(err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	admin.PasswordHash = string(hash)
	admin.CreatedBy = actor.ID
	admin.CreatedAt = time.Now()

	created, err := s.repo.Create(ctx, admin)
	if err != nil {
		if errors.Is(err, ports.ErrUsernameTaken) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return created.Sanitize(), nil
}

// ListAdmins returns all accounts, newest first, hashes stripped.
func (s *Service) ListAdmins(ctx context.Context, actor *domain.Admin) ([]*domain.Admin, error) {
	if actor == nil || !authz.Permit(actor.Role, authz.ActionViewSuperAdminPanel) {
		return nil, ErrAccessDenied
	}
	admins, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	sanitized := make([]*domain.Admin, 0, len(admins))
	for _, admin := range admins {
		sanitized = append(sanitized, admin.Sanitize())
	}
	return sanitized, nil
}

// DeleteAdmin removes an account. Self-deletion is refused before the
// policy lookup; no role grants it.
func (s *Service) DeleteAdmin(ctx context.Context, actor *domain.Admin, id string) error {
	if actor == nil {
		return ErrAccessDenied
	}
	if actor.ID == id {
		return ErrSelfDeletion
	}
	if !authz.Permit(actor.Role, authz.ActionDeleteAdmin) {
		return ErrAccessDenied
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
