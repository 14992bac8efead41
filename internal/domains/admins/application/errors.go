package application

import (
	"errors"
	"fmt"

	"github.com/elevate-mobility/orderdesk/internal/domains/admins/domain"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid admin input")
	// ErrAccessDenied signals the acting admin's role does not permit the
	// operation.
	ErrAccessDenied = errors.New("access denied")
	// ErrSelfDeletion refuses deleting the acting admin's own account,
	// regardless of role.
	ErrSelfDeletion = errors.New("an admin cannot delete its own account")
	// ErrStorage wraps failures of the backing store.
	ErrStorage = errors.New("admin storage failure")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyUsername) ||
		errors.Is(err, domain.ErrEmptyPassword) ||
		errors.Is(err, domain.ErrWeakPassword) ||
		errors.Is(err, domain.ErrInvalidRole) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
