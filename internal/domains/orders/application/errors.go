package application

import (
	"errors"
	"fmt"

	"github.com/elevate-mobility/orderdesk/internal/domains/orders/domain"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid order input")
	// ErrAccessDenied signals the acting admin's role does not permit the
	// operation. Stored state is unaffected.
	ErrAccessDenied = errors.New("access denied")
	// ErrInvalidTransition signals the order is already in a terminal state.
	ErrInvalidTransition = errors.New("order transition not allowed")
	// ErrStorage wraps failures of the backing store; the operation is
	// treated as not applied.
	ErrStorage = errors.New("order storage failure")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyName) ||
		errors.Is(err, domain.ErrEmptyEmail) ||
		errors.Is(err, domain.ErrEmptyPhone) ||
		errors.Is(err, domain.ErrEmptyAddress) ||
		errors.Is(err, domain.ErrEmptyProduct) ||
		errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, domain.ErrInvalidPaymentMethod) ||
		errors.Is(err, domain.ErrInvalidStatus) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
