package httpapi

import (
	"errors"

	"github.com/gin-gonic/gin"

	adminsapp "github.com/elevate-mobility/orderdesk/internal/domains/admins/application"
	adminsports "github.com/elevate-mobility/orderdesk/internal/domains/admins/ports"
	ordersapp "github.com/elevate-mobility/orderdesk/internal/domains/orders/application"
	ordersdomain "github.com/elevate-mobility/orderdesk/internal/domains/orders/domain"
	ordersports "github.com/elevate-mobility/orderdesk/internal/domains/orders/ports"
	apierrors "github.com/elevate-mobility/orderdesk/internal/shared/errors"
)

// responder converts application sentinels into problem responses. Anything
// unmapped falls through as an internal error.
var responder = apierrors.NewChainedResponder("", mapOrderError, mapAdminError)

func mapOrderError(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, ordersapp.ErrInvalidInput), isOrderValidationError(err):
		return apierrors.ErrValidation.WithDetail(err.Error()), true
	case errors.Is(err, ordersapp.ErrAccessDenied):
		return apierrors.ErrForbidden.WithDetail("your role does not permit this action"), true
	case errors.Is(err, ordersapp.ErrInvalidTransition):
		return apierrors.ErrConflict.WithDetail(err.Error()), true
	case errors.Is(err, ordersports.ErrNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	case errors.Is(err, ordersapp.ErrStorage):
		return apierrors.ErrInternal.WithDetail("order store unavailable"), true
	default:
		return apierrors.ProblemDetail{}, false
	}
}

func mapAdminError(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, adminsports.ErrInvalidCredentials):
		return apierrors.ErrUnauthorized.WithDetail("invalid username or password"), true
	case errors.Is(err, adminsapp.ErrSelfDeletion):
		return apierrors.ErrForbidden.WithDetail(err.Error()), true
	case errors.Is(err, adminsapp.ErrAccessDenied):
		return apierrors.ErrForbidden.WithDetail("your role does not permit this action"), true
	case errors.Is(err, adminsapp.ErrInvalidInput):
		return apierrors.ErrValidation.WithDetail(err.Error()), true
	case errors.Is(err, adminsports.ErrNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	case errors.Is(err, adminsapp.ErrStorage):
		return apierrors.ErrInternal.WithDetail("admin store unavailable"), true
	default:
		return apierrors.ProblemDetail{}, false
	}
}

// isOrderValidationError covers checkout input the bind-level rules cannot
// see, such as whitespace-only fields rejected after trimming.
func isOrderValidationError(err error) bool {
	return errors.Is(err, ordersdomain.ErrEmptyName) ||
		errors.Is(err, ordersdomain.ErrEmptyEmail) ||
		errors.Is(err, ordersdomain.ErrEmptyPhone) ||
		errors.Is(err, ordersdomain.ErrEmptyAddress) ||
		errors.Is(err, ordersdomain.ErrEmptyProduct) ||
		errors.Is(err, ordersdomain.ErrInvalidQuantity) ||
		errors.Is(err, ordersdomain.ErrInvalidPaymentMethod)
}

func respondError(c *gin.Context, err error) {
	responder.RespondError(c, err)
}
