package httpapi

import (
	"github.com/gin-gonic/gin"

	adminsdomain "github.com/elevate-mobility/orderdesk/internal/domains/admins/domain"
	apierrors "github.com/elevate-mobility/orderdesk/internal/shared/errors"
)

const principalKey = "orderdesk.principal"

// requireSession rejects requests when no live principal exists. TTL
// validity is re-derived by the session manager on every lookup.
func (api *API) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		admin := api.sessions.Current()
		if admin == nil {
			responder.Respond(c, apierrors.ErrUnauthorized.WithDetail("no active session"))
			c.Abort()
			return
		}
		c.Set(principalKey, admin)
		c.Next()
	}
}

// principal returns the authenticated admin placed by requireSession.
func principal(c *gin.Context) *adminsdomain.Admin {
	value, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	admin, _ := value.(*adminsdomain.Admin)
	return admin
}
