package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	adminsmapper "github.com/elevate-mobility/orderdesk/internal/domains/admins/adapters/http/mapper"
	"github.com/elevate-mobility/orderdesk/internal/validation"
)

// Post /api/auth/login
func (api *API) Login(c *gin.Context) {
	var payload validation.LoginRequest
	if err := validation.BindAndValidate(c, &payload, api.validate); err != nil {
		return
	}
	admin, err := api.admins.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := api.sessions.Login(c.Request.Context(), admin); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, adminsmapper.FromDomainAdmin(admin))
}

// Post /api/auth/logout
func (api *API) Logout(c *gin.Context) {
	api.sessions.Logout(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// Get /api/auth/session
// Reports the current principal, if any, plus the one-shot expiry flag.
func (api *API) Session(c *gin.Context) {
	// Current first: it re-derives TTL validity and may raise the flag.
	admin := api.sessions.Current()
	expired := api.sessions.Expired()
	if admin == nil {
		c.JSON(http.StatusOK, gin.H{"admin": nil, "sessionExpired": expired})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"admin":          adminsmapper.FromDomainAdmin(admin),
		"sessionExpired": false,
	})
}

// Post /api/auth/expiry-ack
func (api *API) AcknowledgeExpiry(c *gin.Context) {
	api.sessions.AcknowledgeExpiry()
	c.Status(http.StatusNoContent)
}
