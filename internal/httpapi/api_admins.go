package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	adminsmapper "github.com/elevate-mobility/orderdesk/internal/domains/admins/adapters/http/mapper"
	adminsdomain "github.com/elevate-mobility/orderdesk/internal/domains/admins/domain"
	"github.com/elevate-mobility/orderdesk/internal/validation"
)

// Get /api/admins
func (api *API) ListAdmins(c *gin.Context) {
	admins, err := api.admins.ListAdmins(c.Request.Context(), principal(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, adminsmapper.FromDomainAdmins(admins))
}

// Post /api/admins
func (api *API) CreateAdmin(c *gin.Context) {
	var payload validation.CreateAdminRequest
	if err := validation.BindAndValidate(c, &payload, api.validate); err != nil {
		return
	}
	created, err := api.admins.CreateAdmin(
		c.Request.Context(),
		principal(c),
		payload.Username,
		payload.Password,
		adminsdomain.Role(payload.Role),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, adminsmapper.FromDomainAdmin(created))
}

// Delete /api/admins/:id
func (api *API) DeleteAdmin(c *gin.Context) {
	if err := api.admins.DeleteAdmin(c.Request.Context(), principal(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
