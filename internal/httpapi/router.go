// Package httpapi exposes the order desk over HTTP using gin.
package httpapi

import (
	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	adminsapp "github.com/elevate-mobility/orderdesk/internal/domains/admins/application"
	adminsports "github.com/elevate-mobility/orderdesk/internal/domains/admins/ports"
	ordersports "github.com/elevate-mobility/orderdesk/internal/domains/orders/ports"
	"github.com/elevate-mobility/orderdesk/internal/validation"
)

// API bundles the services behind the HTTP handlers.
type API struct {
	orders   ordersports.Service
	admins   adminsports.Service
	sessions *adminsapp.SessionManager
	validate *validatorv10.Validate
}

// NewAPI wires dependencies.
func NewAPI(orders ordersports.Service, admins adminsports.Service, sessions *adminsapp.SessionManager) *API {
	return &API{
		orders:   orders,
		admins:   admins,
		sessions: sessions,
		validate: validation.New(),
	}
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(api *API, middleware ...gin.HandlerFunc) *gin.Engine {
	router := gin.Default()
	for _, mw := range middleware {
		router.Use(mw)
	}

	// Public checkout path: deliberately not behind the session gate.
	router.POST("/api/orders", api.SubmitOrder)

	auth := router.Group("/api/auth")
	{
		auth.POST("/login", api.Login)
		auth.POST("/logout", api.Logout)
		auth.GET("/session", api.Session)
		auth.POST("/expiry-ack", api.AcknowledgeExpiry)
	}

	admin := router.Group("/api", api.requireSession())
	{
		admin.GET("/orders", api.ListOrders)
		admin.GET("/orders/:id", api.GetOrder)
		admin.POST("/orders/:id/confirm", api.ConfirmOrder)
		admin.POST("/orders/:id/cancel", api.CancelOrder)

		admin.GET("/admins", api.ListAdmins)
		admin.POST("/admins", api.CreateAdmin)
		admin.DELETE("/admins/:id", api.DeleteAdmin)
	}

	return router
}
