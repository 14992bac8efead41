package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ordersmapper "github.com/elevate-mobility/orderdesk/internal/domains/orders/adapters/http/mapper"
	ordersdomain "github.com/elevate-mobility/orderdesk/internal/domains/orders/domain"
	"github.com/elevate-mobility/orderdesk/internal/validation"
)

// Post /api/orders
// Public checkout submission.
func (api *API) SubmitOrder(c *gin.Context) {
	var payload validation.SubmitOrderRequest
	if err := validation.BindAndValidate(c, &payload, api.validate); err != nil {
		return
	}
	order, err := ordersdomain.NewOrder(
		payload.Name,
		payload.Email,
		payload.Phone,
		payload.Address,
		payload.Product,
		payload.Quantity,
		ordersdomain.PaymentMethod(payload.PaymentMethod),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	saved, err := api.orders.Submit(c.Request.Context(), order)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": saved.ID})
}

// Get /api/orders
func (api *API) ListOrders(c *gin.Context) {
	orders, err := api.orders.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordersmapper.FromDomainOrders(orders))
}

// Get /api/orders/:id
func (api *API) GetOrder(c *gin.Context) {
	order, err := api.orders.GetOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordersmapper.FromDomainOrder(order))
}

// Post /api/orders/:id/confirm
func (api *API) ConfirmOrder(c *gin.Context) {
	order, err := api.orders.Confirm(c.Request.Context(), c.Param("id"), principal(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordersmapper.FromDomainOrder(order))
}

// Post /api/orders/:id/cancel
func (api *API) CancelOrder(c *gin.Context) {
	order, err := api.orders.Cancel(c.Request.Context(), c.Param("id"), principal(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ordersmapper.FromDomainOrder(order))
}
