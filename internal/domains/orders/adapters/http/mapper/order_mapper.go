package mapper

import (
	"time"

	ordersdomain "github.com/elevate-mobility/orderdesk/internal/domains/orders/domain"
)

// Order is the transport-layer shape returned by the order endpoints.
type Order struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	Product       string    `json:"product"`
	Quantity      int       `json:"quantity"`
	PaymentMethod string    `json:"paymentMethod"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// FromDomainOrder converts a domain order to the transport representation.
func FromDomainOrder(order *ordersdomain.Order) Order {
	if order == nil {
		return Order{}
	}
	return Order{
		ID:            order.ID,
		Name:          order.Name,
		Email:         order.Email,
		Phone:         order.Phone,
		Address:       order.Address,
		Product:       order.Product,
		Quantity:      order.Quantity,
		PaymentMethod: string(order.PaymentMethod),
		Status:        string(order.Status),
		CreatedAt:     order.CreatedAt,
	}
}

// FromDomainOrders converts a list of domain orders.
func FromDomainOrders(orders []*ordersdomain.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, FromDomainOrder(order))
	}
	return result
}
