package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Status enumerates order lifecycle states.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// PaymentMethod enumerates the accepted checkout payment options.
type PaymentMethod string

const (
	PaymentCreditCard    PaymentMethod = "credit-card"
	PaymentDebitCard     PaymentMethod = "debit-card"
	PaymentBankTransfer  PaymentMethod = "bank-transfer"
	PaymentMobileBanking PaymentMethod = "mobile-banking"
)

// MaxQuantity caps a single checkout submission.
const MaxQuantity = 100

var (
	ErrEmptyName            = errors.New("customer name is required")
	ErrEmptyEmail           = errors.New("customer email is required")
	ErrEmptyPhone           = errors.New("customer phone is required")
	ErrEmptyAddress         = errors.New("delivery address is required")
	ErrEmptyProduct         = errors.New("product is required")
	ErrInvalidQuantity      = fmt.Errorf("quantity must be between 1 and %d", MaxQuantity)
	ErrInvalidPaymentMethod = errors.New("payment method is invalid")
	ErrInvalidStatus        = errors.New("order status is invalid")
	ErrTransitionClosed     = errors.New("order status is already settled")
)

// Order models one customer purchase request. Orders are never deleted;
// a settled order is retained for history.
type Order struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	Address       string
	Product       string
	Quantity      int
	PaymentMethod PaymentMethod
	Status        Status
	CreatedAt     time.Time
}

// NewOrder validates checkout input and constructs a pending order with a
// freshly generated identifier.
func NewOrder(name, email, phone, address, product string, quantity int, payment PaymentMethod) (*Order, error) {
	if quantity == 0 {
		quantity = 1
	}
	order := &Order{
		ID:            NewOrderID(),
		Name:          strings.TrimSpace(name),
		Email:         strings.TrimSpace(email),
		Phone:         strings.TrimSpace(phone),
		Address:       strings.TrimSpace(address),
		Product:       strings.TrimSpace(product),
		Quantity:      quantity,
		PaymentMethod: payment,
		Status:        StatusPending,
		CreatedAt:     time.Now(),
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// NewOrderID generates an opaque time-based identifier.
func NewOrderID() string {
	return fmt.Sprintf("ord-%d", time.Now().UnixNano())
}

// Validate enforces invariants on the aggregate.
func (o *Order) Validate() error {
	if o.Name == "" {
		return ErrEmptyName
	}
	if o.Email == "" {
		return ErrEmptyEmail
	}
	if o.Phone == "" {
		return ErrEmptyPhone
	}
	if o.Address == "" {
		return ErrEmptyAddress
	}
	if o.Product == "" {
		return ErrEmptyProduct
	}
	if o.Quantity < 1 || o.Quantity > MaxQuantity {
		return ErrInvalidQuantity
	}
	if !isValidPayment(o.PaymentMethod) {
		return ErrInvalidPaymentMethod
	}
	if !isValidStatus(o.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// Terminal reports whether no further transition is defined for the status.
func (s Status) Terminal() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

// Transition moves the order to the target status. Only pending orders may
// move, and only into a terminal state.
func (o *Order) Transition(to Status) error {
	if !isValidStatus(to) || to == StatusPending {
		return ErrInvalidStatus
	}
	if o.Status != StatusPending {
		return ErrTransitionClosed
	}
	o.Status = to
	return nil
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

func isValidPayment(method PaymentMethod) bool {
	switch method {
	case PaymentCreditCard, PaymentDebitCard, PaymentBankTransfer, PaymentMobileBanking:
		return true
	default:
		return false
	}
}
