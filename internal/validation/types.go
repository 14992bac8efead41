package validation

// SubmitOrderRequest is the payload for POST /api/orders, the public
// checkout path.
type SubmitOrderRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
	Address       string `json:"address" validate:"required"`
	Product       string `json:"product" validate:"required"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=credit-card debit-card bank-transfer mobile-banking"`
	// Quantity defaults to 1 when omitted.
	Quantity int `json:"quantity" validate:"omitempty,min=1,max=100"`
}

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateAdminRequest is the payload for POST /api/admins.
type CreateAdminRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=super_admin admin_editor admin_viewer"`
}
