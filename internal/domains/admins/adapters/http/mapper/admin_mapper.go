package mapper

import (
	"time"

	adminsdomain "github.com/elevate-mobility/orderdesk/internal/domains/admins/domain"
)

// Admin is the transport-layer shape returned by the admin endpoints. It
// deliberately has no password field.
type Admin struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Role      string     `json:"role"`
	CreatedBy string     `json:"createdBy,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// FromDomainAdmin converts a domain admin to the transport representation.
func FromDomainAdmin(admin *adminsdomain.Admin) Admin {
	if admin == nil {
		return Admin{}
	}
	return Admin{
		ID:        admin.ID,
		Username:  admin.Username,
		Role:      string(admin.Role),
		CreatedBy: admin.CreatedBy,
		CreatedAt: admin.CreatedAt,
		LastLogin: admin.LastLogin,
	}
}

// FromDomainAdmins converts a list of domain admins.
func FromDomainAdmins(admins []*adminsdomain.Admin) []Admin {
	result := make([]Admin, 0, len(admins))
	for _, admin := range admins {
		result = append(result, FromDomainAdmin(admin))
	}
	return result
}
