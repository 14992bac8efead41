// Package authz holds the single role/action permission table consulted by
// every mutating entry point. Call sites must not branch on role strings
// themselves.
package authz

import (
	adminsdomain "github.com/elevate-mobility/orderdesk/internal/domains/admins/domain"
)

// Action enumerates the privileged operations subject to the policy.
type Action string

const (
	ActionConfirmOrder        Action = "confirm_order"
	ActionCancelOrder         Action = "cancel_order"
	ActionCreateAdmin         Action = "create_admin"
	ActionDeleteAdmin         Action = "delete_admin"
	ActionViewSuperAdminPanel Action = "view_super_admin_panel"
)

var permissions = map[adminsdomain.Role]map[Action]bool{
	adminsdomain.RoleSuperAdmin: {
		ActionConfirmOrder:        true,
		ActionCancelOrder:         true,
		ActionCreateAdmin:         true,
		ActionDeleteAdmin:         true,
		ActionViewSuperAdminPanel: true,
	},
	adminsdomain.RoleAdminEditor: {
		ActionConfirmOrder: true,
		ActionCancelOrder:  true,
	},
	adminsdomain.RoleAdminViewer: {},
}

// Permit reports whether the role may perform the action. Unknown roles and
// unknown actions are always denied.
func Permit(role adminsdomain.Role, action Action) bool {
	return permissions[role][action]
}
