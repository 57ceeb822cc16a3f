// internal/domain/models/admin.go
package models

import (
	"strings"
	"time"
)

// Admin roles as the backend spells them.
const (
	AdminRoleSuperAdmin = "Super Admin"
	AdminRoleAdmin      = "Admin"
	AdminRoleModerator  = "Moderator"
)

// AdminRoles lists the roles offered when creating an admin.
var AdminRoles = []string{AdminRoleSuperAdmin, AdminRoleAdmin, AdminRoleModerator}

// AdminStatuses lists the account states an admin can be moved between.
var AdminStatuses = []string{"active", "inactive", "suspended"}

// Admin is a staff account that can sign in to the dashboard.
type Admin struct {
	AdminID   string    `json:"adminId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"createdAt"`
}

// FullName joins first and last name.
func (a Admin) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// NewAdmin is the payload sent to the backend register endpoint.
type NewAdmin struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Password  string `json:"password"`
	Country   string `json:"country"`
}

// NormalizeRole maps a backend role label ("Super Admin", "Admin", ...) to the
// compact lowercase form used for authorization checks.
func NormalizeRole(role string) string {
	r := strings.ToLower(strings.TrimSpace(role))
	r = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(r)
	switch r {
	case "superadmin":
		return "superadmin"
	case "admin":
		return "admin"
	case "moderator":
		return "moderator"
	case "":
		return "admin"
	default:
		return r
	}
}
