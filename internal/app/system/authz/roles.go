// internal/app/system/authz/roles.go
package authz

import (
	"net/http"
	"strings"

	"github.com/bigkoko/kokoadmin/internal/domain/models"
)

// StaffRoles lists the session roles, most privileged first.
var StaffRoles = []string{RoleSuperAdmin, RoleAdmin, RoleModerator}

// rank orders staff roles. Anything unrecognised ranks zero.
func rank(role string) int {
	if strings.TrimSpace(role) == "" {
		return 0
	}
	switch models.NormalizeRole(role) {
	case RoleSuperAdmin:
		return 3
	case RoleAdmin:
		return 2
	case RoleModerator:
		return 1
	}
	return 0
}

// IsStaffRole reports whether role (session or backend spelling) is one of
// the dashboard roles.
func IsStaffRole(role string) bool {
	return rank(role) > 0
}

// Role returns the signed-in staff member's role and whether one is present.
func Role(r *http.Request) (string, bool) {
	role, _, _, ok := UserCtx(r)
	return role, ok
}

// AtLeast reports whether the signed-in user holds min or a stronger role.
func AtLeast(r *http.Request, min string) bool {
	role, ok := Role(r)
	return ok && rank(role) > 0 && rank(role) >= rank(min)
}

// CanGrant reports whether the signed-in user may create a staff account
// with the given backend role label. Nobody hands out a role above their
// own, so only a super admin can add another super admin.
func CanGrant(r *http.Request, backendRole string) bool {
	role, ok := Role(r)
	return ok && IsStaffRole(backendRole) && rank(role) >= rank(backendRole)
}
