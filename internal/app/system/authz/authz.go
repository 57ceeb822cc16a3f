// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/bigkoko/kokoadmin/internal/app/system/auth"
)

// Staff roles as stored in the session (normalized, lowercase).
const (
	RoleSuperAdmin = "superadmin"
	RoleAdmin      = "admin"
	RoleModerator  = "moderator"
)

// UserCtx returns the user's role (lowercased), name, backend ID, and a found flag.
// If no user is present in context it returns "visitor", "", "", false.
func UserCtx(r *http.Request) (role string, name string, userID string, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok || user.ID == "" {
		return "visitor", "", "", false
	}
	return strings.ToLower(user.Role), user.Name, user.ID, true
}

// IsSuperAdmin reports whether the current request's user is a superadmin.
func IsSuperAdmin(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == RoleSuperAdmin
}

// CanManageAdmins reports whether the user may create, suspend or delete
// other staff accounts. Moderators may not.
func CanManageAdmins(r *http.Request) bool {
	return AtLeast(r, RoleAdmin)
}
