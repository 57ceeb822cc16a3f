// Package gates provides handler-level authorization checks.
//
// # Authorization Tiers
//
//  1. Route Middleware (auth.RequireSignedIn, auth.RequireRole)
//     Applied in each feature's routes.go. Every /dashboard route sits
//     behind RequireSignedIn; whole sections that only admin managers may
//     see (admins, activity) sit behind RequireRole.
//
//  2. Handler-Level Gates (this package)
//     Used where one route group mixes access levels: a page any staff
//     member may view but whose mutations need a stronger role. Gates
//     render the error page themselves and return the user context.
//
// Don't use gates in handlers already behind a RequireRole that covers the
// same roles. Use authz.UserCtx(r) there instead.
package gates

import (
	"net/http"

	uierrors "github.com/bigkoko/kokoadmin/internal/app/features/errors"
	"github.com/bigkoko/kokoadmin/internal/app/system/authz"
)

// Result contains the result of an authorization gate check.
type Result struct {
	Role   string
	Name   string
	UserID string
	OK     bool
}

// RequireAuth ensures a user is authenticated.
// If not authenticated, it renders an unauthorized error and returns OK=false.
func RequireAuth(w http.ResponseWriter, r *http.Request, loginURL string) Result {
	role, name, uid, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, loginURL)
		return Result{OK: false}
	}
	return Result{Role: role, Name: name, UserID: uid, OK: true}
}

// RequireAdminManager ensures the user may manage staff accounts
// (superadmin or admin). Moderators get the forbidden page.
func RequireAdminManager(w http.ResponseWriter, r *http.Request, forbiddenMsg, fallbackURL string) Result {
	return RequireAnyRole(w, r, forbiddenMsg, fallbackURL, authz.RoleSuperAdmin, authz.RoleAdmin)
}

// RequireSuperAdmin ensures the user holds the superadmin role.
func RequireSuperAdmin(w http.ResponseWriter, r *http.Request, forbiddenMsg, fallbackURL string) Result {
	return RequireAnyRole(w, r, forbiddenMsg, fallbackURL, authz.RoleSuperAdmin)
}

// RequireAnyRole ensures the user is authenticated and has one of the specified roles.
// If not authenticated, renders unauthorized error.
// If authenticated but role not in allowed list, renders forbidden error.
func RequireAnyRole(w http.ResponseWriter, r *http.Request, forbiddenMsg, fallbackURL string, allowedRoles ...string) Result {
	role, name, uid, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return Result{OK: false}
	}

	for _, allowed := range allowedRoles {
		if role == allowed {
			return Result{Role: role, Name: name, UserID: uid, OK: true}
		}
	}

	uierrors.RenderForbidden(w, r, forbiddenMsg, fallbackURL)
	return Result{OK: false}
}
