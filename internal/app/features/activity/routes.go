// internal/app/features/activity/routes.go
package activity

import (
	"github.com/bigkoko/kokoadmin/internal/app/system/auth"
	"github.com/bigkoko/kokoadmin/internal/app/system/authz"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the audit trail (typically at "/dashboard/activity").
// Moderators cannot see it.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole(authz.RoleSuperAdmin, authz.RoleAdmin))

		pr.Get("/", h.ServeList)
		pr.Get("/export.csv", h.ServeExportCSV)
	})

	return r
}
