// internal/app/features/admins/routes.go
package admins

import (
	"github.com/bigkoko/kokoadmin/internal/app/system/auth"
	"github.com/bigkoko/kokoadmin/internal/app/system/authz"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the staff account screens (typically at "/dashboard/admins").
// Moderators are turned away by RequireRole.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole(authz.RoleSuperAdmin, authz.RoleAdmin))

		pr.Get("/", h.ServeList)
		pr.Get("/new", h.ServeNew)
		pr.Post("/", h.HandleCreate)
		pr.Post("/{id}/status", h.HandleStatus)
		pr.Post("/{id}/delete", h.HandleDelete)
	})

	return r
}
