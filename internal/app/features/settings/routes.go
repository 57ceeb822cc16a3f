// internal/app/features/settings/routes.go
package settings

import (
	"github.com/bigkoko/kokoadmin/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the settings page (typically at "/dashboard/settings").
// Every staff role may edit their own profile.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Get("/", h.ServeSettings)
		pr.Post("/profile", h.HandleProfile)
		pr.Post("/password", h.HandlePassword)
	})

	return r
}
