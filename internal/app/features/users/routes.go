// internal/app/features/users/routes.go
package users

import (
	"github.com/bigkoko/kokoadmin/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the user screens (typically at "/dashboard/users").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Get("/", h.ServeList)
		pr.Post("/{id}/active", h.HandleActive)
		pr.Post("/{id}/plan", h.HandlePlan)
		pr.Post("/{id}/delete", h.HandleDelete)
	})

	return r
}
