// internal/app/features/subscriptions/routes.go
package subscriptions

import (
	"github.com/bigkoko/kokoadmin/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the subscription screens (typically at "/dashboard/subscriptions").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Get("/", h.ServeList)
		pr.Post("/{id}/approve", h.HandleApprove)
		pr.Post("/{id}/delete", h.HandleDelete)
	})

	return r
}
