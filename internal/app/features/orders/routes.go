// internal/app/features/orders/routes.go
package orders

import (
	"github.com/bigkoko/kokoadmin/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the order screens (typically at "/dashboard/orders").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Get("/", h.ServeList)
		pr.Get("/{id}", h.ServeView)
		pr.Post("/{id}/status", h.HandleStatus)
	})

	return r
}
