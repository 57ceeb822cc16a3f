// internal/app/features/products/routes.go
package products

import (
	"github.com/bigkoko/kokoadmin/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the product screens (typically at "/dashboard/products").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Get("/", h.ServeList)
		pr.Get("/{id}", h.ServeView)
		pr.Get("/{id}/edit", h.ServeEdit)
		pr.Post("/{id}/edit", h.HandleEdit)
		pr.Post("/{id}/delete", h.HandleDelete)
	})

	return r
}
