// internal/app/features/contacts/routes.go
package contacts

import (
	"github.com/bigkoko/kokoadmin/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the contact inbox (typically at "/dashboard/contacts").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Get("/", h.ServeList)
		pr.Get("/{id}", h.ServeView)
		pr.Post("/{id}/reply", h.HandleReply)
		pr.Post("/{id}/delete", h.HandleDelete)
	})

	return r
}
