// internal/app/features/contacts/view.go
package contacts

import (
	"net/http"

	"github.com/bigkoko/kokoadmin/internal/app/system/authz"
	"github.com/bigkoko/kokoadmin/internal/app/system/navigation"
	"github.com/bigkoko/kokoadmin/internal/app/system/timeouts"
	"github.com/bigkoko/kokoadmin/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

// ServeView handles GET /dashboard/contacts/{id}: the message and, when
// unanswered, the reply form.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "get contact")
	defer cancel()

	c, err := h.Contacts.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogBackend(w, r, "get contact", err, "Failed to fetch contact", listURL)
		return
	}

	base := viewdata.NewBaseVM(r, "Message from "+c.FullName(), navigation.SafeBackURL(r, navigation.ContactsBackURL))
	templates.Render(w, r, "contact_view", buildView(base, c, authz.CanManageAdmins(r)))
}
