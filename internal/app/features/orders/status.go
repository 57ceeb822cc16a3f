// internal/app/features/orders/status.go
package orders

import (
	"errors"
	"net/http"
	"strings"

	orderstore "github.com/bigkoko/kokoadmin/internal/app/store/orders"
	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
	"github.com/bigkoko/kokoadmin/internal/app/system/formutil"
	"github.com/bigkoko/kokoadmin/internal/app/system/limits"
	"github.com/bigkoko/kokoadmin/internal/app/system/navigation"
	"github.com/bigkoko/kokoadmin/internal/app/system/timeouts"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// HandleStatus handles POST /dashboard/orders/{id}/status.
//
// HTMX posts get the refreshed status cell back; plain form posts redirect
// with a toast.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.HTMXLogBadRequest(w, r, "parse form failed", err, "Invalid form data.", listURL)
		return
	}
	back := navigation.SafeBackURL(r, navigation.OrdersBackURL)
	htmx := r.Header.Get("HX-Request") == "true"

	status := matchStatus(formutil.Value(r, "status"))
	from := formutil.Value(r, "from")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "set order status")
	defer cancel()

	if err := h.Orders.SetStatus(ctx, id, status); err != nil {
		if errors.Is(err, orderstore.ErrInvalidStatus) {
			if htmx {
				http.Error(w, "Choose a valid status.", http.StatusBadRequest)
				return
			}
			h.Flash.Error(w, r, "Choose a valid status.")
			http.Redirect(w, r, back, http.StatusSeeOther)
			return
		}
		if h.ErrLog.SessionExpired(w, r, "set order status", err) {
			return
		}
		h.Log.Warn("set order status failed", zap.Error(err), zap.String("order_id", id))
		msg := backend.MessageOf(err, "Failed to update order status")
		if htmx {
			http.Error(w, msg, backend.StatusOf(err))
			return
		}
		h.Flash.Error(w, r, msg)
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	h.AuditLog.OrderStatusChanged(r.Context(), r, id, from, status)

	if htmx {
		templates.RenderSnippet(w, "order_status_cell", orderRow{
			ID:        id,
			Status:    status,
			Statuses:  models.OrderStatuses,
			CSRFField: csrf.TemplateField(r),
		})
		return
	}
	h.Flash.Success(w, r, "Order status updated to "+status)
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// matchStatus maps form input onto the canonical status spelling; unknown
// values pass through for SetStatus to reject.
func matchStatus(s string) string {
	for _, st := range models.OrderStatuses {
		if strings.EqualFold(strings.TrimSpace(s), st) {
			return st
		}
	}
	return s
}
