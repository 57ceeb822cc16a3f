// internal/app/features/products/delete.go
package products

import (
	"net/http"

	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
	"github.com/bigkoko/kokoadmin/internal/app/system/gates"
	"github.com/bigkoko/kokoadmin/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleDelete handles POST /dashboard/products/{id}/delete.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireAdminManager(w, r, "Only admins can delete product listings.", listURL); !g.OK {
		return
	}
	id := chi.URLParam(r, "id")
	back := urlutil.SafeReturn(r.FormValue("return"), id, listURL)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "delete product")
	defer cancel()

	if err := h.Products.Delete(ctx, id); err != nil {
		if h.ErrLog.SessionExpired(w, r, "delete product", err) {
			return
		}
		h.Log.Warn("delete product failed", zap.Error(err), zap.String("product_id", id))
		h.Flash.Error(w, r, backend.MessageOf(err, "Failed to delete product"))
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	h.AuditLog.ProductDeleted(r.Context(), r, id)
	h.Flash.Success(w, r, "Product deleted successfully")
	http.Redirect(w, r, back, http.StatusSeeOther)
}
