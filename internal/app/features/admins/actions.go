// internal/app/features/admins/actions.go
package admins

import (
	"net/http"

	"github.com/bigkoko/kokoadmin/internal/app/system/authz"
	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
	"github.com/bigkoko/kokoadmin/internal/app/system/limits"
	"github.com/bigkoko/kokoadmin/internal/app/system/navigation"
	"github.com/bigkoko/kokoadmin/internal/app/system/normalize"
	"github.com/bigkoko/kokoadmin/internal/app/system/timeouts"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const listURL = "/dashboard/admins"

// HandleStatus handles POST /dashboard/admins/{id}/status.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", listURL)
		return
	}
	back := navigation.SafeBackURL(r, navigation.AdminsBackURL)

	status := normalize.Status(r.FormValue("status"))
	if normalize.Filter(status, models.AdminStatuses...) == "all" {
		h.Flash.Error(w, r, "Choose a valid status.")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}
	if _, _, selfID, _ := authz.UserCtx(r); id == selfID && status != "active" {
		h.Flash.Error(w, r, "You cannot deactivate your own account.")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "set admin status")
	defer cancel()

	if err := h.Admins.SetStatus(ctx, id, status); err != nil {
		if h.ErrLog.SessionExpired(w, r, "set admin status", err) {
			return
		}
		h.Log.Warn("set admin status failed", zap.Error(err), zap.String("admin_id", id))
		h.Flash.Error(w, r, backend.MessageOf(err, "Failed to update admin"))
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	h.AuditLog.AdminStatusChanged(r.Context(), r, id, status)
	h.Flash.Success(w, r, "Admin status updated")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// HandleDelete handles POST /dashboard/admins/{id}/delete.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", listURL)
		return
	}
	back := urlutil.SafeReturn(r.FormValue("return"), "", listURL)

	if _, _, selfID, _ := authz.UserCtx(r); id == selfID {
		h.Flash.Error(w, r, "You cannot delete your own account.")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "delete admin")
	defer cancel()

	if err := h.Admins.Delete(ctx, id); err != nil {
		if h.ErrLog.SessionExpired(w, r, "delete admin", err) {
			return
		}
		h.Log.Warn("delete admin failed", zap.Error(err), zap.String("admin_id", id))
		h.Flash.Error(w, r, backend.MessageOf(err, "Failed to delete admin"))
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	h.AuditLog.AdminDeleted(r.Context(), r, id)
	h.Flash.Success(w, r, "Admin deleted successfully")
	http.Redirect(w, r, back, http.StatusSeeOther)
}
