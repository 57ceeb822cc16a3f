// internal/app/features/users/actions.go
package users

import (
	"errors"
	"net/http"
	"strconv"

	userstore "github.com/bigkoko/kokoadmin/internal/app/store/users"
	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
	"github.com/bigkoko/kokoadmin/internal/app/system/formutil"
	"github.com/bigkoko/kokoadmin/internal/app/system/gates"
	"github.com/bigkoko/kokoadmin/internal/app/system/limits"
	"github.com/bigkoko/kokoadmin/internal/app/system/navigation"
	"github.com/bigkoko/kokoadmin/internal/app/system/normalize"
	"github.com/bigkoko/kokoadmin/internal/app/system/timeouts"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func (h *Handler) parse(w http.ResponseWriter, r *http.Request) (back string, ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", listURL)
		return "", false
	}
	return navigation.SafeBackURL(r, navigation.UsersBackURL), true
}

// fail reports a failed mutation with a toast, unless the session expired.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error, fallback, back string) {
	if h.ErrLog.SessionExpired(w, r, op, err) {
		return
	}
	h.Log.Warn(op+" failed", zap.Error(err), zap.String("user_id", chi.URLParam(r, "id")))
	h.Flash.Error(w, r, backend.MessageOf(err, fallback))
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// HandleActive handles POST /dashboard/users/{id}/active.
func (h *Handler) HandleActive(w http.ResponseWriter, r *http.Request) {
	back, ok := h.parse(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	active, err := strconv.ParseBool(formutil.Value(r, "active"))
	if err != nil {
		h.Flash.Error(w, r, "Invalid status.")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "update user")
	defer cancel()

	if _, err := h.Users.SetActive(ctx, id, active); err != nil {
		h.fail(w, r, "update user", err, "Failed to update user", back)
		return
	}

	h.AuditLog.UserUpdated(r.Context(), r, id, "active="+strconv.FormatBool(active))
	h.Flash.Success(w, r, "User updated successfully")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// HandlePlan handles POST /dashboard/users/{id}/plan.
func (h *Handler) HandlePlan(w http.ResponseWriter, r *http.Request) {
	back, ok := h.parse(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	plan := normalize.Filter(r.FormValue("plan"), models.Plans...)
	if plan == "all" {
		h.Flash.Error(w, r, "Choose a valid plan.")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "change plan")
	defer cancel()

	if err := h.Users.ChangePlan(ctx, id, plan); err != nil {
		if errors.Is(err, userstore.ErrUserIDRequired) {
			h.Flash.Error(w, r, err.Error())
			http.Redirect(w, r, back, http.StatusSeeOther)
			return
		}
		h.fail(w, r, "change plan", err, "Failed to update user", back)
		return
	}

	h.AuditLog.UserPlanChanged(r.Context(), r, id, plan)
	h.Flash.Success(w, r, "User updated successfully")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// HandleDelete handles POST /dashboard/users/{id}/delete. Moderators may
// view and suspend accounts but not delete them.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireAdminManager(w, r, "Only admins can delete user accounts.", listURL); !g.OK {
		return
	}
	back, ok := h.parse(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "delete user")
	defer cancel()

	if err := h.Users.Delete(ctx, id); err != nil {
		h.fail(w, r, "delete user", err, "Internal Server Error", back)
		return
	}

	h.AuditLog.UserDeleted(r.Context(), r, id)
	h.Flash.Success(w, r, "User deleted successfully")
	http.Redirect(w, r, back, http.StatusSeeOther)
}
