// internal/app/features/subscriptions/actions.go
package subscriptions

import (
	"net/http"

	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
	"github.com/bigkoko/kokoadmin/internal/app/system/gates"
	"github.com/bigkoko/kokoadmin/internal/app/system/limits"
	"github.com/bigkoko/kokoadmin/internal/app/system/navigation"
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
	return navigation.SafeBackURL(r, navigation.SubscriptionsBackURL), true
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error, fallback, back string) {
	if h.ErrLog.SessionExpired(w, r, op, err) {
		return
	}
	h.Log.Warn(op+" failed", zap.Error(err), zap.String("membership_id", chi.URLParam(r, "id")))
	h.Flash.Error(w, r, backend.MessageOf(err, fallback))
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// HandleApprove handles POST /dashboard/subscriptions/{id}/approve.
//
// The request is looked up again rather than trusting plan and user from
// the form, since approving moves a real account onto a paid plan.
func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	back, ok := h.parse(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "approve membership")
	defer cancel()

	all, err := h.Memberships.List(ctx)
	if err != nil {
		h.fail(w, r, "approve membership", err, "Failed to fetch Subscriptions", back)
		return
	}
	m, found := findMembership(all, id)
	if !found {
		h.Flash.Error(w, r, "Subscription not found.")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}
	if statusOf(m) == "approved" {
		h.Flash.Info(w, r, "Subscription is already approved.")
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	if err := h.Memberships.Approve(ctx, m); err != nil {
		h.fail(w, r, "approve membership", err, "Failed to approve subscription", back)
		return
	}

	h.AuditLog.UserPlanChanged(r.Context(), r, m.UserID, m.Plan)
	h.Flash.Success(w, r, "Subscription approved")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// HandleDelete handles POST /dashboard/subscriptions/{id}/delete.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireAdminManager(w, r, "Only admins can delete subscriptions.", listURL); !g.OK {
		return
	}
	back, ok := h.parse(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "delete membership")
	defer cancel()

	if err := h.Memberships.Delete(ctx, id); err != nil {
		h.fail(w, r, "delete membership", err, "Failed to delete subscription", back)
		return
	}

	h.AuditLog.SubscriptionDeleted(r.Context(), r, id)
	h.Flash.Success(w, r, "Subscription deleted successful")
	http.Redirect(w, r, back, http.StatusSeeOther)
}

func findMembership(all []models.Membership, id string) (models.Membership, bool) {
	for _, m := range all {
		if m.ID == id {
			return m, true
		}
	}
	return models.Membership{}, false
}
