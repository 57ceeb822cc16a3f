// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/bigkoko/kokoadmin/internal/app/system/auditlog"
	"github.com/bigkoko/kokoadmin/internal/app/system/auth"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	AuditLog   *auditlog.Logger
}

func NewHandler(sessionMgr *auth.SessionManager, auditLog *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		SessionMgr: sessionMgr,
		AuditLog:   auditLog,
	}
}

// ServeLogout handles GET and POST /logout. With ?expired=1 the sign-out
// was forced by the backend rejecting the session token.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	expired := query.Get(r, "expired") != ""

	var adminID string
	if u, ok := auth.CurrentUser(r); ok {
		adminID = u.ID
	}
	if adminID != "" || expired {
		if expired {
			h.AuditLog.SessionExpired(r.Context(), r, adminID)
		} else {
			h.AuditLog.Logout(r.Context(), r, adminID)
		}
	}

	if err := h.SessionMgr.SignOut(w, r); err != nil {
		h.Log.Error("logout: save session", zap.Error(err))
	}

	dest := "/login"
	if expired {
		dest = "/login?expired=1"
	}

	// HTMX handling: use HX-Redirect to force a client-side navigation.
	if r.Header.Get("HX-Request") != "" {
		w.Header().Set("HX-Redirect", dest)
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, dest, http.StatusSeeOther)
}
