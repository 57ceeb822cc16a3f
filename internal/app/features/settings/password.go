// internal/app/features/settings/password.go
package settings

import (
	"net/http"

	"github.com/bigkoko/kokoadmin/internal/app/system/auth"
	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
	"github.com/bigkoko/kokoadmin/internal/app/system/inputval"
	"github.com/bigkoko/kokoadmin/internal/app/system/limits"
	"github.com/bigkoko/kokoadmin/internal/app/system/timeouts"
	"github.com/bigkoko/kokoadmin/internal/app/system/viewdata"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// HandlePassword handles POST /dashboard/settings/password. The backend
// checks the current password.
func (h *Handler) HandlePassword(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", pageURL)
		return
	}

	// passwords are taken verbatim; surrounding spaces are significant
	in := passwordInput{
		Current: r.FormValue("currentPassword"),
		New:     r.FormValue("newPassword"),
		Confirm: r.FormValue("confirmPassword"),
	}

	if res := inputval.Validate(in); res.HasErrors() {
		h.passwordError(w, r, u, http.StatusBadRequest, res.First())
		return
	}
	if in.New != in.Confirm {
		h.passwordError(w, r, u, http.StatusBadRequest, "New passwords do not match!")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "change password")
	defer cancel()

	err := h.Settings.ChangePassword(ctx, u.ID, models.PasswordChange{CurrentPassword: in.Current, NewPassword: in.New})
	if err != nil {
		if h.ErrLog.SessionExpired(w, r, "change password", err) {
			return
		}
		h.Log.Warn("change password failed", zap.Error(err), zap.String("admin_id", u.ID))
		h.passwordError(w, r, u, backend.StatusOf(err), backend.MessageOf(err, "Failed to Your password, Please try again"))
		return
	}

	h.AuditLog.PasswordChanged(r.Context(), r, u.ID)
	h.Flash.Success(w, r, "Password updated successfully")
	http.Redirect(w, r, pageURL, http.StatusSeeOther)
}

// passwordError re-renders the page with the error under the password form.
// When the profile cannot be reloaded the error goes out as a toast instead.
func (h *Handler) passwordError(w http.ResponseWriter, r *http.Request, u *auth.SessionUser, status int, msg string) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "get profile")
	defer cancel()

	p, err := h.Settings.Profile(ctx, u.ID)
	if err != nil {
		h.Flash.Error(w, r, msg)
		http.Redirect(w, r, pageURL, http.StatusSeeOther)
		return
	}

	data := settingsData{
		BaseVM:  viewdata.NewBaseVM(r, "Settings", "/dashboard"),
		Profile: p,
	}
	data.PasswordError.SetError(msg)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	templates.Render(w, r, "settings", data)
}
