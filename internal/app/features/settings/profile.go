// internal/app/features/settings/profile.go
package settings

import (
	"net/http"

	"github.com/bigkoko/kokoadmin/internal/app/system/auth"
	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
	"github.com/bigkoko/kokoadmin/internal/app/system/formutil"
	"github.com/bigkoko/kokoadmin/internal/app/system/inputval"
	"github.com/bigkoko/kokoadmin/internal/app/system/limits"
	"github.com/bigkoko/kokoadmin/internal/app/system/normalize"
	"github.com/bigkoko/kokoadmin/internal/app/system/timeouts"
	"github.com/bigkoko/kokoadmin/internal/app/system/viewdata"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ServeSettings handles GET /dashboard/settings.
func (h *Handler) ServeSettings(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "get profile")
	defer cancel()

	p, err := h.Settings.Profile(ctx, u.ID)
	if err != nil {
		if h.ErrLog.SessionExpired(w, r, "get profile", err) {
			return
		}
		h.ErrLog.LogServerError(w, r, "get profile", err, "Failed to fetch profile data", "/dashboard")
		return
	}

	templates.Render(w, r, "settings", settingsData{
		BaseVM:  viewdata.NewBaseVM(r, "Settings", "/dashboard"),
		Profile: p,
	})
}

// HandleProfile handles POST /dashboard/settings/profile.
func (h *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
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

	p := models.Profile{
		FirstName:     normalize.Name(r.FormValue("firstName")),
		LastName:      normalize.Name(r.FormValue("lastName")),
		Email:         normalize.Email(r.FormValue("email")),
		Phone:         formutil.Value(r, "phone"),
		StreetAddress: formutil.Value(r, "streetAddress"),
		City:          formutil.Value(r, "city"),
		State:         formutil.Value(r, "state"),
		Country:       formutil.Value(r, "country"),
	}
	data := settingsData{
		BaseVM:  viewdata.NewBaseVM(r, "Settings", "/dashboard"),
		Profile: p,
	}
	reRender := func(status int, msg string) {
		data.ProfileError.SetError(msg)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		templates.Render(w, r, "settings", data)
	}

	in := profileInput{FirstName: p.FirstName, LastName: p.LastName, Email: p.Email, Phone: p.Phone, Country: p.Country}
	if res := inputval.Validate(in); res.HasErrors() {
		reRender(http.StatusBadRequest, res.First())
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "update profile")
	defer cancel()

	if err := h.Settings.UpdateProfile(ctx, u.ID, p); err != nil {
		if h.ErrLog.SessionExpired(w, r, "update profile", err) {
			return
		}
		h.Log.Warn("update profile failed", zap.Error(err), zap.String("admin_id", u.ID))
		reRender(backend.StatusOf(err), backend.MessageOf(err, "Failed to Update profile data"))
		return
	}

	// keep the header name in step with the saved profile
	updated := *u
	updated.Name = p.DisplayName()
	updated.Email = p.Email
	if err := h.SessionMgr.SignIn(w, r, updated); err != nil {
		h.Log.Warn("refresh session after profile update", zap.Error(err))
	}

	h.AuditLog.ProfileUpdated(r.Context(), r, u.ID)
	h.Flash.Success(w, r, "Profile updated successfully")
	http.Redirect(w, r, pageURL, http.StatusSeeOther)
}
