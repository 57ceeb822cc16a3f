// internal/app/features/admins/new.go
package admins

import (
	"net/http"

	"github.com/bigkoko/kokoadmin/internal/app/system/authz"
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

// ServeNew renders the "Add Admin" form.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "admin_new", formData{
		BaseVM: viewdata.NewBaseVM(r, "Add Admin", "/dashboard/admins"),
		Role:   models.AdminRoleModerator,
		Roles:  models.AdminRoles,
	})
}

// HandleCreate processes the Add Admin form POST.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/dashboard/admins")
		return
	}

	in := createAdminInput{
		FirstName: normalize.Name(r.FormValue("firstName")),
		LastName:  normalize.Name(r.FormValue("lastName")),
		Email:     normalize.Email(r.FormValue("email")),
		Role:      formutil.Value(r, "role"),
		Password:  r.FormValue("password"),
		Country:   normalize.Name(r.FormValue("country")),
	}

	reRender := func(status int, msg string) {
		data := formData{
			BaseVM:    viewdata.NewBaseVM(r, "Add Admin", "/dashboard/admins"),
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Email:     in.Email,
			Role:      in.Role,
			Country:   in.Country,
			Roles:     models.AdminRoles,
		}
		data.SetError(msg)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		templates.Render(w, r, "admin_new", data)
	}

	if res := inputval.Validate(in); res.HasErrors() {
		reRender(http.StatusBadRequest, res.First())
		return
	}
	if !authz.CanGrant(r, in.Role) {
		reRender(http.StatusForbidden, "Only a super admin can add another super admin.")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "create admin")
	defer cancel()

	err := h.Admins.Create(ctx, models.NewAdmin{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Role:      in.Role,
		Password:  in.Password,
		Country:   in.Country,
	})
	if err != nil {
		if h.ErrLog.SessionExpired(w, r, "create admin", err) {
			return
		}
		h.Log.Warn("create admin failed", zap.Error(err), zap.String("email", in.Email))
		reRender(backend.StatusOf(err), backend.MessageOf(err, "Failed to add admin"))
		return
	}

	h.AuditLog.AdminCreated(r.Context(), r, in.Email, in.Role)
	h.Flash.Success(w, r, "Admin added successfully")
	http.Redirect(w, r, "/dashboard/admins", http.StatusSeeOther)
}
