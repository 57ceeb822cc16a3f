// internal/app/features/admins/list.go
package admins

import (
	"net/http"

	"github.com/bigkoko/kokoadmin/internal/app/system/authz"
	"github.com/bigkoko/kokoadmin/internal/app/system/format"
	"github.com/bigkoko/kokoadmin/internal/app/system/normalize"
	"github.com/bigkoko/kokoadmin/internal/app/system/paging"
	"github.com/bigkoko/kokoadmin/internal/app/system/search"
	"github.com/bigkoko/kokoadmin/internal/app/system/timeouts"
	"github.com/bigkoko/kokoadmin/internal/app/system/viewdata"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
)

// ServeList handles GET /dashboard/admins.
//
// The backend returns every admin in one response; search, the role and
// status filters and pagination all run here.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	_, _, selfID, _ := authz.UserCtx(r)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list admins")
	defer cancel()

	all, err := h.Admins.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list admins", err, "Failed to fetch admins", "/dashboard")
		return
	}

	q := query.Get(r, "q")
	role := normalize.Filter(query.Get(r, "role"), models.AdminRoles...)
	status := normalize.Filter(normalize.Status(query.Get(r, "status")), models.AdminStatuses...)

	rows := filterAdmins(all, q, role, status)
	pageRows, rg := paging.Paginate(rows, paging.ParsePage(r), 0)

	data := listData{
		BaseVM:   viewdata.NewBaseVM(r, "Admins", "/dashboard"),
		Query:    q,
		Role:     role,
		Status:   status,
		Roles:    models.AdminRoles,
		Statuses: models.AdminStatuses,
		Pager:    paging.NewPager(r, rg),
	}
	for _, a := range pageRows {
		data.Rows = append(data.Rows, adminRow{
			ID:      a.AdminID,
			Name:    a.FullName(),
			Email:   a.Email,
			Role:    a.Role,
			Status:  a.Status,
			Country: a.Country,
			Created: format.Date(a.CreatedAt),
			IsSelf:  a.AdminID == selfID,
		})
	}

	templates.Render(w, r, "admins_list", data)
}

func filterAdmins(all []models.Admin, q, role, status string) []models.Admin {
	rows := search.Filter(all, q, func(a models.Admin) []string {
		return []string{a.FullName(), a.Email, a.Role}
	})
	if role != "all" {
		want := models.NormalizeRole(role)
		rows = search.Where(rows, func(a models.Admin) bool { return models.NormalizeRole(a.Role) == want })
	}
	if status != "all" {
		rows = search.Where(rows, func(a models.Admin) bool { return search.EqualsAnyFold(a.Status, status) })
	}
	return rows
}
