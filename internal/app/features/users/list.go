// internal/app/features/users/list.go
package users

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

// ServeList handles GET /dashboard/users.
//
// Paging is done by the backend; the role, status and search filters
// narrow the page it returned.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	page := paging.ParsePage(r)
	size := paging.Size()

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list users")
	defer cancel()

	res, err := h.Users.List(ctx, page, size)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list users", err, "Failed to fetch users", "/dashboard")
		return
	}

	q := query.Get(r, "q")
	role := normalize.Filter(query.Get(r, "role"), models.UserRoles...)
	status := normalize.Filter(query.Get(r, "status"), "active", "inactive")

	rows := filterUsers(res.Items, q, role, status)
	rg := paging.FromBackend(page, size, res.Total, res.TotalPages, len(res.Items))

	data := listData{
		BaseVM:    viewdata.NewBaseVM(r, "Users", "/dashboard"),
		Query:     q,
		Role:      role,
		Status:    status,
		Roles:     models.UserRoles,
		Plans:     models.Plans,
		CanDelete: authz.CanManageAdmins(r),
		Pager:     paging.NewPager(r, rg),
	}
	for _, u := range rows {
		data.Rows = append(data.Rows, userRow{
			ID:      u.UserID,
			Name:    u.DisplayName(),
			Email:   u.Email,
			Phone:   u.Phone,
			Role:    u.Role,
			Active:  u.Active,
			Plan:    u.Plan,
			Country: u.Country,
			Joined:  format.Date(u.CreatedAt),
		})
	}

	templates.Render(w, r, "users_list", data)
}

func filterUsers(all []models.User, q, role, status string) []models.User {
	rows := search.Filter(all, q, func(u models.User) []string {
		return []string{u.DisplayName(), u.Email}
	})
	if role != "all" {
		rows = search.Where(rows, func(u models.User) bool { return search.EqualsAnyFold(u.Role, role) })
	}
	if status != "all" {
		rows = search.Where(rows, func(u models.User) bool { return u.Status() == status })
	}
	return rows
}
