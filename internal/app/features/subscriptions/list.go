// internal/app/features/subscriptions/list.go
package subscriptions

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

// ServeList handles GET /dashboard/subscriptions. The backend returns every
// request at once, so filtering and paging happen here.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list memberships")
	defer cancel()

	all, err := h.Memberships.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list memberships", err, "Failed to fetch Subscriptions", "/dashboard")
		return
	}

	q := query.Get(r, "q")
	status := normalize.Filter(query.Get(r, "status"), models.MembershipStatuses...)

	shown, rg := paging.Paginate(filterMemberships(all, q, status), paging.ParsePage(r), 0)

	data := listData{
		BaseVM:    viewdata.NewBaseVM(r, "Subscriptions", "/dashboard"),
		Query:     q,
		Status:    status,
		Statuses:  models.MembershipStatuses,
		Pending:   len(filterMemberships(all, "", "pending")),
		CanDelete: authz.CanManageAdmins(r),
		Pager:     paging.NewPager(r, rg),
	}
	for _, m := range shown {
		st := statusOf(m)
		data.Rows = append(data.Rows, subscriptionRow{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Plan:      m.Plan,
			Price:     priceLabel(m),
			Status:    st,
			Requested: format.Date(m.CreatedAt),
			Pending:   st == "pending",
		})
	}

	templates.Render(w, r, "subscriptions_list", data)
}

func statusOf(m models.Membership) string {
	return m.StatusKey()
}

func priceLabel(m models.Membership) string {
	if m.Price.IsZero() {
		return "-"
	}
	s := format.Money(m.Price)
	if m.BillingCycle != "" {
		s += " / " + m.BillingCycle
	}
	return s
}

func filterMemberships(all []models.Membership, q, status string) []models.Membership {
	rows := search.Filter(all, q, func(m models.Membership) []string {
		return []string{m.Name, m.Email}
	})
	if status != "all" {
		rows = search.Where(rows, func(m models.Membership) bool { return search.EqualsAnyFold(statusOf(m), status) })
	}
	return rows
}
