// internal/app/features/orders/list.go
package orders

import (
	"net/http"

	"github.com/bigkoko/kokoadmin/internal/app/system/normalize"
	"github.com/bigkoko/kokoadmin/internal/app/system/paging"
	"github.com/bigkoko/kokoadmin/internal/app/system/search"
	"github.com/bigkoko/kokoadmin/internal/app/system/timeouts"
	"github.com/bigkoko/kokoadmin/internal/app/system/viewdata"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/gorilla/csrf"
)

// ServeList handles GET /dashboard/orders. HTMX searches get just the
// table fragment.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	page := paging.ParsePage(r)
	size := paging.Size()

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list orders")
	defer cancel()

	res, err := h.Orders.List(ctx, page, size)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list orders", err, "Failed to fetch Orders, Try again", "/dashboard")
		return
	}

	q := query.Get(r, "q")
	status := normalize.Filter(query.Get(r, "status"), models.OrderStatuses...)

	rows := filterOrders(res.Items, q, status)
	rg := paging.FromBackend(page, size, res.Total, res.TotalPages, len(res.Items))

	data := listData{
		BaseVM:   viewdata.NewBaseVM(r, "Orders", "/dashboard"),
		Query:    q,
		Status:   status,
		Statuses: models.OrderStatuses,
		Pager:    paging.NewPager(r, rg),
	}
	field := csrf.TemplateField(r)
	for _, o := range rows {
		row := toRow(o)
		row.CSRFField = field
		data.Rows = append(data.Rows, row)
	}

	templates.RenderAutoMap(w, r, "orders_list", nil, data)
}

func filterOrders(all []models.Order, q, status string) []models.Order {
	rows := search.Filter(all, q, func(o models.Order) []string {
		return []string{o.Borrower.Name, o.OrderID}
	})
	if status != "all" {
		rows = search.Where(rows, func(o models.Order) bool { return search.EqualsAnyFold(o.Status, status) })
	}
	return rows
}
