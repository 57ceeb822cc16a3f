// internal/app/features/products/list.go
package products

import (
	"net/http"

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

// ServeList handles GET /dashboard/products.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	page := paging.ParsePage(r)
	size := paging.Size()

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list products")
	defer cancel()

	res, err := h.Products.List(ctx, page, size)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list products", err, "Failed to get product status", "/dashboard")
		return
	}

	q := query.Get(r, "q")
	category := normalize.Filter(query.Get(r, "category"), models.ProductCategories...)
	avail := normalize.Filter(query.Get(r, "availability"), "available", "unavailable")

	rows := filterProducts(res.Items, q, category, avail)
	rg := paging.FromBackend(page, size, res.Total, res.TotalPages, len(res.Items))

	data := listData{
		BaseVM:       viewdata.NewBaseVM(r, "Products", "/dashboard"),
		Query:        q,
		Category:     category,
		Availability: avail,
		Categories:   models.ProductCategories,
		Pager:        paging.NewPager(r, rg),
	}
	for _, p := range rows {
		row := productRow{
			ID:        p.ID,
			Name:      p.ItemName,
			Category:  p.Category,
			Condition: p.Condition,
			Daily:     format.Money(p.DailyPricing),
			Cover:     p.Cover(),
			Available: p.IsAvailable,
			Lent:      p.IsLent,
		}
		if p.Owner != nil {
			row.Owner = p.Owner.Name
		}
		data.Rows = append(data.Rows, row)
	}

	templates.Render(w, r, "products_list", data)
}

func filterProducts(all []models.Product, q, category, avail string) []models.Product {
	rows := search.Filter(all, q, func(p models.Product) []string {
		return []string{p.ItemName}
	})
	if category != "all" {
		rows = search.Where(rows, func(p models.Product) bool { return search.EqualsAnyFold(p.Category, category) })
	}
	if avail != "all" {
		want := avail == "available"
		rows = search.Where(rows, func(p models.Product) bool { return p.IsAvailable == want })
	}
	return rows
}
