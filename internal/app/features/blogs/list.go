// internal/app/features/blogs/list.go
package blogs

import (
	"net/http"

	"github.com/bigkoko/kokoadmin/internal/app/system/authz"
	"github.com/bigkoko/kokoadmin/internal/app/system/navigation"
	"github.com/bigkoko/kokoadmin/internal/app/system/normalize"
	"github.com/bigkoko/kokoadmin/internal/app/system/paging"
	"github.com/bigkoko/kokoadmin/internal/app/system/search"
	"github.com/bigkoko/kokoadmin/internal/app/system/timeouts"
	"github.com/bigkoko/kokoadmin/internal/app/system/viewdata"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

// ServeList handles GET /dashboard/blogs.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list blogs")
	defer cancel()

	all, err := h.Blogs.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list blogs", err, "Failed to fetch blogs", "/dashboard")
		return
	}

	q := query.Get(r, "q")
	status := normalize.Filter(query.Get(r, "status"), statuses...)

	shown, rg := paging.Paginate(filterBlogs(all, q, status), paging.ParsePage(r), 0)

	data := listData{
		BaseVM:    viewdata.NewBaseVM(r, "Blogs", "/dashboard"),
		Query:     q,
		Status:    status,
		Statuses:  statuses,
		CanDelete: authz.CanManageAdmins(r),
		Pager:     paging.NewPager(r, rg),
	}
	for _, b := range shown {
		data.Rows = append(data.Rows, toRow(b))
	}

	templates.Render(w, r, "blogs_list", data)
}

// ServeView handles GET /dashboard/blogs/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "get blog")
	defer cancel()

	b, err := h.Blogs.GetByID(ctx, id)
	if err != nil {
		h.ErrLog.LogBackend(w, r, "get blog", err, "Failed to fetch blog post", listURL)
		return
	}

	templates.Render(w, r, "blog_view", buildView(viewdata.NewBaseVM(r, b.Title, navigation.SafeBackURL(r, navigation.BlogsBackURL)), b, authz.CanManageAdmins(r)))
}

func filterBlogs(all []models.Blog, q, status string) []models.Blog {
	rows := search.Filter(all, q, func(b models.Blog) []string {
		return []string{b.Title, b.Author}
	})
	if status != "all" {
		rows = search.Where(rows, func(b models.Blog) bool { return search.EqualsAnyFold(b.Status, status) })
	}
	return rows
}
