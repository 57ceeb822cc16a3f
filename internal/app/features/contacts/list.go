// internal/app/features/contacts/list.go
package contacts

import (
	"net/http"

	"github.com/bigkoko/kokoadmin/internal/app/system/authz"
	"github.com/bigkoko/kokoadmin/internal/app/system/normalize"
	"github.com/bigkoko/kokoadmin/internal/app/system/paging"
	"github.com/bigkoko/kokoadmin/internal/app/system/search"
	"github.com/bigkoko/kokoadmin/internal/app/system/timeouts"
	"github.com/bigkoko/kokoadmin/internal/app/system/viewdata"
	"github.com/bigkoko/kokoadmin/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
)

// ServeList handles GET /dashboard/contacts.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list contacts")
	defer cancel()

	all, err := h.Contacts.List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list contacts", err, "Failed to fetch contacts", "/dashboard")
		return
	}

	q := query.Get(r, "q")
	filter := normalize.Filter(query.Get(r, "filter"), filterReplied, filterUnreplied)

	shown, rg := paging.Paginate(filterContacts(all, q, filter), paging.ParsePage(r), 0)

	data := listData{
		BaseVM:    viewdata.NewBaseVM(r, "Contacts", "/dashboard"),
		Query:     q,
		Filter:    filter,
		Unreplied: len(filterContacts(all, "", filterUnreplied)),
		CanDelete: authz.CanManageAdmins(r),
		Pager:     paging.NewPager(r, rg),
	}
	for _, c := range shown {
		data.Rows = append(data.Rows, toRow(c))
	}

	templates.Render(w, r, "contacts_list", data)
}

func filterContacts(all []models.Contact, q, filter string) []models.Contact {
	rows := search.Filter(all, q, func(c models.Contact) []string {
		return []string{c.FirstName, c.LastName, c.Email, c.Message}
	})
	switch filter {
	case filterReplied:
		rows = search.Where(rows, func(c models.Contact) bool { return c.Replied })
	case filterUnreplied:
		rows = search.Where(rows, func(c models.Contact) bool { return !c.Replied })
	}
	return rows
}
