// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// PageSize is the default number of rows shown in paged lists.
const PageSize = 10

var defaultSize = PageSize

// SetSize overrides the rows per page used when callers pass no size.
// Values below 1 restore PageSize. Call once at startup.
func SetSize(n int) {
	if n < 1 {
		n = PageSize
	}
	defaultSize = n
}

// Size returns the configured rows per page.
func Size() int { return defaultSize }

// ParsePage extracts the 1-based "page" query parameter.
// Returns 1 if not present or invalid.
func ParsePage(r *http.Request) int {
	n, err := strconv.Atoi(query.Get(r, "page"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Range holds computed display values for one page of a list.
type Range struct {
	Page       int // current page, clamped to [1, TotalPages]
	PageSize   int
	Total      int
	TotalPages int
	Start      int // 1-based index of the first row shown (0 if no results)
	End        int // 1-based index of the last row shown (0 if no results)
	HasPrev    bool
	HasNext    bool
	PrevPage   int
	NextPage   int
}

// ComputeRange calculates the display window for page of size over total rows.
// Pages past the end are clamped to the last page.
func ComputeRange(page, size, total int) Range {
	if size < 1 {
		size = Size()
	}
	if total < 0 {
		total = 0
	}
	pages := (total + size - 1) / size
	if pages < 1 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	rg := Range{
		Page:       page,
		PageSize:   size,
		Total:      total,
		TotalPages: pages,
		HasPrev:    page > 1,
		HasNext:    page < pages,
		PrevPage:   max(page-1, 1),
		NextPage:   min(page+1, pages),
	}
	if total > 0 {
		rg.Start = (page-1)*size + 1
		rg.End = min(page*size, total)
	}
	return rg
}

// Slice returns the rows of rg's page from the full list.
func Slice[T any](rows []T, rg Range) []T {
	if rg.Start == 0 {
		return nil
	}
	lo := rg.Start - 1
	hi := rg.End
	if lo >= len(rows) {
		return nil
	}
	if hi > len(rows) {
		hi = len(rows)
	}
	return rows[lo:hi]
}

// Paginate computes the range for page and returns that page's rows.
func Paginate[T any](rows []T, page, size int) ([]T, Range) {
	rg := ComputeRange(page, size, len(rows))
	return Slice(rows, rg), rg
}

// FromBackend builds the range for a page the backend already sliced.
// When the backend omits totals, total is inferred from what was returned so
// a full page still offers a "next" link.
func FromBackend(page, size, total, totalPages, shown int) Range {
	if size < 1 {
		size = Size()
	}
	if page < 1 {
		page = 1
	}
	if total <= 0 && totalPages > 0 {
		total = totalPages * size
	}
	if total <= 0 {
		total = (page-1)*size + shown
		if shown == size {
			total++
		}
	}
	rg := ComputeRange(page, size, total)
	if shown == 0 {
		rg.Start, rg.End = 0, 0
	} else {
		rg.End = rg.Start + shown - 1
	}
	return rg
}

// Pager is what the shared pager partial renders.
type Pager struct {
	Range
	PrevURL string
	NextURL string
}

// NewPager builds prev/next links for rg that keep the request's other
// query parameters (search, filters).
func NewPager(r *http.Request, rg Range) Pager {
	return Pager{
		Range:   rg,
		PrevURL: PageURL(r, rg.PrevPage),
		NextURL: PageURL(r, rg.NextPage),
	}
}

// PageURL returns the current path with its query's page set to page.
func PageURL(r *http.Request, page int) string {
	q := url.Values{}
	for k, v := range r.URL.Query() {
		q[k] = v
	}
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}
	if len(q) == 0 {
		return r.URL.Path
	}
	return r.URL.Path + "?" + q.Encode()
}
