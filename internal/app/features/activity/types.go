// internal/app/features/activity/types.go
package activity

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/bigkoko/kokoadmin/internal/app/store/audit"
	"github.com/bigkoko/kokoadmin/internal/app/system/format"
	"github.com/bigkoko/kokoadmin/internal/app/system/normalize"
	"github.com/bigkoko/kokoadmin/internal/app/system/paging"
	"github.com/bigkoko/kokoadmin/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
)

const dateLayout = "2006-01-02"

type eventRow struct {
	When    string
	Event   string
	Actor   string
	Target  string
	IP      string
	Success bool
	Reason  string
	Details string
}

type listData struct {
	viewdata.BaseVM

	Enabled    bool
	Category   string
	Categories []string
	Start      string
	End        string
	ExportURL  string

	Rows  []eventRow
	Pager paging.Pager

	// sign-in failures in the last day, shown above the table
	FailedLogins []eventRow
}

// filters are the query parameters shared by the list and the export.
type filters struct {
	Category string // "all" or an audit category
	Start    *time.Time
	End      *time.Time
}

func parseFilters(r *http.Request) filters {
	f := filters{Category: normalize.Filter(query.Get(r, "category"), audit.Categories...)}
	if t, err := time.Parse(dateLayout, query.Get(r, "start")); err == nil {
		f.Start = &t
	}
	if t, err := time.Parse(dateLayout, query.Get(r, "end")); err == nil {
		end := t.Add(24*time.Hour - time.Second)
		f.End = &end
	}
	return f
}

func (f filters) query() audit.QueryFilter {
	q := audit.QueryFilter{StartTime: f.Start, EndTime: f.End}
	if f.Category != "all" {
		q.Category = f.Category
	}
	return q
}

// eventLabel turns "order_status_changed" into "Order status changed".
func eventLabel(t string) string {
	s := strings.ReplaceAll(t, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// detailText renders details as "k=v" pairs in key order.
func detailText(d map[string]string) string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+d[k])
	}
	return strings.Join(parts, ", ")
}

func toRow(e audit.Event) eventRow {
	actor := e.ActorEmail
	if actor == "" {
		actor = e.ActorID
	}
	target := e.TargetType
	if e.TargetID != "" {
		target = strings.TrimSpace(target + " " + e.TargetID)
	}
	return eventRow{
		When:    format.DateTime(e.Timestamp),
		Event:   eventLabel(e.EventType),
		Actor:   actor,
		Target:  target,
		IP:      e.IP,
		Success: e.Success,
		Reason:  e.FailureReason,
		Details: detailText(e.Details),
	}
}
