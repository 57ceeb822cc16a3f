package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/bigkoko/kokoadmin/internal/app/system/backend"
	"github.com/google/go-cmp/cmp"
)

type row struct {
	ID string `json:"id"`
}

func TestPage_Shapes(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  []row
		total int
		page  int
		pages int
	}{
		{"bare array", `[{"id":"a"},{"id":"b"}]`, []row{{"a"}, {"b"}}, 2, 0, 0},
		{"data envelope", `{"data":[{"id":"a"}],"total":40,"page":2,"totalPages":4}`, []row{{"a"}}, 40, 2, 4},
		{"named envelope", `{"users":[{"id":"u"}],"totalCount":"7"}`, []row{{"u"}}, 7, 0, 0},
		{"nested envelope", `{"data":{"orders":[{"id":"o"}],"total":9,"totalPages":3}}`, []row{{"o"}}, 9, 0, 3},
		{"pagination block", `{"items":[{"id":"x"}],"pagination":{"total":11,"currentPage":3}}`, []row{{"x"}}, 11, 3, 0},
		{"null", `null`, nil, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p backend.Page[row]
			if err := json.Unmarshal([]byte(tt.in), &p); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if diff := cmp.Diff(tt.want, p.Items); diff != "" {
				t.Errorf("Items mismatch (-want +got):\n%s", diff)
			}
			if p.Total != tt.total || p.Page != tt.page || p.TotalPages != tt.pages {
				t.Errorf("meta: got total=%d page=%d pages=%d", p.Total, p.Page, p.TotalPages)
			}
		})
	}
}

func TestPage_BareArrayFromBackendSetsTotal(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"c1"},{"id":"c2"},{"id":"c3"}]`))
	})

	var p backend.Page[row]
	if err := c.Do(context.Background(), http.MethodGet, "/contacts", nil, nil, &p); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if p.Total != 3 || len(p.Items) != 3 {
		t.Errorf("got total=%d items=%d, want 3/3", p.Total, len(p.Items))
	}
}

func TestOne_UnwrapsData(t *testing.T) {
	var plain, wrapped backend.One[row]
	if err := json.Unmarshal([]byte(`{"id":"a"}`), &plain); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(`{"data":{"id":"b"},"message":"ok"}`), &wrapped); err != nil {
		t.Fatal(err)
	}
	if plain.Value.ID != "a" || wrapped.Value.ID != "b" {
		t.Errorf("got %q and %q", plain.Value.ID, wrapped.Value.ID)
	}
}
