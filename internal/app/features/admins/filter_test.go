package admins

import (
	"testing"

	"github.com/bigkoko/kokoadmin/internal/domain/models"
)

func TestFilterAdmins(t *testing.T) {
	all := []models.Admin{
		{AdminID: "1", FirstName: "Ada", LastName: "Obi", Email: "ada@bigkoko.com", Role: "Super Admin", Status: "active"},
		{AdminID: "2", FirstName: "Tunde", LastName: "Bello", Email: "tunde@bigkoko.com", Role: "Admin", Status: "suspended"},
		{AdminID: "3", FirstName: "Chi", LastName: "Eze", Email: "chi@bigkoko.com", Role: "Moderator", Status: "active"},
	}

	tests := []struct {
		name   string
		q      string
		role   string
		status string
		want   []string
	}{
		{"no filters", "", "all", "all", []string{"1", "2", "3"}},
		{"search full name", "ada obi", "all", "all", []string{"1"}},
		{"search role text", "moderator", "all", "all", []string{"3"}},
		{"role filter", "", "Admin", "all", []string{"2"}},
		{"status filter", "", "all", "active", []string{"1", "3"}},
		{"combined", "bigkoko", "Moderator", "active", []string{"3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterAdmins(all, tt.q, tt.role, tt.status)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d rows, want %d", len(got), len(tt.want))
			}
			for i, a := range got {
				if a.AdminID != tt.want[i] {
					t.Errorf("row %d = %s, want %s", i, a.AdminID, tt.want[i])
				}
			}
		})
	}
}
