package viewdata

import (
	"net/http/httptest"
	"testing"

	"github.com/bigkoko/kokoadmin/internal/app/system/auth"
	"github.com/bigkoko/kokoadmin/internal/app/system/flash"
)

func labels(items []NavItem) []string {
	var out []string
	for _, it := range items {
		out = append(out, it.Label)
	}
	return out
}

func TestNewBaseVM_SignedOut(t *testing.T) {
	r := httptest.NewRequest("GET", "/login", nil)
	vm := NewBaseVM(r, "Sign in", "/")
	if vm.IsLoggedIn || len(vm.Nav) != 0 {
		t.Errorf("signed-out VM should have no nav: %+v", vm)
	}
	if vm.SiteName == "" || vm.Title != "Sign in" {
		t.Errorf("unexpected VM %+v", vm)
	}
}

func TestNewBaseVM_ModeratorNavHidesStaffPages(t *testing.T) {
	r := httptest.NewRequest("GET", "/dashboard/orders/o1", nil)
	r = auth.WithTestUser(r, &auth.SessionUser{ID: "m1", Name: "Mo", Role: "moderator"})
	r = flash.WithToasts(r, flash.Toast{Kind: flash.KindSuccess, Message: "ok"})

	vm := NewBaseVM(r, "Order", "/dashboard/orders")
	for _, l := range labels(vm.Nav) {
		if l == "Admins" || l == "Activity" {
			t.Errorf("moderator should not see %s", l)
		}
	}
	var active []string
	for _, it := range vm.Nav {
		if it.Active {
			active = append(active, it.Label)
		}
	}
	if len(active) != 1 || active[0] != "Orders" {
		t.Errorf("active items: %v", active)
	}
	if len(vm.Toasts) != 1 || vm.CanManageAdmins {
		t.Errorf("unexpected VM %+v", vm)
	}
}

func TestIsActive(t *testing.T) {
	tests := []struct {
		path, href string
		want       bool
	}{
		{"/dashboard", "/dashboard", true},
		{"/dashboard/users", "/dashboard", false},
		{"/dashboard/users", "/dashboard/users", true},
		{"/dashboard/users/u1", "/dashboard/users", true},
		{"/dashboard/usersx", "/dashboard/users", false},
	}
	for _, tt := range tests {
		if got := isActive(tt.path, tt.href); got != tt.want {
			t.Errorf("isActive(%q,%q) = %v", tt.path, tt.href, got)
		}
	}
}
