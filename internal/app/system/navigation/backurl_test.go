package navigation_test

import (
	"net/http/httptest"
	"testing"

	"github.com/bigkoko/kokoadmin/internal/app/system/navigation"
)

func TestSafeBackURL(t *testing.T) {
	tests := []struct {
		name   string
		target string
		opts   navigation.BackURLOptions
		want   string
	}{
		{"valid return", "/x?return=/dashboard/blogs/b1", navigation.BlogsBackURL, "/dashboard/blogs/b1"},
		{"wrong prefix", "/x?return=/dashboard/orders", navigation.BlogsBackURL, "/dashboard/blogs"},
		{"excluded subpath", "/x?return=/dashboard/blogs/b1/edit", navigation.BlogsBackURL, "/dashboard/blogs"},
		{"external url", "/x?return=https://evil.example", navigation.BlogsBackURL, "/dashboard/blogs"},
		{"preserve filter", "/x?status=Pending", navigation.BackURLOptions{Fallback: "/dashboard/orders", PreserveQueryParam: "status"}, "/dashboard/orders?status=Pending"},
		{"preserve skips all", "/x?status=all", navigation.BackURLOptions{Fallback: "/dashboard/orders", PreserveQueryParam: "status"}, "/dashboard/orders"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)
			if got := navigation.SafeBackURL(r, tt.opts); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
